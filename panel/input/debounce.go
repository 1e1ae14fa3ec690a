// Package input turns raw per-tick pin samples into button presses and encoder movement.
//
// Everything here runs in the sampling domain: no allocation, no errors, no locks.
// Malformed input (bounce, illegal quadrature transitions) is ignored, never reported.
package input

// Press is the classification of a completed or ongoing button press.
type Press uint8

const (
	PressNone Press = iota
	PressShort
	PressLong
)

func (p Press) String() string {
	switch p {
	case PressNone:
		return "none"
	case PressShort:
		return "short"
	case PressLong:
		return "long"
	default:
		return "unknown"
	}
}

// Thresholds are expressed in sampling ticks.
type Thresholds struct {
	// Debounce is the number of identical consecutive samples needed to commit a level change.
	Debounce uint16
	// LongPress is the number of ticks a committed press must be held to count as long.
	LongPress uint16
}

// DefaultThresholds matches a 1 ms sampling tick.
var DefaultThresholds = Thresholds{Debounce: 5, LongPress: 500}

// Channel is the debounce state of one physical input. The zero value is a released channel.
type Channel struct {
	last    bool
	counter uint16
	stable  bool
	held    uint16
	fired   bool
}

// Pressed reports the committed (debounced) level.
func (c *Channel) Pressed() bool { return c.stable }

// Update feeds one raw sample (true = pressed) and returns the press event completed by it.
//
// A long press is reported the tick the hold duration reaches th.LongPress, while the
// button is still down; its release then reports nothing. Every other committed press
// reports PressShort on release.
func (c *Channel) Update(raw bool, th Thresholds) Press {
	if raw != c.last {
		c.counter = 0
		c.last = raw
	}
	if c.counter < th.Debounce {
		c.counter++
	}

	out := PressNone
	if c.counter >= th.Debounce && raw != c.stable {
		c.stable = raw
		if raw {
			c.held = 0
		} else {
			if !c.fired {
				out = PressShort
			}
			c.fired = false
		}
	}

	if c.stable {
		if c.held < th.LongPress {
			c.held++
		}
		if c.held >= th.LongPress && !c.fired {
			c.fired = true
			out = PressLong
		}
	}
	return out
}

// Debouncer owns a fixed set of independent channels sharing one set of thresholds.
type Debouncer struct {
	th       Thresholds
	channels []Channel
}

// NewDebouncer allocates n released channels.
func NewDebouncer(n int, th Thresholds) *Debouncer {
	if n < 0 {
		n = 0
	}
	if th.Debounce == 0 {
		th.Debounce = 1
	}
	if th.LongPress == 0 {
		th.LongPress = DefaultThresholds.LongPress
	}
	return &Debouncer{th: th, channels: make([]Channel, n)}
}

// Len returns the number of channels.
func (d *Debouncer) Len() int { return len(d.channels) }

// Thresholds returns the thresholds in effect.
func (d *Debouncer) Thresholds() Thresholds { return d.th }

// Update feeds one raw sample to channel id. Unknown ids are ignored.
func (d *Debouncer) Update(id int, raw bool) Press {
	if id < 0 || id >= len(d.channels) {
		return PressNone
	}
	return d.channels[id].Update(raw, d.th)
}

// Pressed reports the committed level of channel id.
func (d *Debouncer) Pressed(id int) bool {
	if id < 0 || id >= len(d.channels) {
		return false
	}
	return d.channels[id].Pressed()
}
