package input

// Direction is the movement decoded from one encoder sample.
type Direction int8

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// History patterns as (prev B, prev A, B, A). With pull-ups the idle state is A=B=1,
// so each detent produces exactly one of these transitions.
const (
	patternUp   = 0x0E
	patternDown = 0x0D
)

// Encoder decodes a two-line quadrature signal. The zero value is ready to use.
type Encoder struct {
	history uint8

	// Reverse swaps the meaning of the two actionable patterns (mirrored wiring).
	Reverse bool
}

// Update shifts in one sample of both lines and reports the decoded movement.
func (e *Encoder) Update(a, b bool) Direction {
	e.history = (e.history << 2) & 0x0F
	if a {
		e.history |= 1
	}
	if b {
		e.history |= 2
	}

	var d Direction
	switch e.history {
	case patternUp:
		d = DirUp
	case patternDown:
		d = DirDown
	default:
		return DirNone
	}
	if e.Reverse {
		d = -d
	}
	return d
}

// Counter is a selection value bounded to [0, Max] that wraps when stepped past either end.
type Counter struct {
	value int
	max   int
}

// NewCounter returns a counter at 0 with the given inclusive maximum.
func NewCounter(max int) Counter {
	c := Counter{}
	c.SetMax(max)
	return c
}

func (c *Counter) Value() int { return c.value }
func (c *Counter) Max() int   { return c.max }

// Set moves the counter to v, clamped to [0, Max].
func (c *Counter) Set(v int) {
	c.value = v
	c.clamp()
}

// SetMax rescopes the counter. The current value is re-clamped.
func (c *Counter) SetMax(max int) {
	if max < 0 {
		max = 0
	}
	c.max = max
	c.clamp()
}

// Step applies one encoder movement and returns the new value.
func (c *Counter) Step(d Direction) int {
	switch d {
	case DirUp:
		if c.value >= c.max {
			c.value = 0
		} else {
			c.value++
		}
	case DirDown:
		if c.value <= 0 {
			c.value = c.max
		} else {
			c.value--
		}
	}
	c.clamp()
	return c.value
}

func (c *Counter) clamp() {
	if c.value < 0 {
		c.value = 0
	}
	if c.value > c.max {
		c.value = c.max
	}
}
