package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testThresholds = Thresholds{Debounce: 5, LongPress: 500}

// feed samples raw n times and collects every non-empty press.
func feed(c *Channel, raw bool, n int) []Press {
	var out []Press
	for i := 0; i < n; i++ {
		if p := c.Update(raw, testThresholds); p != PressNone {
			out = append(out, p)
		}
	}
	return out
}

func TestChannelCommitsAfterThreshold(t *testing.T) {
	var c Channel
	require.Empty(t, feed(&c, true, 4))
	require.False(t, c.Pressed())

	require.Empty(t, feed(&c, true, 1))
	require.True(t, c.Pressed())
}

func TestChannelIgnoresBounce(t *testing.T) {
	var c Channel
	for i := 0; i < 10; i++ {
		require.Empty(t, feed(&c, true, 4))
		require.Empty(t, feed(&c, false, 1))
	}
	require.False(t, c.Pressed())
	require.Empty(t, feed(&c, false, 50))
}

func TestChannelShortPress(t *testing.T) {
	var c Channel
	require.Empty(t, feed(&c, true, 40))
	require.Equal(t, []Press{PressShort}, feed(&c, false, 20))
	require.False(t, c.Pressed())
}

func TestChannelLongPressFiresOnceWhileHeld(t *testing.T) {
	var c Channel
	var at []int
	for i := 0; i < 2000; i++ {
		if p := c.Update(true, testThresholds); p != PressNone {
			require.Equal(t, PressLong, p)
			at = append(at, i)
		}
	}
	// Commit on sample 5, hold counter reaches 500 on sample 504.
	require.Equal(t, []int{503}, at)

	require.Empty(t, feed(&c, false, 20), "release after a long press reports nothing")

	// The next press is classified from scratch.
	require.Empty(t, feed(&c, true, 30))
	require.Equal(t, []Press{PressShort}, feed(&c, false, 20))
}

func TestChannelExactlyOneEventPerPress(t *testing.T) {
	for _, hold := range []int{5, 6, 100, 450, 520, 1000} {
		var c Channel
		events := feed(&c, true, hold)
		events = append(events, feed(&c, false, 10)...)
		require.Len(t, events, 1, "hold=%d", hold)
		if hold >= 504 {
			require.Equal(t, PressLong, events[0], "hold=%d", hold)
		}
		if hold < 400 {
			require.Equal(t, PressShort, events[0], "hold=%d", hold)
		}
	}
}

func TestDebouncerChannelsAreIndependent(t *testing.T) {
	d := NewDebouncer(3, testThresholds)
	require.Equal(t, 3, d.Len())

	for i := 0; i < 10; i++ {
		d.Update(0, true)
		d.Update(1, false)
	}
	require.True(t, d.Pressed(0))
	require.False(t, d.Pressed(1))
	require.False(t, d.Pressed(2))
	require.Equal(t, PressNone, d.Update(7, true))
	require.False(t, d.Pressed(-1))
}

type sample struct{ a, b bool }

func decode(e *Encoder, seq []sample) []Direction {
	var out []Direction
	for _, s := range seq {
		if d := e.Update(s.a, s.b); d != DirNone {
			out = append(out, d)
		}
	}
	return out
}

var (
	detentUp   = []sample{{true, true}, {false, true}, {false, false}, {true, false}, {true, true}}
	detentDown = []sample{{true, true}, {true, false}, {false, false}, {false, true}, {true, true}}
)

func TestEncoderDetents(t *testing.T) {
	var e Encoder
	require.Equal(t, []Direction{DirUp}, decode(&e, detentUp))
	require.Equal(t, []Direction{DirDown}, decode(&e, detentDown))

	e = Encoder{Reverse: true}
	require.Equal(t, []Direction{DirDown}, decode(&e, detentUp))
}

func TestEncoderIgnoresOtherPatterns(t *testing.T) {
	actionable := 0
	for prev := uint8(0); prev < 4; prev++ {
		for cur := uint8(0); cur < 4; cur++ {
			e := Encoder{history: prev}
			d := e.Update(cur&1 != 0, cur&2 != 0)
			switch prev<<2 | cur {
			case patternUp:
				require.Equal(t, DirUp, d)
				actionable++
			case patternDown:
				require.Equal(t, DirDown, d)
				actionable++
			default:
				require.Equal(t, DirNone, d, "pattern %04b", prev<<2|cur)
			}
		}
	}
	require.Equal(t, 2, actionable)
}

func TestCounterWraps(t *testing.T) {
	c := NewCounter(9)
	require.Equal(t, 9, c.Step(DirDown))
	require.Equal(t, 0, c.Step(DirUp))
	require.Equal(t, 1, c.Step(DirUp))
	require.Equal(t, 1, c.Step(DirNone))

	c.Set(9)
	require.Equal(t, 0, c.Step(DirUp))
}

func TestCounterReclampsOnRescope(t *testing.T) {
	c := NewCounter(49)
	c.Set(40)
	c.SetMax(9)
	require.Equal(t, 9, c.Value())

	c.Set(-3)
	require.Equal(t, 0, c.Value())

	c.SetMax(-1)
	require.Equal(t, 0, c.Max())
	require.Equal(t, 0, c.Step(DirUp))
}
