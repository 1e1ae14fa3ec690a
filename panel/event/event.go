// Package event carries input events from the sampling domain to the foreground state machine.
package event

import (
	"fmt"
	"sync/atomic"

	"msgpanel/panel/input"
)

// Kind tags an Event.
type Kind uint8

const (
	KindNone Kind = iota
	KindShortPress
	KindLongPress
	KindEncoderMove
)

func (k Kind) String() string {
	switch k {
	case KindShortPress:
		return "short_press"
	case KindLongPress:
		return "long_press"
	case KindEncoderMove:
		return "encoder_move"
	default:
		return "none"
	}
}

// Channel identifies a physical button.
type Channel uint8

const (
	ChannelPrev Channel = iota
	ChannelNext
	ChannelHalf
	ChannelOK
	ChannelBroadcast

	// ChannelCount is the number of button channels.
	ChannelCount = 5
)

func (c Channel) String() string {
	switch c {
	case ChannelPrev:
		return "prev"
	case ChannelNext:
		return "next"
	case ChannelHalf:
		return "half"
	case ChannelOK:
		return "ok"
	case ChannelBroadcast:
		return "broadcast"
	default:
		return fmt.Sprintf("channel(%d)", uint8(c))
	}
}

// Event is a tagged union: Channel is meaningful for presses, Direction for encoder moves.
type Event struct {
	Kind      Kind
	Channel   Channel
	Direction input.Direction
}

func ShortPress(ch Channel) Event { return Event{Kind: KindShortPress, Channel: ch} }
func LongPress(ch Channel) Event  { return Event{Kind: KindLongPress, Channel: ch} }
func EncoderMove(d input.Direction) Event {
	return Event{Kind: KindEncoderMove, Direction: d}
}

// FromPress converts a debouncer result. ok is false for input.PressNone.
func FromPress(ch Channel, p input.Press) (Event, bool) {
	switch p {
	case input.PressShort:
		return ShortPress(ch), true
	case input.PressLong:
		return LongPress(ch), true
	default:
		return Event{}, false
	}
}

func (e Event) String() string {
	switch e.Kind {
	case KindShortPress, KindLongPress:
		return e.Kind.String() + "(" + e.Channel.String() + ")"
	case KindEncoderMove:
		return e.Kind.String() + "(" + e.Direction.String() + ")"
	default:
		return "none"
	}
}

// QueueSlots is the queue capacity. It must be a power of two.
const QueueSlots = 32

// Queue is a single-producer/single-consumer ring.
//
// Push must only be called from one goroutine and Pop from one (possibly different) goroutine.
type Queue struct {
	head    atomic.Uint32
	tail    atomic.Uint32
	dropped atomic.Uint32
	slots   [QueueSlots]Event
}

// Push appends e. It reports false and counts a drop when the ring is full.
func (q *Queue) Push(e Event) bool {
	head := q.head.Load()
	if head-q.tail.Load() >= QueueSlots {
		q.dropped.Add(1)
		return false
	}
	q.slots[head%QueueSlots] = e
	q.head.Store(head + 1)
	return true
}

// Pop removes the oldest event.
func (q *Queue) Pop() (Event, bool) {
	tail := q.tail.Load()
	if tail == q.head.Load() {
		return Event{}, false
	}
	e := q.slots[tail%QueueSlots]
	q.tail.Store(tail + 1)
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int { return int(q.head.Load() - q.tail.Load()) }

// Dropped returns the number of events lost to a full ring.
func (q *Queue) Dropped() uint32 { return q.dropped.Load() }
