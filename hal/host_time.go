//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

const hostTickDuration = time.Millisecond

// hostTime converts elapsed wall time into 1 ms ticks.
type hostTime struct {
	ch chan uint64

	mu   sync.Mutex
	seq  uint64
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks elapsed since the previous call. The first call emits one.
func (t *hostTime) step() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return t.stepN(1)
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / hostTickDuration)
	if ticks == 0 {
		return t.seq
	}
	t.acc = t.acc % hostTickDuration
	return t.stepN(ticks)
}

// advance emits n ticks regardless of the wall clock.
func (t *hostTime) advance(n uint64) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stepN(n)
}

func (t *hostTime) now() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}

// stepN drops ticks when the consumer lags; the consumer catches up from the
// sequence number.
func (t *hostTime) stepN(n uint64) uint64 {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
	return t.seq
}
