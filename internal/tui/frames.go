package tui

import (
	"io"
	"sync"
)

// FrameLog is a serial sink that keeps the most recent frames for display.
type FrameLog struct {
	mu     sync.Mutex
	max    int
	frames []string
	next   io.Writer
}

// NewFrameLog keeps up to max frames and forwards every write to next when it is not nil.
func NewFrameLog(max int, next io.Writer) *FrameLog {
	if max <= 0 {
		max = 4
	}
	return &FrameLog{max: max, next: next}
}

// Write records p as one frame.
func (l *FrameLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	l.frames = append(l.frames, string(p))
	if over := len(l.frames) - l.max; over > 0 {
		l.frames = append(l.frames[:0], l.frames[over:]...)
	}
	l.mu.Unlock()
	if l.next != nil {
		return l.next.Write(p)
	}
	return len(p), nil
}

// Frames returns the recorded frames, oldest first.
func (l *FrameLog) Frames() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.frames...)
}
