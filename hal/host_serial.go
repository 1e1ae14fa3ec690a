//go:build !tinygo

package hal

import (
	"io"
	"sync"
)

// hostLink is the host side of the RS-485 link. The panel only transmits, so each Write
// is one frame handed to the sink whole; reads see the line idle.
type hostLink struct {
	mu     sync.Mutex
	sink   io.Writer
	frames int
	bytes  int
}

func (l *hostLink) Read([]byte) (int, error) { return 0, io.EOF }

func (l *hostLink) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n, err := l.sink.Write(p)
	if n > 0 {
		l.frames++
		l.bytes += n
	}
	return n, err
}

// LinkStats counts what the panel has put on the serial link.
type LinkStats struct {
	Frames int
	Bytes  int
}

func (l *hostLink) stats() LinkStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LinkStats{Frames: l.frames, Bytes: l.bytes}
}
