// Package transmit frames messages for the serial link to the receiving display.
package transmit

import (
	"fmt"
	"io"
	"unicode/utf8"

	"msgpanel/panel/charset"
	"msgpanel/panel/fault"
	"msgpanel/panel/longtext"
)

const (
	// DefaultMaxFrame is the receiver's line buffer size.
	DefaultMaxFrame = 28

	frameStart = '<'
	frameEnd   = '>'
	// overhead is start, brightness digit, two reserved bytes and end.
	overhead = 5
)

// Frame is one message for the receiver.
type Frame struct {
	// Brightness is clamped to 0..9 when encoded.
	Brightness int
	// Reserved is sent verbatim; zero bytes are sent as '#'.
	Reserved [2]byte
	// Payload is UTF-8 text.
	Payload []byte
}

// Bytes returns the encoded frame, cutting the payload at a rune boundary so the frame fits max bytes.
func (f *Frame) Bytes(max int) []byte {
	budget := max - overhead
	if budget < 0 {
		budget = 0
	}
	payload := truncateRunes(f.Payload, budget)

	b := make([]byte, 0, overhead+len(payload))
	b = append(b, frameStart, '0'+byte(clampDigit(f.Brightness)))
	for _, r := range f.Reserved {
		if r == 0 {
			r = '#'
		}
		b = append(b, r)
	}
	b = append(b, payload...)
	return append(b, frameEnd)
}

// WriteTo writes the frame encoded with DefaultMaxFrame.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes(DefaultMaxFrame))
	return int64(n), err
}

func clampDigit(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 9:
		return 9
	}
	return v
}

func truncateRunes(p []byte, n int) []byte {
	if len(p) <= n {
		return p
	}
	for n > 0 && !utf8.RuneStart(p[n]) {
		n--
	}
	return p[:n]
}

// Transmitter sends slot content over a serial writer.
type Transmitter struct {
	w   io.Writer
	max int
}

// New returns a Transmitter writing frames of at most max bytes (DefaultMaxFrame when max <= 0).
func New(w io.Writer, max int) (*Transmitter, error) {
	if w == nil {
		return nil, fmt.Errorf("transmit: nil writer: %w", fault.ErrNullArgument)
	}
	if max <= 0 {
		max = DefaultMaxFrame
	}
	return &Transmitter{w: w, max: max}, nil
}

// Send transmits CP1251 content with trailing blanks removed in a single write.
func (t *Transmitter) Send(brightness int, content []byte) error {
	text := charset.Decode(longtext.TrimRight(content, ' '))
	f := Frame{Brightness: brightness, Payload: []byte(text)}
	b := f.Bytes(t.max)
	n, err := t.w.Write(b)
	if err != nil {
		return fmt.Errorf("transmit: %w", err)
	}
	if n != len(b) {
		return fmt.Errorf("transmit: %w", io.ErrShortWrite)
	}
	return nil
}
