// Package longtext splits a slot into two display-width halves and merges edited halves back.
package longtext

// Part selects a half of a slot.
type Part uint8

const (
	First Part = iota
	Second
)

// Other returns the opposite half.
func (p Part) Other() Part {
	if p == First {
		return Second
	}
	return First
}

// Number is the 1-based half number shown to the user.
func (p Part) Number() int { return int(p) + 1 }

func (p Part) String() string {
	if p == Second {
		return "second"
	}
	return "first"
}

// Segment is one half of a slot.
type Segment struct {
	Part Part
	Text []byte
}

// Split returns a copy of the given half of content. The half width is len(content)/2.
func Split(content []byte, p Part) Segment {
	w := len(content) / 2
	start := int(p) * w
	text := make([]byte, w)
	copy(text, content[start:start+w])
	return Segment{Part: p, Text: text}
}

// Merge returns a new slot of slotWidth bytes holding content with seg written over its half.
// A short content is padded with pad; text beyond seg.Text in the half keeps its old bytes.
func Merge(content []byte, slotWidth int, seg Segment, pad byte) []byte {
	out := make([]byte, slotWidth)
	n := copy(out, content)
	for i := n; i < slotWidth; i++ {
		out[i] = pad
	}
	w := slotWidth / 2
	start := int(seg.Part) * w
	text := seg.Text
	if len(text) > w {
		text = text[:w]
	}
	copy(out[start:start+w], text)
	return out
}

// TrimRight drops trailing pad bytes.
func TrimRight(b []byte, pad byte) []byte {
	n := len(b)
	for n > 0 && b[n-1] == pad {
		n--
	}
	return b[:n]
}

// PadRight returns a copy of b cut or padded to n bytes.
func PadRight(b []byte, n int, pad byte) []byte {
	out := make([]byte, n)
	k := copy(out, b)
	for ; k < n; k++ {
		out[k] = pad
	}
	return out
}
