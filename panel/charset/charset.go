// Package charset converts between UTF-8 and the display's 8-bit CP1251 character set.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Replacement is emitted for runes the display cannot show.
const Replacement = '?'

var cp1251 = charmap.Windows1251

// Encode transcodes UTF-8 text to CP1251. Unmapped runes and invalid UTF-8 become Replacement.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r == utf8.RuneError {
			out = append(out, Replacement)
			continue
		}
		b, ok := cp1251.EncodeRune(r)
		if !ok {
			b = Replacement
		}
		out = append(out, b)
	}
	return out
}

// erasedCode is the erased state of the message store; CP1251 puts 'я' there.
const erasedCode = 0xFF

// EncodeStored is Encode for text written to the message store. 'я' shares its code with
// erased memory and would read back as a blank, so it is stored as 'Я', which is also
// how the display shows it.
func EncodeStored(s string) []byte {
	out := Encode(s)
	for i, b := range out {
		if b == erasedCode {
			out[i] = 0xDF
		}
	}
	return out
}

// Decode transcodes CP1251 bytes to UTF-8. Unassigned codes become Replacement.
func Decode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		r := cp1251.DecodeByte(c)
		if r == utf8.RuneError {
			r = Replacement
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DefaultChars is the editing alphabet, in encoder order. Position 0 is the blank.
const DefaultChars = " АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ0123456789.,!?-+:;()\"/"

// Table is the ordered set of characters the encoder cycles through in edit mode.
type Table struct {
	chars []byte
	index [256]int16
}

// NewTable builds a table from UTF-8 text. Every rune must be representable and unique.
func NewTable(chars string) (Table, error) {
	if chars == "" {
		return Table{}, errors.New("charset: empty table")
	}
	t := Table{chars: make([]byte, 0, len(chars))}
	for i := range t.index {
		t.index[i] = -1
	}
	for _, r := range chars {
		b, ok := cp1251.EncodeRune(r)
		if !ok {
			return Table{}, fmt.Errorf("charset: %q has no CP1251 code", r)
		}
		if t.index[b] >= 0 {
			return Table{}, fmt.Errorf("charset: duplicate %q", r)
		}
		t.index[b] = int16(len(t.chars))
		t.chars = append(t.chars, b)
	}
	return t, nil
}

// DefaultTable returns the built-in editing alphabet.
func DefaultTable() Table {
	t, err := NewTable(DefaultChars)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of characters.
func (t Table) Len() int { return len(t.chars) }

// At returns the CP1251 code at position i, or a blank when i is out of range.
func (t Table) At(i int) byte {
	if i < 0 || i >= len(t.chars) {
		return ' '
	}
	return t.chars[i]
}

// Index returns the position of the CP1251 code b, or 0 when b is not in the table.
func (t Table) Index(b byte) int {
	if len(t.chars) == 0 || t.index[b] < 0 {
		return 0
	}
	return int(t.index[b])
}

// String returns the table as UTF-8.
func (t Table) String() string { return Decode(t.chars) }
