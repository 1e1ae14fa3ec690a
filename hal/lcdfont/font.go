// Package lcdfont is the 5x8 character-cell font of a HD44780 module with a Cyrillic
// character ROM, drawn through tinyfont for the desktop simulator.
package lcdfont

import (
	"image/color"

	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// CellWidth and CellHeight are the pixel size of one character cell.
	CellWidth  = 5
	CellHeight = 8

	// Pitch is the horizontal and vertical distance between cells, gap included.
	Pitch = 6
)

// Font implements tinyfont.Fonter. Concurrent access is not safe due to internal glyph
// reuse.
var Font tinyfont.Fonter = &font5x8{}

type font5x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows := Rows(codeOf(g.r))
	for row, bits := range rows {
		for col := 0; col < CellWidth; col++ {
			if bits&(0x10>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(CellHeight-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    CellWidth,
		Height:   CellHeight,
		XAdvance: Pitch,
		YOffset:  -(CellHeight - 1),
	}
}

func (f *font5x8) GetYAdvance() uint8 { return CellHeight + 1 }

func (f *font5x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// Rows returns the seven pixel rows of CP1251 code b. The eighth row is the cursor line.
// Lowercase Cyrillic uses the capital shapes; codes without a glyph render as '?'.
func Rows(b byte) [7]byte {
	switch {
	case b >= 0xe0:
		b -= 0x20
	case b == 0xb8:
		b = 0xa8
	}
	if rows, ok := glyphRows[b]; ok {
		return rows
	}
	return glyphRows['?']
}

// Rune returns the character shown for CP1251 code b.
func Rune(b byte) rune {
	return charmap.Windows1251.DecodeByte(b)
}

func codeOf(r rune) byte {
	if b, ok := charmap.Windows1251.EncodeRune(r); ok {
		return b
	}
	return '?'
}
