//go:build !tinygo

package hal

import (
	"strings"
	"sync"

	"msgpanel/hal/lcdfont"
)

// LCD is an in-memory character display.
type LCD struct {
	mu     sync.Mutex
	cols   int
	rows   int
	cells  []byte
	cursor [2]int
	shown  bool
	clears int
}

// NewLCD returns a blank display; non-positive sizes default to 16x2.
func NewLCD(cols, rows int) *LCD {
	if cols <= 0 {
		cols = 16
	}
	if rows <= 0 {
		rows = 2
	}
	d := &LCD{cols: cols, rows: rows, cells: make([]byte, cols*rows)}
	d.blank()
	return d
}

func (d *LCD) Size() (cols, rows int) { return d.cols, d.rows }

func (d *LCD) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blank()
	d.cursor = [2]int{}
	d.clears++
}

// WriteAt writes text from (col, row); characters past the row end are dropped.
func (d *LCD) WriteAt(col, row int, text []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row < 0 || row >= d.rows || col < 0 {
		return
	}
	for i, b := range text {
		if col+i >= d.cols {
			break
		}
		d.cells[row*d.cols+col+i] = b
	}
}

func (d *LCD) SetCursor(col, row int, visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = [2]int{col, row}
	d.shown = visible
}

func (d *LCD) blank() {
	for i := range d.cells {
		d.cells[i] = ' '
	}
}

// LCDSnapshot is a copy of the display state.
type LCDSnapshot struct {
	Cols, Rows int
	// Cells holds Rows*Cols character codes, row-major.
	Cells         []byte
	CursorCol     int
	CursorRow     int
	CursorVisible bool
	// Clears counts Clear calls since creation.
	Clears int
}

// Row returns the character codes of row r.
func (s LCDSnapshot) Row(r int) []byte {
	if r < 0 || r >= s.Rows {
		return nil
	}
	return s.Cells[r*s.Cols : (r+1)*s.Cols]
}

// Lines returns each row decoded to UTF-8.
func (s LCDSnapshot) Lines() []string {
	out := make([]string, s.Rows)
	for r := range out {
		var sb strings.Builder
		for _, b := range s.Row(r) {
			sb.WriteRune(lcdfont.Rune(b))
		}
		out[r] = sb.String()
	}
	return out
}

func (d *LCD) Snapshot() LCDSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return LCDSnapshot{
		Cols:          d.cols,
		Rows:          d.rows,
		Cells:         append([]byte(nil), d.cells...),
		CursorCol:     d.cursor[0],
		CursorRow:     d.cursor[1],
		CursorVisible: d.shown,
		Clears:        d.clears,
	}
}
