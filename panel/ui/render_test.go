package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"msgpanel/panel/charset"
	"msgpanel/panel/event"
	"msgpanel/panel/input"
)

type gridDisplay struct {
	rows    [2][16]byte
	clears  int
	col     int
	row     int
	visible bool
}

func (g *gridDisplay) Clear() {
	g.clears++
	for r := range g.rows {
		for c := range g.rows[r] {
			g.rows[r][c] = ' '
		}
	}
}

func (g *gridDisplay) WriteAt(col, row int, text []byte) {
	copy(g.rows[row][col:], text)
}

func (g *gridDisplay) SetCursor(col, row int, visible bool) {
	g.col, g.row, g.visible = col, row, visible
}

func (g *gridDisplay) line(row int) string { return charset.Decode(g.rows[row][:]) }

func TestRenderNormal(t *testing.T) {
	h := newHarness(t, func(dev *memDevice) {
		putSlot(dev, 6, "Первая", "Вторая")
	})
	h.boot(false)
	for i := 0; i < 6; i++ {
		h.short(event.ChannelNext)
	}

	var g gridDisplay
	h.ctl.Render(&g)
	require.Equal(t, "Яч:06 Ярк:05   .", g.line(0))
	require.Equal(t, "ПерваЯ          ", g.line(1))
	require.False(t, g.visible)

	h.short(event.ChannelHalf)
	h.ctl.Render(&g)
	require.Equal(t, "Яч:06 Ярк:05   :", g.line(0))
	require.Equal(t, "ВтораЯ          ", g.line(1))
	require.Equal(t, 1, g.clears, "same-mode redraws overwrite lines")
}

func TestRenderEdit(t *testing.T) {
	h := newHarness(t, nil)
	h.boot(false)
	h.short(event.ChannelHalf)
	h.long(event.ChannelPrev)
	h.short(event.ChannelNext)
	h.short(event.ChannelNext)
	h.turn(input.DirUp)
	h.turn(input.DirUp)

	var g gridDisplay
	h.ctl.Render(&g)
	require.Equal(t, "Ред яч:00(2)    ", g.line(0))
	require.Equal(t, "  Б             ", g.line(1))
	require.True(t, g.visible)
	require.Equal(t, 2, g.col)
	require.Equal(t, 1, g.row)
}

func TestRenderModeChangesClear(t *testing.T) {
	h := newHarness(t, nil)
	h.boot(false)

	var g gridDisplay
	h.ctl.Render(&g)
	require.Equal(t, 1, g.clears)

	h.long(event.ChannelNext)
	h.ctl.Render(&g)
	require.Equal(t, 2, g.clears)
	require.Equal(t, "Яркость: 05     ", g.line(0))

	h.short(event.ChannelOK)
	h.ctl.Render(&g)
	require.Equal(t, 3, g.clears)
	require.Equal(t, "Изменил!        ", g.line(0))

	h.wait(601)
	h.ctl.Render(&g)
	require.Equal(t, 4, g.clears)

	h.ctl.Redraw()
	h.ctl.Render(&g)
	require.Equal(t, 5, g.clears)
}

func TestRenderSetupAndScreenSaver(t *testing.T) {
	h := newHarness(t, nil)
	h.boot(true)

	var g gridDisplay
	h.ctl.Render(&g)
	require.Equal(t, "Уст:50          ", g.line(0))
	require.Equal(t, "v1.0            ", g.line(1))

	h.short(event.ChannelOK)
	h.wait(50001)
	h.ctl.Render(&g)
	require.Equal(t, ModeScreenSaver, h.ctl.Mode())
	require.Equal(t, "                ", g.line(0))
	require.Equal(t, "                ", g.line(1))
}
