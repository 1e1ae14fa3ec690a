package ui

import (
	"fmt"

	"msgpanel/panel/charset"
	"msgpanel/panel/longtext"
)

// Render draws the current mode. The display is cleared once per mode change or forced
// redraw; later calls overwrite whole lines.
func (c *Controller) Render(d Display) {
	if !c.drawn || c.drawnMode != c.mode {
		d.Clear()
		c.drawn = true
		c.drawnMode = c.mode
	}

	switch c.mode {
	case ModeNormal:
		status := c.line(fmt.Sprintf(fmtNormal, c.sel.Value(), c.brightness))
		status[c.cfg.Columns-1] = '.'
		if c.part == longtext.Second {
			status[c.cfg.Columns-1] = ':'
		}
		d.WriteAt(0, 0, status)
		d.WriteAt(0, 1, c.lineBytes(longtext.Split(c.content, c.part).Text))
		d.SetCursor(0, 0, false)
	case ModeEdit:
		d.WriteAt(0, 0, c.line(fmt.Sprintf(fmtEdit, c.target, c.editPart.Number())))
		d.WriteAt(0, 1, c.lineBytes(c.edit))
		d.SetCursor(c.cursor, 1, true)
	case ModeShowMessage:
		d.WriteAt(0, 0, c.line(c.msg))
		d.SetCursor(0, 0, false)
	case ModeBrightness:
		d.WriteAt(0, 0, c.line(fmt.Sprintf(fmtBrightness, c.sel.Value())))
		d.SetCursor(0, 0, false)
	case ModeSetup:
		d.WriteAt(0, 0, c.line(fmt.Sprintf(fmtSetup, c.store.SlotCount())))
		d.WriteAt(0, 1, c.line(c.cfg.Version))
		d.SetCursor(0, 0, false)
	case ModeScreenSaver:
		d.SetCursor(0, 0, false)
	}
}

// Redraw forces the next Render to start from a cleared display.
func (c *Controller) Redraw() { c.drawn = false }

func (c *Controller) line(s string) []byte {
	return c.lineBytes(charset.Encode(s))
}

func (c *Controller) lineBytes(b []byte) []byte {
	return longtext.PadRight(b, c.cfg.Columns, ' ')
}
