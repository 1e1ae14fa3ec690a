package app

import (
	"msgpanel/hal"
	"msgpanel/internal/buildinfo"
	"msgpanel/panel/charset"
)

// bootScreen shows the bring-up step on the display until the controller draws.
func bootScreen(d hal.CharDisplay, step string) {
	if d == nil {
		return
	}
	d.Clear()
	d.WriteAt(0, 0, charset.Encode("msgpanel "+buildinfo.Short()))
	d.WriteAt(0, 1, charset.Encode(step))
}
