//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyPins maps keyboard keys onto panel buttons. A button reads pressed while any of its
// keys is held, so short and long presses work as on the device.
var keyPins = [ButtonCount][]ebiten.Key{
	PinPrev:      {ebiten.KeyArrowLeft},
	PinNext:      {ebiten.KeyArrowRight},
	PinHalf:      {ebiten.KeyH, ebiten.KeyTab},
	PinOK:        {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	PinBroadcast: {ebiten.KeySpace},
}

// pollKeys copies the keyboard state onto the virtual panel. Up/Down and the mouse wheel
// turn the encoder one detent per press or notch.
func pollKeys(c *Controls) {
	for pin, keys := range keyPins {
		down := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		_ = c.Hold(pin, down)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		c.Turn(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		c.Turn(-1)
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		c.Turn(1)
	} else if dy < 0 {
		c.Turn(-1)
	}
}
