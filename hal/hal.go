package hal

import (
	"errors"
	"io"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Panel pin numbers in GPIO order.
const (
	PinPrev = iota
	PinNext
	PinHalf
	PinOK
	PinBroadcast
	PinEncoderA
	PinEncoderB

	// ButtonCount is the number of push buttons, PinPrev..PinBroadcast.
	ButtonCount = 5
	// PinGuard is held at power-on to enter setup (PB14 on the board).
	PinGuard = PinPrev
)

// CharDisplay is a character LCD. Text is in the display's 8-bit character set.
type CharDisplay interface {
	Size() (cols, rows int)
	Clear()
	WriteAt(col, row int, text []byte)
	SetCursor(col, row int, visible bool)
}

// Serial is the byte link to the receiving display.
type Serial interface {
	io.Reader
	io.Writer
}

// Time provides a base tick stream.
//
// Ticks are 1 ms apart; higher-level timers live in the kernel.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the panel and the outside world.
//
// Button pins read true while pressed regardless of wiring polarity. Encoder pins read
// their raw line level.
type HAL interface {
	Logger() Logger
	LED() LED
	GPIO() GPIO
	Display() CharDisplay
	// Bus is the I2C bus the EEPROM is attached to.
	Bus() drivers.I2C
	Serial() Serial
	Time() Time
}
