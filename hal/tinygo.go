//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Blue pill (STM32F103) wiring.
var (
	buttonPins = [ButtonCount]machine.Pin{
		PinPrev:      machine.PB14,
		PinNext:      machine.PA8,
		PinHalf:      machine.PA11,
		PinOK:        machine.PA12,
		PinBroadcast: machine.PB1,
	}
	encoderPinA = machine.PB12
	encoderPinB = machine.PB13
	rs485DE     = machine.PB15
)

const (
	lcdAddress = 0x27
	lcdColumns = 16
	lcdRows    = 2

	serialBaud = 4800
	logBaud    = 115200
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	lcd    *charLCD
	bus    drivers.I2C
	serial *rs485Serial
	t      *tinyGoTime
}

// New returns the blue pill HAL.
//
// I2C0 (PB6/PB7) carries the EEPROM and the LCD backpack. UART1 drives the RS485
// transceiver at 4800 8N1; UART2 carries log lines.
func New() HAL {
	i2c := machine.I2C0
	i2c.Configure(machine.I2CConfig{Frequency: 100 * machine.KHz})

	link := machine.UART1
	link.Configure(machine.UARTConfig{BaudRate: serialBaud})
	rs485DE.Configure(machine.PinConfig{Mode: machine.PinOutput})
	rs485DE.Low()

	logUART := machine.UART2
	logUART.Configure(machine.UARTConfig{BaudRate: logBaud})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	pins := make([]GPIOPin, 0, PinEncoderB+1)
	for i, name := range []string{"PREV", "NEXT", "HALF", "OK", "BCAST"} {
		p := &machinePin{name: name, pin: buttonPins[i], activeLow: true}
		_ = p.Configure(GPIOModeInput, GPIOPullUp)
		pins = append(pins, p)
	}
	for _, p := range []*machinePin{
		{name: "ENC_A", pin: encoderPinA},
		{name: "ENC_B", pin: encoderPinB},
	} {
		_ = p.Configure(GPIOModeInput, GPIOPullUp)
		pins = append(pins, p)
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: logUART},
		led:    &pinLED{pin: ledPin},
		gpio:   newVirtualGPIO(pins),
		lcd:    newCharLCD(i2c, lcdAddress, lcdColumns, lcdRows),
		bus:    i2c,
		serial: &rs485Serial{uart: link, de: rs485DE, baud: serialBaud},
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) LED() LED             { return h.led }
func (h *tinyGoHAL) GPIO() GPIO           { return h.gpio }
func (h *tinyGoHAL) Display() CharDisplay { return h.lcd }
func (h *tinyGoHAL) Bus() drivers.I2C     { return h.bus }
func (h *tinyGoHAL) Serial() Serial       { return h.serial }
func (h *tinyGoHAL) Time() Time           { return h.t }

// charLCD drives a HD44780 through a PCF8574 backpack. The module's character ROM is
// expected to place Cyrillic at the CP1251 codes.
type charLCD struct {
	dev        hd44780i2c.Device
	cols, rows int
}

func newCharLCD(bus drivers.I2C, addr uint8, cols, rows int) *charLCD {
	dev := hd44780i2c.New(bus, addr)
	dev.Configure(hd44780i2c.Config{Width: uint8(cols), Height: uint8(rows)})
	return &charLCD{dev: dev, cols: cols, rows: rows}
}

func (d *charLCD) Size() (cols, rows int) { return d.cols, d.rows }

func (d *charLCD) Clear() { d.dev.ClearDisplay() }

func (d *charLCD) WriteAt(col, row int, text []byte) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return
	}
	if n := d.cols - col; len(text) > n {
		text = text[:n]
	}
	d.dev.SetCursor(uint8(col), uint8(row))
	d.dev.Print(text)
}

func (d *charLCD) SetCursor(col, row int, visible bool) {
	d.dev.SetCursor(uint8(col), uint8(row))
	d.dev.CursorOn(visible)
}
