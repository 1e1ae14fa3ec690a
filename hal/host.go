//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"tinygo.org/x/drivers"
)

// HostConfig selects the backing resources of a host HAL.
type HostConfig struct {
	// EEPROMPath is the image file; empty uses MSGPANEL_EEPROM_PATH or msgpanel.eeprom.
	EEPROMPath string
	EEPROM     EEPROMBusConfig

	Columns, Rows int

	// Serial receives transmitted frames; nil discards them.
	Serial io.Writer
	// Log receives HAL log lines; nil uses stderr.
	Log io.Writer
}

// Host is the desktop HAL: virtual panel controls, an in-memory LCD, a file-backed
// EEPROM and a wall-clock tick source.
type Host struct {
	logger   *hostLogger
	led      *hostLED
	gpio     GPIO
	buttons  [ButtonCount]*buttonPin
	quad     *quadrature
	lcd      *LCD
	eeprom   *EEPROMBus
	serial   *hostLink
	t        *hostTime
	controls Controls
}

// NewHost returns a host HAL implementation.
func NewHost(cfg HostConfig) (*Host, error) {
	path := cfg.EEPROMPath
	if path == "" {
		path = os.Getenv("MSGPANEL_EEPROM_PATH")
	}
	if path == "" {
		path = hostEEPROMDefaultPath
	}
	bus, err := OpenEEPROMBus(path, cfg.EEPROM)
	if err != nil {
		return nil, err
	}

	logw := cfg.Log
	if logw == nil {
		logw = os.Stderr
	}
	serialw := cfg.Serial
	if serialw == nil {
		serialw = io.Discard
	}

	h := &Host{
		logger: &hostLogger{w: logw},
		led:    &hostLED{},
		quad:   newQuadrature(0),
		lcd:    NewLCD(cfg.Columns, cfg.Rows),
		eeprom: bus,
		serial: &hostLink{sink: serialw},
		t:      newHostTime(),
	}
	pins := make([]GPIOPin, 0, PinEncoderB+1)
	for i, name := range []string{"PREV", "NEXT", "HALF", "OK", "BCAST"} {
		h.buttons[i] = newButtonPin(name)
		pins = append(pins, h.buttons[i])
	}
	pins = append(pins,
		&encoderPin{name: "ENC_A", q: h.quad},
		&encoderPin{name: "ENC_B", q: h.quad, b: true},
	)
	h.gpio = newVirtualGPIO(pins)
	h.controls = Controls{h: h}
	return h, nil
}

func (h *Host) Logger() Logger       { return h.logger }
func (h *Host) LED() LED             { return h.led }
func (h *Host) GPIO() GPIO           { return h.gpio }
func (h *Host) Display() CharDisplay { return h.lcd }
func (h *Host) Bus() drivers.I2C     { return h.eeprom }
func (h *Host) Serial() Serial       { return h.serial }
func (h *Host) Time() Time           { return h.t }

// LCD returns the in-memory display.
func (h *Host) LCD() *LCD { return h.lcd }

// EEPROM returns the file-backed EEPROM bus.
func (h *Host) EEPROM() *EEPROMBus { return h.eeprom }

// Controls returns the virtual front panel.
func (h *Host) Controls() *Controls { return &h.controls }

// LEDOn reports the status LED level.
func (h *Host) LEDOn() bool { return h.led.get() }

// LinkStats reports the traffic sent on the serial link.
func (h *Host) LinkStats() LinkStats { return h.serial.stats() }

// Elapse advances the clock by the wall time since the previous call and returns the
// tick counter. The ticks are also offered on Time().Ticks().
func (h *Host) Elapse() uint64 { return h.t.step() }

// Advance advances the clock by n ticks regardless of the wall time.
func (h *Host) Advance(n uint64) uint64 { return h.t.advance(n) }

// Close releases the EEPROM image.
func (h *Host) Close() error { return h.eeprom.Close() }

// Controls operates the virtual front panel. Durations are counted in input samples,
// one per tick.
type Controls struct {
	h *Host
}

// Hold presses or releases a button until the next call.
func (c *Controls) Hold(pin int, down bool) error {
	b, err := c.button(pin)
	if err != nil {
		return err
	}
	b.hold(down)
	return nil
}

// Press presses a button for the next samples ticks.
func (c *Controls) Press(pin int, samples int) error {
	b, err := c.button(pin)
	if err != nil {
		return err
	}
	b.press(samples)
	return nil
}

// Turn queues encoder detents: positive for up, negative for down.
func (c *Controls) Turn(n int) { c.h.quad.turn(n) }

// Turning reports whether queued detents are still being played.
func (c *Controls) Turning() bool { return c.h.quad.busy() }

func (c *Controls) button(pin int) (*buttonPin, error) {
	if pin < 0 || pin >= ButtonCount {
		return nil, fmt.Errorf("controls: no button on pin %d", pin)
	}
	return c.h.buttons[pin], nil
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu sync.Mutex
	on bool
}

func (l *hostLED) High() { l.set(true) }
func (l *hostLED) Low()  { l.set(false) }

func (l *hostLED) set(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = on
}

func (l *hostLED) get() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
