//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// machinePin is a board input. activeLow pins read true while pulled to ground.
type machinePin struct {
	name      string
	pin       machine.Pin
	activeLow bool
}

func (p *machinePin) Name() string   { return p.name }
func (p *machinePin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp | GPIOCapPullDown }

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return configureInput(p.name, p.Caps(), mode, pull)
	}
	switch pull {
	case GPIOPullUp:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	case GPIOPullDown:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	default:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	return nil
}

func (p *machinePin) Read() (bool, error) {
	return p.pin.Get() != p.activeLow, nil
}

func (p *machinePin) Write(bool) error {
	return ErrNotImplemented
}

// rs485Serial keys the transceiver's driver-enable line around every write.
type rs485Serial struct {
	uart *machine.UART
	de   machine.Pin
	baud int
}

func (s *rs485Serial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Read(p)
}

func (s *rs485Serial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	s.de.High()
	n, err := s.uart.Write(p)
	// The UART returns once the last byte is queued; hold DE until it leaves the wire.
	time.Sleep(time.Duration(n+1) * 10 * time.Second / time.Duration(s.baud))
	s.de.Low()
	return n, err
}
