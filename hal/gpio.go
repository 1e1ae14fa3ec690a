package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIO provides access to general-purpose IO pins.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

type nullGPIO struct{}

func (nullGPIO) PinCount() int      { return 0 }
func (nullGPIO) Pin(id int) GPIOPin { return nil }

type virtualGPIO struct {
	pins []GPIOPin
}

func newVirtualGPIO(pins []GPIOPin) GPIO {
	if len(pins) == 0 {
		return nullGPIO{}
	}
	return &virtualGPIO{pins: pins}
}

func (g *virtualGPIO) PinCount() int {
	if g == nil {
		return 0
	}
	return len(g.pins)
}

func (g *virtualGPIO) Pin(id int) GPIOPin {
	if g == nil || id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

func configureInput(name string, caps GPIOCaps, mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", name)
	}
	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", name)
	}
	return nil
}

// buttonPin is a virtual push button. It reads pressed while held, or for a number of
// upcoming samples after Press.
type buttonPin struct {
	mu   sync.Mutex
	name string
	held bool
	left int
}

func newButtonPin(name string) *buttonPin {
	return &buttonPin{name: name}
}

func (p *buttonPin) Name() string   { return p.name }
func (p *buttonPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp }

func (p *buttonPin) Configure(mode GPIOMode, pull GPIOPull) error {
	return configureInput(p.name, p.Caps(), mode, pull)
}

func (p *buttonPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.left > 0 {
		p.left--
		return true, nil
	}
	return p.held, nil
}

func (p *buttonPin) Write(bool) error {
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}

func (p *buttonPin) hold(down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.held = down
}

func (p *buttonPin) press(samples int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.left = samples
}

// Quadrature phases of one detent as (A, B), ending on the idle level.
var (
	detentUp   = [4][2]bool{{false, true}, {false, false}, {true, false}, {true, true}}
	detentDown = [4][2]bool{{true, false}, {false, false}, {false, true}, {true, true}}
)

// quadrature plays queued detents on a virtual encoder's two lines. Every read of line A
// is one sample; each phase is held for a fixed number of samples.
type quadrature struct {
	mu      sync.Mutex
	hold    int
	pending []int8
	cur     int8
	n       int
	a, b    bool
}

func newQuadrature(hold int) *quadrature {
	if hold <= 0 {
		hold = 2
	}
	return &quadrature{hold: hold, a: true, b: true}
}

// turn queues detents: positive for up, negative for down.
func (q *quadrature) turn(n int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for ; n > 0; n-- {
		q.pending = append(q.pending, 1)
	}
	for ; n < 0; n++ {
		q.pending = append(q.pending, -1)
	}
}

func (q *quadrature) sample() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cur == 0 {
		if len(q.pending) == 0 {
			q.a, q.b = true, true
			return q.a
		}
		q.cur = q.pending[0]
		q.pending = q.pending[1:]
		q.n = 0
	}
	seq := &detentUp
	if q.cur < 0 {
		seq = &detentDown
	}
	step := q.n / q.hold
	q.a, q.b = seq[step][0], seq[step][1]
	q.n++
	if q.n >= len(seq)*q.hold {
		q.cur = 0
	}
	return q.a
}

func (q *quadrature) lineB() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.b
}

func (q *quadrature) busy() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.cur != 0 || len(q.pending) > 0
}

type encoderPin struct {
	name string
	q    *quadrature
	b    bool
}

func (p *encoderPin) Name() string   { return p.name }
func (p *encoderPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp }

func (p *encoderPin) Configure(mode GPIOMode, pull GPIOPull) error {
	return configureInput(p.name, p.Caps(), mode, pull)
}

// Read samples line A or returns the level line B had at the last A sample.
func (p *encoderPin) Read() (bool, error) {
	if p.b {
		return p.q.lineB(), nil
	}
	return p.q.sample(), nil
}

func (p *encoderPin) Write(bool) error {
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}
