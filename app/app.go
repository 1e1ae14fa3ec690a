// Package app assembles the panel from a HAL and a configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"msgpanel/hal"
	"msgpanel/internal/buildinfo"
	"msgpanel/internal/config"
	"msgpanel/kernel"
	"msgpanel/panel/cellstore"
	"msgpanel/panel/eeprom"
	"msgpanel/panel/event"
	"msgpanel/panel/input"
	"msgpanel/panel/transmit"
	"msgpanel/panel/ui"
)

// System is a wired panel. Pump runs the interrupt domain; Step runs the foreground.
type System struct {
	h     hal.HAL
	cfg   config.Config
	log   ui.Logger
	k     *kernel.Kernel
	disp  hal.CharDisplay
	store *cellstore.Store
	ctrl  *ui.Controller

	buttons    [hal.ButtonCount]hal.GPIOPin
	encA, encB hal.GPIOPin
	deb        *input.Debouncer
	enc        input.Encoder
	queue      event.Queue

	// pinFaults counts failed input reads in the interrupt domain; a failed read counts as released.
	pinFaults  atomic.Uint32
	dropped    uint32
	pinsLogged uint32
	ledOn      bool
	err        error
}

// New wires the panel and boots the controller. A nil log writes through the HAL logger.
func New(h hal.HAL, cfg config.Config, log ui.Logger) (*System, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: config: %w", err)
	}
	if log == nil {
		log = newLineLogger(h.Logger())
	}
	s := &System{
		h:    h,
		cfg:  cfg,
		log:  log,
		k:    kernel.New(),
		disp: h.Display(),
		deb:  input.NewDebouncer(hal.ButtonCount, cfg.Thresholds()),
	}
	s.enc.Reverse = cfg.Input.ReverseEncoder
	bootScreen(s.disp, "storage")

	if err := s.openPins(); err != nil {
		return nil, s.bootFailed(err)
	}
	dev, err := eeprom.New(h.Bus(), cfg.EEPROM())
	if err != nil {
		return nil, s.bootFailed(err)
	}
	s.store, err = cellstore.New(dev, cfg.Layout())
	if err != nil {
		return nil, s.bootFailed(err)
	}
	tx, err := transmit.New(h.Serial(), cfg.Serial.MaxFrame)
	if err != nil {
		return nil, s.bootFailed(err)
	}
	s.initStorage()

	bootScreen(s.disp, "boot")
	s.ctrl, err = ui.New(cfg.UI(buildinfo.Short()), s.store, tx, log)
	if err != nil {
		return nil, s.bootFailed(err)
	}

	s.k.OnTick(1, s.sampleButtons)
	s.k.OnTick(uint64(cfg.Input.EncoderEvery), s.sampleEncoder)
	s.k.AddTask(kernel.TaskFunc(s.drain), 0)
	s.k.AddTask(kernel.TaskFunc(s.refresh), uint64(cfg.Timing.RedrawMS))
	s.k.AddTask(kernel.TaskFunc(s.blink), uint64(cfg.Timing.BlinkMS))
	s.k.SetPanicHandler(s.onPanic)

	guard := s.readPin(s.buttons[hal.PinGuard])
	s.ctrl.Boot(s.k.NowTick(), guard)
	s.ctrl.Render(s.disp)
	log.Info("panel ready", "version", buildinfo.Short(), "mode", s.ctrl.Mode(), "cell", s.ctrl.Cell())
	return s, nil
}

func (s *System) openPins() error {
	gpio := s.h.GPIO()
	pin := func(id int) (hal.GPIOPin, error) {
		p := gpio.Pin(id)
		if p == nil {
			return nil, fmt.Errorf("gpio: missing pin %d", id)
		}
		if err := p.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
			return nil, err
		}
		return p, nil
	}
	var err error
	for i := range s.buttons {
		if s.buttons[i], err = pin(hal.PinPrev + i); err != nil {
			return err
		}
	}
	if s.encA, err = pin(hal.PinEncoderA); err != nil {
		return err
	}
	s.encB, err = pin(hal.PinEncoderB)
	return err
}

// initStorage writes the variable defaults when the first-run marker is still erased.
func (s *System) initStorage() {
	if s.cfg.Storage.VarCount < cellstore.VarFirstRun {
		return
	}
	v, err := s.store.ReadVar(cellstore.VarFirstRun)
	if err != nil || v != cellstore.VarErased {
		return
	}
	for _, w := range []struct{ n, v int }{
		{cellstore.VarBrightness, s.cfg.Panel.DefaultBrightness},
		{cellstore.VarLastCell, 0},
		{cellstore.VarFirstRun, 0},
	} {
		if err := s.store.WriteVar(w.n, uint16(w.v)); err != nil {
			s.log.Warn("first-run init failed", "var", w.n, "err", err)
			return
		}
	}
	s.log.Info("first run: storage variables initialised")
}

func (s *System) bootFailed(err error) error {
	bootScreen(s.disp, "Err boot")
	s.log.Error("boot failed", "err", err)
	return fmt.Errorf("app: %w", err)
}

// sampleButtons runs every tick in the interrupt domain.
func (s *System) sampleButtons(uint64) {
	for i, p := range s.buttons {
		raw := s.readPin(p)
		if ev, ok := event.FromPress(event.Channel(i), s.deb.Update(i, raw)); ok {
			s.queue.Push(ev)
		}
	}
}

// sampleEncoder runs every EncoderEvery ticks in the interrupt domain.
func (s *System) sampleEncoder(uint64) {
	a := s.readPin(s.encA)
	b := s.readPin(s.encB)
	if d := s.enc.Update(a, b); d != input.DirNone {
		s.queue.Push(event.EncoderMove(d))
	}
}

func (s *System) readPin(p hal.GPIOPin) bool {
	v, err := p.Read()
	if err != nil {
		s.pinFaults.Add(1)
		return false
	}
	return v
}

func (s *System) drain(ctx *kernel.Context) {
	for {
		ev, ok := s.queue.Pop()
		if !ok {
			return
		}
		s.log.Debug("event", "ev", ev, "mode", s.ctrl.Mode())
		s.ctrl.Handle(ev, ctx.Now())
	}
}

func (s *System) refresh(ctx *kernel.Context) {
	s.ctrl.Tick(ctx.Now())
	s.ctrl.Render(s.disp)
	if d := s.queue.Dropped(); d != s.dropped {
		s.log.Warn("input events dropped", "total", d)
		s.dropped = d
	}
	if n := s.pinFaults.Load(); n != s.pinsLogged {
		s.log.Warn("input pin reads failed", "total", n)
		s.pinsLogged = n
	}
}

func (s *System) blink(*kernel.Context) {
	s.ledOn = !s.ledOn
	if s.ledOn {
		s.h.LED().High()
	} else {
		s.h.LED().Low()
	}
}

// Tick advances the interrupt domain to seq.
func (s *System) Tick(seq uint64) { s.k.TickTo(seq) }

// Pump feeds ticks to the interrupt domain until ctx ends or ticks closes.
func (s *System) Pump(ctx context.Context, ticks <-chan uint64) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case seq, ok := <-ticks:
			if !ok {
				return nil
			}
			s.k.TickTo(seq)
		}
	}
}

// Step runs the foreground tasks that are due. It fails once a task has panicked.
func (s *System) Step() error {
	if s.err != nil {
		return s.err
	}
	s.k.Step()
	return s.err
}

// Run drives the panel forever from the HAL tick source (TinyGo entrypoint).
func (s *System) Run() {
	go s.Pump(context.Background(), s.h.Time().Ticks())
	for s.Step() == nil {
		time.Sleep(time.Millisecond)
	}
	select {}
}

// Controller exposes the UI state machine.
func (s *System) Controller() *ui.Controller { return s.ctrl }

// Store exposes the cell store.
func (s *System) Store() *cellstore.Store { return s.store }

// NowTick returns the last tick seen by the interrupt domain.
func (s *System) NowTick() uint64 { return s.k.NowTick() }
