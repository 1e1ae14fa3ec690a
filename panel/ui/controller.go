// Package ui implements the panel's mode state machine.
//
// A Controller consumes input events and tick timestamps, reads and writes the cell store,
// hands messages to the transmitter and draws itself onto a character display. It is owned
// by the foreground loop and is not safe for concurrent use.
package ui

import (
	"errors"
	"fmt"

	"msgpanel/panel/cellstore"
	"msgpanel/panel/charset"
	"msgpanel/panel/event"
	"msgpanel/panel/fault"
	"msgpanel/panel/input"
	"msgpanel/panel/longtext"
)

// Mode is the active screen.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeEdit
	ModeShowMessage
	ModeBrightness
	ModeSetup
	ModeScreenSaver
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	case ModeShowMessage:
		return "show_message"
	case ModeBrightness:
		return "brightness"
	case ModeSetup:
		return "setup"
	case ModeScreenSaver:
		return "screensaver"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Store is the persistent slot and variable storage. *cellstore.Store satisfies it.
type Store interface {
	SlotCount() int
	SlotWidth() int
	Read(i int) ([]byte, error)
	Write(i int, p []byte) error
	ClearAll() error
	Invalidate(i int)
	ReadVar(n int) (uint16, error)
	WriteVar(n int, v uint16) error
}

// Transmitter sends slot content to the receiver. *transmit.Transmitter satisfies it.
type Transmitter interface {
	Send(brightness int, content []byte) error
}

// Display is a character display addressed in columns and rows. Text is CP1251.
type Display interface {
	Clear()
	WriteAt(col, row int, text []byte)
	SetCursor(col, row int, visible bool)
}

// Logger is satisfied by *log.Logger from charmbracelet/log.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Config holds the controller's limits. Durations are in ticks.
type Config struct {
	Columns           int
	EditWidth         int
	MaxBrightness     int
	DefaultBrightness int

	MessageDuration   uint64
	EditTimeout       uint64
	BrightnessTimeout uint64
	IdleTimeout       uint64

	Table   charset.Table
	Version string
}

// DefaultConfig matches the shipped panel at a 1 ms tick.
func DefaultConfig() Config {
	return Config{
		Columns:           16,
		EditWidth:         16,
		MaxBrightness:     9,
		DefaultBrightness: 5,
		MessageDuration:   600,
		EditTimeout:       50000,
		BrightnessTimeout: 50000,
		IdleTimeout:       50000,
		Table:             charset.DefaultTable(),
	}
}

// Controller is the UI state machine.
type Controller struct {
	cfg   Config
	store Store
	tx    Transmitter
	log   Logger

	mode       Mode
	sel        input.Counter
	target     int
	brightness int

	content []byte
	part    longtext.Part

	edit     []byte
	cursor   int
	editPart longtext.Part

	activity uint64
	msg      string
	msgStart uint64
	lastErr  error

	drawn     bool
	drawnMode Mode
}

// New returns a controller in Normal mode showing slot 0. Call Boot before feeding events.
func New(cfg Config, store Store, tx Transmitter, log Logger) (*Controller, error) {
	if store == nil || tx == nil {
		return nil, fmt.Errorf("ui: %w", fault.ErrNullArgument)
	}
	if cfg.Table.Len() == 0 {
		cfg.Table = charset.DefaultTable()
	}
	if cfg.Columns <= 0 {
		return nil, errors.New("ui: columns must be positive")
	}
	if half := store.SlotWidth() / 2; cfg.EditWidth <= 0 || cfg.EditWidth > half {
		return nil, fmt.Errorf("ui: edit width %d outside 1..%d", cfg.EditWidth, half)
	}
	if cfg.MaxBrightness < 0 || cfg.MaxBrightness > 9 {
		return nil, fmt.Errorf("ui: max brightness %d outside 0..9", cfg.MaxBrightness)
	}
	if cfg.DefaultBrightness < 0 || cfg.DefaultBrightness > cfg.MaxBrightness {
		cfg.DefaultBrightness = cfg.MaxBrightness
	}
	if log == nil {
		log = nopLogger{}
	}
	c := &Controller{
		cfg:        cfg,
		store:      store,
		tx:         tx,
		log:        log,
		sel:        input.NewCounter(store.SlotCount() - 1),
		brightness: cfg.DefaultBrightness,
	}
	c.load(0)
	return c, nil
}

// Boot restores the persisted brightness and slot, enters Setup when guard is held and
// announces the current message.
func (c *Controller) Boot(now uint64, guard bool) {
	if v, err := c.store.ReadVar(cellstore.VarBrightness); err == nil && int(v) <= c.cfg.MaxBrightness {
		c.brightness = int(v)
	} else if err != nil {
		c.log.Warn("brightness not restored", "err", err)
	}
	if v, err := c.store.ReadVar(cellstore.VarLastCell); err == nil && int(v) < c.store.SlotCount() {
		c.sel.Set(int(v))
	} else if err != nil {
		c.log.Warn("last cell not restored", "err", err)
	}
	c.load(c.sel.Value())

	c.mode = ModeNormal
	if guard {
		c.mode = ModeSetup
	}
	c.activity = now
	c.drawn = false
	c.log.Info("boot", "mode", c.mode, "cell", c.sel.Value(), "brightness", c.brightness)
	c.send()
}

// Handle applies one input event.
func (c *Controller) Handle(ev event.Event, now uint64) {
	switch ev.Kind {
	case event.KindEncoderMove:
		c.onEncoder(ev.Direction, now)
	case event.KindShortPress, event.KindLongPress:
		if c.mode == ModeScreenSaver {
			c.setMode(ModeNormal, now)
			return
		}
		if ev.Kind == event.KindShortPress {
			c.onShort(ev.Channel, now)
		} else {
			c.onLong(ev.Channel, now)
		}
	}
}

func (c *Controller) onEncoder(d input.Direction, now uint64) {
	switch c.mode {
	case ModeNormal:
		c.sel.Step(d)
		c.activity = now
		c.load(c.sel.Value())
	case ModeEdit:
		c.sel.Step(d)
		c.activity = now
		c.edit[c.cursor] = c.cfg.Table.At(c.sel.Value())
	case ModeBrightness:
		c.sel.Step(d)
		c.activity = now
	}
}

func (c *Controller) onShort(ch event.Channel, now uint64) {
	switch ch {
	case event.ChannelPrev, event.ChannelNext:
		d := input.DirUp
		if ch == event.ChannelPrev {
			d = input.DirDown
		}
		switch c.mode {
		case ModeNormal:
			c.activity = now
			c.sel.Step(d)
			c.part = longtext.First
			c.load(c.sel.Value())
		case ModeEdit:
			c.activity = now
			c.cursor = (c.cursor + int(d) + c.cfg.EditWidth) % c.cfg.EditWidth
			c.sel.Set(c.cfg.Table.Index(c.edit[c.cursor]))
		}
	case event.ChannelHalf:
		if c.mode == ModeNormal {
			c.activity = now
			c.part = c.part.Other()
		}
	case event.ChannelOK:
		switch c.mode {
		case ModeNormal:
			c.activity = now
			c.send()
		case ModeEdit:
			c.confirmEdit(now)
		case ModeBrightness:
			c.confirmBrightness(now)
		case ModeSetup:
			c.load(c.sel.Value())
			c.setMode(ModeNormal, now)
		}
	case event.ChannelBroadcast:
		if c.mode == ModeNormal {
			c.activity = now
		}
		c.send()
	}
}

func (c *Controller) onLong(ch event.Channel, now uint64) {
	switch {
	case ch == event.ChannelPrev && c.mode == ModeNormal:
		c.enterEdit(now)
	case ch == event.ChannelNext && c.mode == ModeNormal:
		c.enterBrightness(now)
	case ch == event.ChannelHalf && c.mode == ModeSetup:
		c.clearAll(now)
	}
}

func (c *Controller) enterEdit(now uint64) {
	c.target = c.sel.Value()
	c.editPart = c.part
	seg := longtext.Split(c.content, c.part)
	c.edit = longtext.PadRight(longtext.TrimRight(seg.Text[:c.cfg.EditWidth], ' '), c.cfg.EditWidth, ' ')
	c.cursor = 0
	c.sel.SetMax(c.cfg.Table.Len() - 1)
	c.sel.Set(c.cfg.Table.Index(c.edit[0]))
	c.setMode(ModeEdit, now)
	c.log.Debug("edit", "cell", c.target, "part", c.editPart)
}

func (c *Controller) enterBrightness(now uint64) {
	c.target = c.sel.Value()
	c.sel.SetMax(c.cfg.MaxBrightness)
	c.sel.Set(c.brightness)
	c.setMode(ModeBrightness, now)
}

// restoreSelection puts the selection back on the slot that was being edited.
func (c *Controller) restoreSelection() {
	c.sel.SetMax(c.store.SlotCount() - 1)
	c.sel.Set(c.target)
}

func (c *Controller) confirmEdit(now uint64) {
	text := longtext.PadRight(longtext.TrimRight(c.edit, ' '), c.cfg.EditWidth, ' ')
	c.restoreSelection()
	c.edit = nil

	base, err := c.store.Read(c.target)
	if err != nil {
		c.log.Warn("edit base unreadable, using displayed content", "cell", c.target, "err", err)
		base = c.content
	}
	merged := longtext.Merge(base, c.store.SlotWidth(), longtext.Segment{Part: c.editPart, Text: text}, ' ')
	err = c.store.Write(c.target, merged)
	c.store.Invalidate(c.target)
	if err != nil {
		c.fail("save cell", err, "cell", c.target)
		c.showMessage(msgErrWrite, now)
		return
	}
	c.content = merged
	c.part = c.editPart
	c.log.Info("cell saved", "cell", c.target, "part", c.editPart)
	c.showMessage(msgSaved, now)
}

func (c *Controller) confirmBrightness(now uint64) {
	c.brightness = c.sel.Value()
	c.restoreSelection()
	if err := c.store.WriteVar(cellstore.VarBrightness, uint16(c.brightness)); err != nil {
		c.fail("save brightness", err)
		c.showMessage(msgErrWrite, now)
		return
	}
	c.log.Info("brightness saved", "brightness", c.brightness)
	c.showMessage(msgBrightness, now)
}

func (c *Controller) clearAll(now uint64) {
	if err := c.store.ClearAll(); err != nil {
		c.fail("clear all", err)
		c.showMessage(msgErrWrite, now)
		return
	}
	c.log.Info("all cells cleared", "count", c.store.SlotCount())
	c.showMessage(msgCleared, now)
}

// Tick runs the inactivity and message timers.
func (c *Controller) Tick(now uint64) {
	idle := now - c.activity
	switch c.mode {
	case ModeEdit:
		if idle > c.cfg.EditTimeout {
			c.restoreSelection()
			c.edit = nil
			c.showMessage(msgCancelled, now)
		}
	case ModeBrightness:
		if idle > c.cfg.BrightnessTimeout {
			c.restoreSelection()
			c.showMessage(msgCancelled, now)
		}
	case ModeNormal:
		if idle > c.cfg.IdleTimeout {
			c.setMode(ModeScreenSaver, now)
		}
	case ModeShowMessage:
		if now-c.msgStart > c.cfg.MessageDuration {
			c.load(c.sel.Value())
			c.setMode(ModeNormal, now)
			c.drawn = false
		}
	}
}

func (c *Controller) setMode(m Mode, now uint64) {
	if c.mode != m {
		c.log.Debug("mode", "from", c.mode, "to", m)
	}
	c.mode = m
	c.activity = now
}

func (c *Controller) showMessage(text string, now uint64) {
	c.msg = text
	c.msgStart = now
	c.setMode(ModeShowMessage, now)
}

// cell is the slot the user is working on.
func (c *Controller) cell() int {
	if c.mode == ModeEdit || c.mode == ModeBrightness {
		return c.target
	}
	return c.sel.Value()
}

func (c *Controller) send() {
	if err := c.tx.Send(c.brightness, c.content); err != nil {
		c.fail("transmit", err)
	}
	if err := c.store.WriteVar(cellstore.VarLastCell, uint16(c.cell())); err != nil {
		c.fail("save last cell", err)
	}
}

// load replaces the displayed content with slot i, or with an error text when unreadable.
func (c *Controller) load(i int) {
	data, err := c.store.Read(i)
	if err == nil {
		c.content = data
		return
	}
	text := msgErrRead
	if fault.CodeOf(err) == fault.CodeOutOfRange {
		text = msgErrOut
	}
	c.log.Warn("read cell", "cell", i, "err", err)
	c.content = longtext.PadRight(charset.Encode(text), c.store.SlotWidth(), ' ')
}

func (c *Controller) fail(op string, err error, keyvals ...interface{}) {
	c.lastErr = fmt.Errorf("%s: %w", op, err)
	c.log.Error(op, append(keyvals, "err", err, "code", fault.CodeOf(err))...)
}

func (c *Controller) Mode() Mode { return c.mode }
func (c *Controller) Selection() int { return c.sel.Value() }
func (c *Controller) Target() int { return c.target }
func (c *Controller) Brightness() int { return c.brightness }
func (c *Controller) Part() longtext.Part { return c.part }
func (c *Controller) Cursor() int { return c.cursor }
func (c *Controller) Message() string { return c.msg }
func (c *Controller) LastError() error { return c.lastErr }
func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) EditPart() longtext.Part { return c.editPart }
func (c *Controller) Content() []byte { return append([]byte(nil), c.content...) }
func (c *Controller) EditBuffer() []byte { return append([]byte(nil), c.edit...) }
func (c *Controller) Cell() int { return c.cell() }

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
func (nopLogger) Error(interface{}, ...interface{}) {}
