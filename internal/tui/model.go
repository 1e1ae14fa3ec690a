// Package tui is a terminal simulator for the panel: the LCD, the status LED and the
// serial frames, driven from the keyboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"msgpanel/hal"
)

// Panel is the application side: Tick feeds the interrupt domain, Step runs the foreground.
type Panel interface {
	Tick(seq uint64)
	Step() error
}

// FrameInterval is the redraw and clock period.
const FrameInterval = 20 * time.Millisecond

var (
	colorLCD    = lipgloss.Color("#9bbc0f")
	colorLCDInk = lipgloss.Color("#0f380f")
	colorMuted  = lipgloss.Color("#9ba0bf")
	colorLED    = lipgloss.Color("#3f866b")
	colorError  = lipgloss.Color("#c0504d")

	lcdStyle = lipgloss.NewStyle().
			Foreground(colorLCDInk).
			Background(colorLCD).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Underline(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	ledOnStyle  = lipgloss.NewStyle().Foreground(colorLED).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

type binding struct {
	pin  int
	hold int
	turn int
}

// keyBindings maps keys to panel inputs. Capitals are long presses.
var keyBindings = map[string]binding{
	"left":  {pin: hal.PinPrev, hold: hal.ShortHold},
	"a":     {pin: hal.PinPrev, hold: hal.ShortHold},
	"A":     {pin: hal.PinPrev, hold: hal.LongHold},
	"right": {pin: hal.PinNext, hold: hal.ShortHold},
	"d":     {pin: hal.PinNext, hold: hal.ShortHold},
	"D":     {pin: hal.PinNext, hold: hal.LongHold},
	"h":     {pin: hal.PinHalf, hold: hal.ShortHold},
	"H":     {pin: hal.PinHalf, hold: hal.LongHold},
	"enter": {pin: hal.PinOK, hold: hal.ShortHold},
	"o":     {pin: hal.PinOK, hold: hal.ShortHold},
	"O":     {pin: hal.PinOK, hold: hal.LongHold},
	" ":     {pin: hal.PinBroadcast, hold: hal.ShortHold},
	"b":     {pin: hal.PinBroadcast, hold: hal.ShortHold},
	"B":     {pin: hal.PinBroadcast, hold: hal.LongHold},
	"up":    {turn: 1},
	"k":     {turn: 1},
	"down":  {turn: -1},
	"j":     {turn: -1},
}

const helpText = "←/a prev  →/d next  h half  enter/o ok  space/b send  ↑↓/jk encoder  CAPS long  q quit"

type frameMsg time.Time

// Model is the bubbletea model.
type Model struct {
	h      *hal.Host
	panel  Panel
	frames *FrameLog
	title  string

	// clock returns the current tick; it defaults to the host's wall clock.
	clock func() uint64

	seq uint64
	err error
}

// New returns a model driving panel on h. frames may be nil.
func New(h *hal.Host, panel Panel, frames *FrameLog, title string) Model {
	return Model{h: h, panel: panel, frames: frames, title: title, clock: h.Elapse}
}

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" || key == "esc" {
			return m, tea.Quit
		}
		if b, ok := keyBindings[key]; ok && m.err == nil {
			m.apply(b)
		}
		return m, nil
	case frameMsg:
		if m.err != nil {
			return m, nil
		}
		m.seq = m.clock()
		m.panel.Tick(m.seq)
		m.err = m.panel.Step()
		return m, tick()
	}
	return m, nil
}

func (m Model) apply(b binding) {
	c := m.h.Controls()
	if b.turn != 0 {
		c.Turn(b.turn)
		return
	}
	_ = c.Press(b.pin, b.hold)
}

// Err returns the error that stopped the panel, if any.
func (m Model) Err() error { return m.err }

func (m Model) View() string {
	var sb strings.Builder
	led := mutedStyle.Render("○")
	if m.h.LEDOn() {
		led = ledOnStyle.Render("●")
	}
	sb.WriteString(titleStyle.Render(m.title) + "  " + led + "  " + mutedStyle.Render(fmt.Sprintf("tick %d", m.seq)))
	sb.WriteString("\n")
	sb.WriteString(lcdStyle.Render(renderLCD(m.h.LCD().Snapshot())))
	sb.WriteString("\n")

	if m.frames != nil {
		frames := m.frames.Frames()
		if len(frames) == 0 {
			sb.WriteString(mutedStyle.Render("tx: none") + "\n")
		}
		for _, f := range frames {
			sb.WriteString(mutedStyle.Render("tx: ") + f + "\n")
		}
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render("halted: "+m.err.Error()) + "\n")
	}
	sb.WriteString(mutedStyle.Render(helpText))
	return sb.String()
}

// renderLCD draws the character cells with the visible cursor underlined.
func renderLCD(s hal.LCDSnapshot) string {
	lines := s.Lines()
	for r, line := range lines {
		if !s.CursorVisible || r != s.CursorRow {
			continue
		}
		runes := []rune(line)
		if s.CursorCol < 0 || s.CursorCol >= len(runes) {
			continue
		}
		lines[r] = string(runes[:s.CursorCol]) +
			cursorStyle.Render(string(runes[s.CursorCol])) +
			string(runes[s.CursorCol+1:])
	}
	return strings.Join(lines, "\n")
}
