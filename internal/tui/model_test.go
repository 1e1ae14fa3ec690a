package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"msgpanel/app"
	"msgpanel/hal"
	"msgpanel/internal/config"
)

type fakePanel struct {
	ticks []uint64
	steps int
	err   error
}

func (p *fakePanel) Tick(seq uint64) { p.ticks = append(p.ticks, seq) }
func (p *fakePanel) Step() error {
	p.steps++
	return p.err
}

func newHost(t *testing.T, serial *FrameLog) *hal.Host {
	t.Helper()
	cfg := hal.HostConfig{
		EEPROMPath: filepath.Join(t.TempDir(), "panel.eeprom"),
		Log:        &bytes.Buffer{},
	}
	if serial != nil {
		cfg.Serial = serial
	}
	h, err := hal.NewHost(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestFrameAdvancesClockAndSteps(t *testing.T) {
	p := &fakePanel{}
	m := New(newHost(t, nil), p, nil, "panel")
	var now uint64
	m.clock = func() uint64 { now += 20; return now }

	m, cmd := update(t, m, frameMsg(time.Now()))
	require.NotNil(t, cmd)
	m, _ = update(t, m, frameMsg(time.Now()))
	require.Equal(t, []uint64{20, 40}, p.ticks)
	require.Equal(t, 2, p.steps)
	require.Contains(t, m.View(), "tick 40")
}

func TestHaltedPanelStopsTicking(t *testing.T) {
	p := &fakePanel{err: errors.New("task 0 panicked")}
	m := New(newHost(t, nil), p, nil, "panel")
	m.clock = func() uint64 { return 1 }

	m, _ = update(t, m, frameMsg(time.Now()))
	require.Error(t, m.Err())
	m, cmd := update(t, m, frameMsg(time.Now()))
	require.Nil(t, cmd)
	require.Equal(t, 1, p.steps)
	require.Contains(t, m.View(), "halted: task 0 panicked")
}

func TestKeysDrivePanelInputs(t *testing.T) {
	h := newHost(t, nil)
	m := New(h, &fakePanel{}, nil, "panel")

	m, _ = update(t, m, key("enter"))
	ok, err := h.GPIO().Pin(hal.PinOK).Read()
	require.NoError(t, err)
	require.True(t, ok)

	m, _ = update(t, m, key("up"))
	require.True(t, h.Controls().Turning())

	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsDisplayAndFrames(t *testing.T) {
	frames := NewFrameLog(2, nil)
	h := newHost(t, frames)
	sys, err := app.New(h, config.Default(), nil)
	require.NoError(t, err)

	m := New(h, sys, frames, "msgpanel")
	var now uint64
	m.clock = func() uint64 { now++; return now }
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, frameMsg(time.Now()))
	}

	view := m.View()
	require.Contains(t, view, "Яч:00 Ярк:05")
	require.Contains(t, view, "tx: <5##>")
	require.Contains(t, view, "msgpanel")
}

func TestFrameLogKeepsNewest(t *testing.T) {
	var fwd bytes.Buffer
	l := NewFrameLog(2, &fwd)
	for _, f := range []string{"<1##a>", "<2##b>", "<3##c>"} {
		n, err := l.Write([]byte(f))
		require.NoError(t, err)
		require.Equal(t, len(f), n)
	}
	require.Equal(t, []string{"<2##b>", "<3##c>"}, l.Frames())
	require.Equal(t, "<1##a><2##b><3##c>", fwd.String())
}

func TestRenderLCDUnderlinesCursor(t *testing.T) {
	lcd := hal.NewLCD(4, 2)
	lcd.WriteAt(0, 1, []byte("abcd"))
	lcd.SetCursor(2, 1, true)
	out := renderLCD(lcd.Snapshot())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "    ", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "ab"))
	require.True(t, strings.HasSuffix(lines[1], "d"))
}
