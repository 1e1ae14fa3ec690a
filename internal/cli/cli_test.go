package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"msgpanel/internal/config"
	"msgpanel/internal/tui"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRoot(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func imagePath(t *testing.T) string {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	t.Setenv("MSGPANEL_EEPROM_PATH", "")
	return filepath.Join(t.TempDir(), "panel.eeprom")
}

func TestWriteDumpClear(t *testing.T) {
	img := imagePath(t)

	r := runCLI(t, "--eeprom", img, "write", "3", "ПРИВЕТ МИР")
	require.NoError(t, r.err)
	r = runCLI(t, "--eeprom", img, "write", "0", "hello")
	require.NoError(t, r.err)

	r = runCLI(t, "--eeprom", img, "dump")
	require.NoError(t, r.err)
	require.Equal(t, "00  hello\n03  ПРИВЕТ МИР\nbrightness = erased\nlast_cell = erased\nfirst_run = erased\n", r.stdout)

	r = runCLI(t, "--eeprom", img, "clear", "3")
	require.NoError(t, r.err)
	r = runCLI(t, "--eeprom", img, "dump", "--all")
	require.NoError(t, r.err)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 50+3)
	require.Equal(t, "00  hello", lines[0])
	require.Equal(t, "03  ", lines[3])
}

func TestWriteKeepsLetterSharingErasedCode(t *testing.T) {
	img := imagePath(t)
	require.NoError(t, runCLI(t, "--eeprom", img, "write", "2", "Моя заявка").err)

	r := runCLI(t, "--eeprom", img, "dump")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout, "02  МоЯ заЯвка\n")
}

func TestWriteRejectsLongTextAndBadCell(t *testing.T) {
	img := imagePath(t)

	r := runCLI(t, "--eeprom", img, "write", "1", strings.Repeat("x", 33))
	require.ErrorContains(t, r.err, "the cell holds 32")
	r = runCLI(t, "--eeprom", img, "write", "x", "hi")
	require.ErrorContains(t, r.err, "not a number")
	r = runCLI(t, "--eeprom", img, "write", "50", "hi")
	require.Error(t, r.err)
}

func TestClearNeedsTarget(t *testing.T) {
	img := imagePath(t)
	r := runCLI(t, "--eeprom", img, "clear")
	require.ErrorContains(t, r.err, "nothing to clear")

	require.NoError(t, runCLI(t, "--eeprom", img, "write", "7", "abc").err)
	require.NoError(t, runCLI(t, "--eeprom", img, "clear", "--all", "--vars").err)
	r = runCLI(t, "--eeprom", img, "dump")
	require.NoError(t, r.err)
	require.NotContains(t, r.stdout, "abc")
}

func TestFrame(t *testing.T) {
	imagePath(t)
	r := runCLI(t, "frame", "12", "hello")
	require.NoError(t, r.err)
	require.Equal(t, "<9##hello>\n", r.stdout)

	r = runCLI(t, "frame", "3", strings.Repeat("Ж", 20))
	require.NoError(t, r.err)
	require.Equal(t, "<3##"+strings.Repeat("Ж", 11)+">\n", r.stdout)
}

func TestBadLogLevelFlag(t *testing.T) {
	imagePath(t)
	r := runCLI(t, "--log-level", "chatty", "frame", "1", "x")
	require.ErrorContains(t, r.err, "logging.level")
}

func TestVersion(t *testing.T) {
	r := runCLI(t, "version")
	require.NoError(t, r.err)
	require.True(t, strings.HasPrefix(r.stdout, "msgpanel "))
}

func TestHeadlessRunsScript(t *testing.T) {
	img := imagePath(t)
	require.NoError(t, runCLI(t, "--eeprom", img, "write", "1", "ПРИВЕТ").err)

	r := runCLI(t, "--eeprom", img, "--log-level", "error",
		"headless", "--ticks", "400", "--do", "next@20", "--do", "bcast@200")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout, "<5##>\n")
	require.Contains(t, r.stdout, "<5##ПРИВЕТ>\n")
	require.Contains(t, r.stdout, "|Яч:01 Ярк:05   .|\n")
	require.Contains(t, r.stdout, "|ПРИВЕТ          |\n")
}

func TestHeadlessRejectsBadAction(t *testing.T) {
	img := imagePath(t)
	r := runCLI(t, "--eeprom", img, "headless", "--ticks", "10", "--do", "jump@5")
	require.ErrorContains(t, r.err, "unknown button")
}

type fakeProgram struct {
	model tea.Model
	err   error
}

func (p fakeProgram) Run() (tea.Model, error) { return p.model, p.err }

func TestTUIUsesProgramFactory(t *testing.T) {
	img := imagePath(t)
	prev := programFactory
	t.Cleanup(func() { programFactory = prev })

	var got tea.Model
	programFactory = func(m tea.Model) program {
		got = m
		return fakeProgram{model: m}
	}
	r := runCLI(t, "--eeprom", img, "tui")
	require.NoError(t, r.err)
	require.IsType(t, tui.Model{}, got)
	require.Empty(t, r.stderr)

	programFactory = func(m tea.Model) program {
		return fakeProgram{err: errors.New("no tty")}
	}
	r = runCLI(t, "--eeprom", img, "tui")
	require.ErrorContains(t, r.err, "tui: no tty")
}
