package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"msgpanel/internal/config"
)

func TestConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "panel", config.LoggingConfig{Level: "warn"})
	require.NoError(t, err)

	l.Info("boot")
	l.Warn("store write failed", "slot", 6)
	out := buf.String()
	require.NotContains(t, out, "boot")
	require.Contains(t, out, "store write failed")
	require.Contains(t, out, "slot=6")
	require.Contains(t, out, "panel")
}

func TestFileSinkIsLogfmt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "panel.log")
	l, err := New(nil, "panel", config.LoggingConfig{Level: "debug", File: path})
	require.NoError(t, err)
	require.Equal(t, path, l.FilePath())

	l.Debug("sent", "cell", 3)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "level=debug")
	require.Contains(t, string(data), "msg=sent")
	require.Contains(t, string(data), "cell=3")
}

func TestBadLevel(t *testing.T) {
	_, err := New(nil, "panel", config.LoggingConfig{Level: "chatty"})
	require.Error(t, err)
}
