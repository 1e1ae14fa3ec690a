package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"msgpanel/panel/charset"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 16, cfg.Panel.Columns)
	require.Equal(t, 5, cfg.Panel.DefaultBrightness)
	require.Equal(t, 2, cfg.Input.EncoderEvery)
	require.Equal(t, 20, cfg.Timing.RedrawMS)
	require.Equal(t, 0x50, cfg.Storage.Address)
	require.Equal(t, 28, cfg.Serial.MaxFrame)

	ui := cfg.UI("v1")
	require.Equal(t, uint64(600), ui.MessageDuration)
	require.Equal(t, "v1", ui.Version)
	require.Equal(t, charset.DefaultTable().Len(), ui.Table.Len())

	require.Equal(t, time.Millisecond, cfg.EEPROM().Backoff)
	require.Equal(t, uint16(500), cfg.Thresholds().LongPress)
	require.Equal(t, 3200, cfg.Layout().VarBase)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), Default())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load("", Default())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.toml")
	content := `
[panel]
default_brightness = 7

[timing]
message_ms = 1200

[storage]
path = "panel.eeprom"
busy_tx = 2

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, Default())
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Panel.DefaultBrightness)
	require.Equal(t, 1200, cfg.Timing.MessageMS)
	require.Equal(t, "panel.eeprom", cfg.Storage.Path)
	require.Equal(t, 2, cfg.Storage.BusyTx)
	require.Equal(t, "debug", cfg.Logging.Level)
	// Untouched keys keep their defaults.
	require.Equal(t, 50, cfg.Storage.SlotCount)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.toml")
	require.NoError(t, os.WriteFile(path, []byte("[panel\ncolumns = 16"), 0o644))
	_, err := Load(path, Default())
	require.ErrorContains(t, err, "decode toml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"small display", func(c *Config) { c.Panel.Columns = 8 }, "smaller than 16x2"},
		{"edit wider than half", func(c *Config) { c.Panel.EditWidth = 17 }, "panel.edit_width"},
		{"brightness above digit", func(c *Config) { c.Panel.MaxBrightness = 10 }, "panel.max_brightness"},
		{"default above max", func(c *Config) { c.Panel.DefaultBrightness = 9; c.Panel.MaxBrightness = 4 }, "panel.default_brightness"},
		{"duplicate charset", func(c *Config) { c.Panel.Charset = "АА" }, "panel.charset"},
		{"long press not longer", func(c *Config) { c.Input.LongPressTicks = 5 }, "input.long_press_ticks"},
		{"zero encoder period", func(c *Config) { c.Input.EncoderEvery = 0 }, "input.encoder_every"},
		{"zero timeout", func(c *Config) { c.Timing.EditTimeoutMS = 0 }, "timing.edit_timeout_ms"},
		{"10-bit address", func(c *Config) { c.Storage.Address = 0x150 }, "storage.address"},
		{"page not dividing", func(c *Config) { c.Storage.PageSize = 48 }, "storage.page_size"},
		{"busy outlasts retries", func(c *Config) { c.Storage.BusyTx = 10 }, "storage.busy_tx"},
		{"slots overlap vars", func(c *Config) { c.Storage.SlotCount = 101 }, "storage: layout"},
		{"tiny frame", func(c *Config) { c.Serial.MaxFrame = 4 }, "serial.max_frame"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestLogLevelsMatchLogger(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "fatal", "WARN"} {
		cfg := Default()
		cfg.Logging.Level = name
		require.NoError(t, cfg.Validate(), name)
		_, err := charmLog.ParseLevel(name)
		require.NoError(t, err, name)
	}
	for _, name := range []string{"", "warning", "trace"} {
		cfg := Default()
		cfg.Logging.Level = name
		require.ErrorContains(t, cfg.Validate(), "logging.level", name)
		_, err := charmLog.ParseLevel(name)
		require.Error(t, err, name)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "/etc/msgpanel.toml")
	require.Equal(t, "/etc/msgpanel.toml", ResolvePath(""))
	require.Equal(t, "local.toml", ResolvePath(" local.toml "))
}
