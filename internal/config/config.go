// Package config holds the panel's configuration. The TOML loader is host-only.
package config

import (
	"fmt"
	"strings"
	"time"

	"msgpanel/panel/cellstore"
	"msgpanel/panel/charset"
	"msgpanel/panel/eeprom"
	"msgpanel/panel/input"
	"msgpanel/panel/transmit"
	"msgpanel/panel/ui"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "MSGPANEL_CONFIG"

// logLevels are the level names the host logger parses.
var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "fatal": true}

type Config struct {
	Panel   PanelConfig   `toml:"panel"`
	Input   InputConfig   `toml:"input"`
	Timing  TimingConfig  `toml:"timing"`
	Storage StorageConfig `toml:"storage"`
	Serial  SerialConfig  `toml:"serial"`
	Logging LoggingConfig `toml:"logging"`
}

type PanelConfig struct {
	Columns           int    `toml:"columns"`
	Rows              int    `toml:"rows"`
	EditWidth         int    `toml:"edit_width"`
	MaxBrightness     int    `toml:"max_brightness"`
	DefaultBrightness int    `toml:"default_brightness"`
	Charset           string `toml:"charset"`
}

// InputConfig thresholds are in ticks.
type InputConfig struct {
	DebounceTicks  int  `toml:"debounce_ticks"`
	LongPressTicks int  `toml:"long_press_ticks"`
	EncoderEvery   int  `toml:"encoder_every"`
	ReverseEncoder bool `toml:"reverse_encoder"`
}

// TimingConfig values are in milliseconds (one tick each).
type TimingConfig struct {
	MessageMS           int `toml:"message_ms"`
	EditTimeoutMS       int `toml:"edit_timeout_ms"`
	BrightnessTimeoutMS int `toml:"brightness_timeout_ms"`
	IdleTimeoutMS       int `toml:"idle_timeout_ms"`
	RedrawMS            int `toml:"redraw_ms"`
	BlinkMS             int `toml:"blink_ms"`
}

type StorageConfig struct {
	// Path is the host EEPROM image; empty falls back to MSGPANEL_EEPROM_PATH.
	Path      string `toml:"path"`
	Address   int    `toml:"address"`
	Size      int    `toml:"size"`
	PageSize  int    `toml:"page_size"`
	Retries   int    `toml:"retries"`
	BackoffMS int    `toml:"backoff_ms"`
	// BusyTx emulates the part's write cycle on the host bus.
	BusyTx    int `toml:"busy_tx"`
	SlotCount int `toml:"slot_count"`
	SlotWidth int `toml:"slot_width"`
	VarBase   int `toml:"var_base"`
	VarCount  int `toml:"var_count"`
}

type SerialConfig struct {
	Baud     int `toml:"baud"`
	MaxFrame int `toml:"max_frame"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	// File adds a logfmt sink at this path.
	File string `toml:"file"`
}

func Default() Config {
	l := cellstore.DefaultLayout()
	e := eeprom.DefaultConfig()
	return Config{
		Panel: PanelConfig{
			Columns:           16,
			Rows:              2,
			EditWidth:         16,
			MaxBrightness:     9,
			DefaultBrightness: 5,
			Charset:           charset.DefaultChars,
		},
		Input: InputConfig{
			DebounceTicks:  int(input.DefaultThresholds.Debounce),
			LongPressTicks: int(input.DefaultThresholds.LongPress),
			EncoderEvery:   2,
		},
		Timing: TimingConfig{
			MessageMS:           600,
			EditTimeoutMS:       50000,
			BrightnessTimeoutMS: 50000,
			IdleTimeoutMS:       50000,
			RedrawMS:            20,
			BlinkMS:             1000,
		},
		Storage: StorageConfig{
			Address:   int(e.Address),
			Size:      e.Size,
			PageSize:  e.PageSize,
			Retries:   e.Retries,
			BackoffMS: int(e.Backoff / time.Millisecond),
			SlotCount: l.SlotCount,
			SlotWidth: l.SlotWidth,
			VarBase:   l.VarBase,
			VarCount:  l.VarCount,
		},
		Serial: SerialConfig{
			Baud:     4800,
			MaxFrame: transmit.DefaultMaxFrame,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (c Config) Validate() error {
	p := c.Panel
	if p.Columns < 16 || p.Rows < 2 {
		return fmt.Errorf("panel: display %dx%d is smaller than 16x2", p.Columns, p.Rows)
	}
	if p.EditWidth < 1 || p.EditWidth > c.Storage.SlotWidth/2 || p.EditWidth > p.Columns {
		return fmt.Errorf("panel.edit_width %d must be in 1..%d", p.EditWidth, min(c.Storage.SlotWidth/2, p.Columns))
	}
	if p.MaxBrightness < 0 || p.MaxBrightness > 9 {
		return fmt.Errorf("panel.max_brightness %d must be in 0..9", p.MaxBrightness)
	}
	if p.DefaultBrightness < 0 || p.DefaultBrightness > p.MaxBrightness {
		return fmt.Errorf("panel.default_brightness %d must be in 0..%d", p.DefaultBrightness, p.MaxBrightness)
	}
	if _, err := charset.NewTable(p.Charset); err != nil {
		return fmt.Errorf("panel.charset: %w", err)
	}

	in := c.Input
	if in.DebounceTicks < 1 || in.DebounceTicks > 0xFFFF {
		return fmt.Errorf("input.debounce_ticks %d out of range", in.DebounceTicks)
	}
	if in.LongPressTicks <= in.DebounceTicks || in.LongPressTicks > 0xFFFF {
		return fmt.Errorf("input.long_press_ticks %d must exceed debounce_ticks %d", in.LongPressTicks, in.DebounceTicks)
	}
	if in.EncoderEvery < 1 {
		return fmt.Errorf("input.encoder_every must be >= 1")
	}

	for name, v := range map[string]int{
		"timing.message_ms":            c.Timing.MessageMS,
		"timing.edit_timeout_ms":       c.Timing.EditTimeoutMS,
		"timing.brightness_timeout_ms": c.Timing.BrightnessTimeoutMS,
		"timing.idle_timeout_ms":       c.Timing.IdleTimeoutMS,
		"timing.redraw_ms":             c.Timing.RedrawMS,
		"timing.blink_ms":              c.Timing.BlinkMS,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be > 0", name)
		}
	}

	s := c.Storage
	if s.Address <= 0 || s.Address > 0x7F {
		return fmt.Errorf("storage.address 0x%x is not a 7-bit I2C address", s.Address)
	}
	if s.Size <= 0 || s.Size > 1<<16 {
		return fmt.Errorf("storage.size %d must be in 1..65536", s.Size)
	}
	if s.PageSize <= 0 || s.Size%s.PageSize != 0 {
		return fmt.Errorf("storage.page_size %d must divide storage.size %d", s.PageSize, s.Size)
	}
	if s.Retries < 1 || s.BackoffMS < 0 || s.BusyTx < 0 {
		return fmt.Errorf("storage: retries %d, backoff_ms %d, busy_tx %d out of range", s.Retries, s.BackoffMS, s.BusyTx)
	}
	if s.BusyTx >= s.Retries {
		return fmt.Errorf("storage.busy_tx %d would exhaust %d retries", s.BusyTx, s.Retries)
	}
	if err := c.Layout().Validate(s.Size); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Serial.Baud <= 0 {
		return fmt.Errorf("serial.baud must be > 0")
	}
	if c.Serial.MaxFrame < 5 {
		return fmt.Errorf("serial.max_frame %d cannot hold an empty frame", c.Serial.MaxFrame)
	}

	if !logLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level %q: want debug, info, warn, error or fatal", c.Logging.Level)
	}
	return nil
}

// Layout returns the cell store layout.
func (c Config) Layout() cellstore.Layout {
	return cellstore.Layout{
		SlotCount: c.Storage.SlotCount,
		SlotWidth: c.Storage.SlotWidth,
		VarBase:   c.Storage.VarBase,
		VarCount:  c.Storage.VarCount,
	}
}

// EEPROM returns the device driver settings.
func (c Config) EEPROM() eeprom.Config {
	return eeprom.Config{
		Address:  uint16(c.Storage.Address),
		Size:     c.Storage.Size,
		PageSize: c.Storage.PageSize,
		Retries:  c.Storage.Retries,
		Backoff:  time.Duration(c.Storage.BackoffMS) * time.Millisecond,
	}
}

// Thresholds returns the debounce thresholds.
func (c Config) Thresholds() input.Thresholds {
	return input.Thresholds{
		Debounce:  uint16(c.Input.DebounceTicks),
		LongPress: uint16(c.Input.LongPressTicks),
	}
}

// UI returns the controller configuration. The charset must already be valid.
func (c Config) UI(version string) ui.Config {
	table, err := charset.NewTable(c.Panel.Charset)
	if err != nil {
		table = charset.DefaultTable()
	}
	return ui.Config{
		Columns:           c.Panel.Columns,
		EditWidth:         c.Panel.EditWidth,
		MaxBrightness:     c.Panel.MaxBrightness,
		DefaultBrightness: c.Panel.DefaultBrightness,
		MessageDuration:   uint64(c.Timing.MessageMS),
		EditTimeout:       uint64(c.Timing.EditTimeoutMS),
		BrightnessTimeout: uint64(c.Timing.BrightnessTimeoutMS),
		IdleTimeout:       uint64(c.Timing.IdleTimeoutMS),
		Table:             table,
		Version:           version,
	}
}
