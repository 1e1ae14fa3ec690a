// Package cli is the host command line: the simulators and the EEPROM image tools.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"msgpanel/app"
	"msgpanel/hal"
	"msgpanel/internal/buildinfo"
	"msgpanel/internal/config"
	"msgpanel/internal/logging"
	"msgpanel/panel/cellstore"
	"msgpanel/panel/eeprom"
)

// program is the part of *tea.Program the tui command uses.
type program interface {
	Run() (tea.Model, error)
}

var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

// env holds the persistent flags and the output streams.
type env struct {
	stdout, stderr io.Writer

	configPath string
	eepromPath string
	logLevel   string
}

// Execute runs the root command with fang's help and error rendering.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, NewRoot(os.Stdout, os.Stderr),
		fang.WithVersion(buildinfo.String()),
	)
}

// NewRoot builds the command tree. Running it without a subcommand opens the window
// simulator.
func NewRoot(stdout, stderr io.Writer) *cobra.Command {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	e := &env{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "msgpanel",
		Short: "Message panel simulator and EEPROM tools",
		Long: `msgpanel runs the message panel firmware on the host.

The window, headless and tui commands simulate the 16x2 LCD, the five buttons, the
encoder and the RS-485 link. The dump, write and clear commands edit the EEPROM image
the simulators use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runWindow(cmd.Context())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&e.configPath, "config", "", "path to config TOML (default $"+config.EnvPath+")")
	pf.StringVar(&e.eepromPath, "eeprom", "", "EEPROM image path (overrides storage.path)")
	pf.StringVar(&e.logLevel, "log-level", "", "log level (overrides logging.level)")

	root.AddCommand(
		windowCmd(e),
		headlessCmd(e),
		tuiCmd(e),
		dumpCmd(e),
		writeCmd(e),
		clearCmd(e),
		frameCmd(e),
		versionCmd(e),
	)
	return root
}

func versionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(e.stdout, "msgpanel %s\n", buildinfo.String())
			return err
		},
	}
}

// load reads the config file and applies the flag overrides.
func (e *env) load() (config.Config, error) {
	path := config.ResolvePath(e.configPath)
	cfg, err := config.Load(path, config.Default())
	if err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	if p := strings.TrimSpace(e.eepromPath); p != "" {
		cfg.Storage.Path = p
	}
	if l := strings.TrimSpace(e.logLevel); l != "" {
		cfg.Logging.Level = l
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func busConfig(cfg config.Config) hal.EEPROMBusConfig {
	return hal.EEPROMBusConfig{
		Address:  uint16(cfg.Storage.Address),
		Size:     cfg.Storage.Size,
		PageSize: cfg.Storage.PageSize,
		BusyTx:   cfg.Storage.BusyTx,
	}
}

// session is a booted simulator.
type session struct {
	cfg config.Config
	log *logging.Logger
	h   *hal.Host
	sys *app.System
}

func (s *session) Close() error {
	err := s.h.Close()
	if lerr := s.log.Close(); err == nil {
		err = lerr
	}
	return err
}

// boot opens the host HAL and wires the panel. serial receives the transmitted frames.
func (e *env) boot(serial io.Writer) (*session, error) {
	cfg, err := e.load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(e.stderr, "msgpanel", cfg.Logging)
	if err != nil {
		return nil, err
	}
	if serial == nil {
		serial = frameLogger{log: log}
	}
	h, err := hal.NewHost(hal.HostConfig{
		EEPROMPath: cfg.Storage.Path,
		EEPROM:     busConfig(cfg),
		Columns:    cfg.Panel.Columns,
		Rows:       cfg.Panel.Rows,
		Serial:     serial,
		Log:        e.stderr,
	})
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	sys, err := app.New(h, cfg, log)
	if err != nil {
		_ = h.Close()
		_ = log.Close()
		return nil, err
	}
	return &session{cfg: cfg, log: log, h: h, sys: sys}, nil
}

// openStore opens the EEPROM image through the same driver stack the panel uses.
func (e *env) openStore() (*cellstore.Store, func() error, error) {
	cfg, err := e.load()
	if err != nil {
		return nil, nil, err
	}
	path := cfg.Storage.Path
	if path == "" {
		path = os.Getenv("MSGPANEL_EEPROM_PATH")
	}
	if path == "" {
		return nil, nil, fmt.Errorf("no EEPROM image: set --eeprom, storage.path or MSGPANEL_EEPROM_PATH")
	}
	bus, err := hal.OpenEEPROMBus(path, busConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	dev, err := eeprom.New(bus, cfg.EEPROM())
	if err != nil {
		_ = bus.Close()
		return nil, nil, err
	}
	store, err := cellstore.New(dev, cfg.Layout())
	if err != nil {
		_ = bus.Close()
		return nil, nil, err
	}
	return store, bus.Close, nil
}

// frameLogger logs each serial write as one transmitted frame.
type frameLogger struct {
	log *logging.Logger
}

func (f frameLogger) Write(p []byte) (int, error) {
	f.log.Info("tx", "frame", string(p))
	return len(p), nil
}

// frameLines writes each frame on its own line.
type frameLines struct {
	w io.Writer
}

func (f frameLines) Write(p []byte) (int, error) {
	if _, err := fmt.Fprintf(f.w, "%s\n", p); err != nil {
		return 0, err
	}
	return len(p), nil
}
