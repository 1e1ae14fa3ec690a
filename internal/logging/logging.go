// Package logging builds the runtime logger: a styled console sink plus an optional
// logfmt file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	charmLog "github.com/charmbracelet/log"

	"msgpanel/internal/config"
)

// Logger fans log events out to every configured sink.
type Logger struct {
	sinks     []*charmLog.Logger
	closeFile func() error
	path      string
}

// New configures the sinks. A nil stderr discards console output.
func New(stderr io.Writer, prefix string, cfg config.LoggingConfig) (*Logger, error) {
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}
	if stderr == nil {
		stderr = io.Discard
	}

	console := charmLog.NewWithOptions(stderr, charmLog.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       charmLog.TextFormatter,
	})
	l := &Logger{sinks: []*charmLog.Logger{console}}
	if cfg.File == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.sinks = append(l.sinks, charmLog.NewWithOptions(f, charmLog.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	}))
	l.closeFile = f.Close
	l.path = cfg.File
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{sinks: []*charmLog.Logger{charmLog.New(io.Discard)}}
}

// FilePath returns the file sink path, if any.
func (l *Logger) FilePath() string { return l.path }

// Close closes the file sink.
func (l *Logger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	err := l.closeFile()
	l.closeFile = nil
	return err
}

func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	for _, s := range l.sinks {
		s.Debug(msg, keyvals...)
	}
}

func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	for _, s := range l.sinks {
		s.Info(msg, keyvals...)
	}
}

func (l *Logger) Warn(msg interface{}, keyvals ...interface{}) {
	for _, s := range l.sinks {
		s.Warn(msg, keyvals...)
	}
}

func (l *Logger) Error(msg interface{}, keyvals ...interface{}) {
	for _, s := range l.sinks {
		s.Error(msg, keyvals...)
	}
}
