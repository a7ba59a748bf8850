// Package logging configures the logrus logger shared by the CLI and TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/timetable/internal/config"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "timetable-debug.log"

// Setup builds a logger from cfg. With debug set it writes text at debug level
// to DebugLogPath; otherwise it writes JSON to cfg.File, or discards output
// when no file is configured. The returned closer releases the log file.
func Setup(cfg config.LogConfig, debug bool) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	noop := func() error { return nil }

	if debug {
		f, err := os.Create(DebugLogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("creating debug log: %w", err)
		}
		logger.SetOutput(f)
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		return logger, f.Close, nil
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.JSONFormatter{})

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}

// For returns an entry tagged with the component name. A nil logger yields a
// discarding entry so callers never need to check.
func For(logger *logrus.Logger, component string) *logrus.Entry {
	if logger == nil {
		logger = Discard()
	}
	return logger.WithField("component", component)
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
