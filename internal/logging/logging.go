// Package logging configures the application-wide zerolog logger.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Default settings applied when the config leaves a field empty.
const (
	DefaultLevel  = "info"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// logFileMode keeps log files readable by the owner only.
const logFileMode = 0600

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string `yaml:"level,omitempty"`
	// Format selects "console" (human-readable) or "json" output.
	Format string `yaml:"format,omitempty"`
	// File, when set, appends structured output to the given path in
	// addition to stderr.
	File string `yaml:"file,omitempty"`
}

// New builds a logger from cfg. The returned cleanup function closes the
// log file when one was opened and is safe to call unconditionally.
func New(cfg Config) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == FormatJSON {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	cleanup := func() {}
	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
		if openErr != nil {
			return zerolog.Nop(), cleanup, openErr
		}
		writers = append(writers, f)
		cleanup = func() { _ = f.Close() }
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().Timestamp().Logger()
	return logger, cleanup, nil
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
