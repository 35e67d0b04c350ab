// Package logging builds the zerolog loggers used across the application.
//
// The dashboard owns the terminal in raw mode, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a timestamped console-format logger writing to w
// Unknown levels fall back to info
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Open creates the log file at path, appending to an existing one
// An empty path disables logging and returns a no-op logger
// The returned closer is never nil
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: open %s: %w", path, err)
	}

	log := New(f, level)
	log.Info().Str("loglevel", log.GetLevel().String()).Msg("logging set up")
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
