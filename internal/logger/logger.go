// Package logger builds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. Debug widens the level
// from Info to Debug.
func New(debug bool) zerolog.Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, debug)
}

// NewWithWriter builds the same logger against an arbitrary writer, which
// tests use to capture output.
func NewWithWriter(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
