package cliconfig

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = NewLogger(os.Stderr, zerolog.InfoLevel.String())

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// NewLogger returns a console logger writing to w at the given level.
// An empty or unparseable level falls back to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}
