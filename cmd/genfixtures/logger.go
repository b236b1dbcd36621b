package main

import (
	"io"
	"log/slog"
	"os"
)

var logger = newLogger(os.Stderr, false)

// newLogger returns a text logger at info level, or debug level when
// debug is set or the DEBUG environment variable is non-empty.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler).With("cmd", "genfixtures")
}
