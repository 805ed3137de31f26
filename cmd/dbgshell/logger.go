package main

import (
	"io"
	"log/slog"
)

// newLogger creates the program logger. Debug logging takes precedence
// over quiet mode.
func newLogger(w io.Writer, debug, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
