package main

import (
	"io"
	"log/slog"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/graphbench/config"
)

// newLogger returns a text logger for terminals (or format "text") and a
// JSON logger otherwise.
func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatText || (format == config.LogFormatAuto && isTerminal(w)) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
