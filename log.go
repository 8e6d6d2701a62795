package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger returns the logger of the GUI. Without debug only warnings and
// errors are logged, to stderr. With debug everything is logged to a file.
func NewLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}

	w, err := debugLogWriter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't open debug log: %v\n", err)
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
