package main

import (
	"log/slog"
	"os"
)

func initLogger(level slog.Level) {
	// Text handler on stderr; stdout is reserved for the report table.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
