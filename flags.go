package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"
)

var (
	// Global flags
	FlagVerbose string

	// Frame generation flags, shared by select and sweep
	FlagTopK     int
	FlagSeed     int64
	FlagMaxValue uint16

	// select flags
	FlagRows int
	FlagCols int

	// sweep flags
	FlagSide    int
	FlagWorkers int
)

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&FlagVerbose, "log-verbose", "INFO", "Log verbosity level (DEBUG, INFO, WARN, ERROR)")
}

func addSelectFlags(fs *pflag.FlagSet) {
	fs.IntVar(&FlagRows, "rows", 256, "Generated frame rows")
	fs.IntVar(&FlagCols, "cols", 256, "Generated frame columns")
	fs.IntVar(&FlagTopK, "top", 50, "Number of brightest pixels to keep")
	fs.Int64Var(&FlagSeed, "seed", 0, "Frame generator seed")
	fs.Uint16Var(&FlagMaxValue, "max-value", 255, "Upper bound for generated pixel values")
}

func addSweepFlags(fs *pflag.FlagSet) {
	fs.IntVar(&FlagSide, "side", 64, "Sweep inputs of every size up to side*side")
	fs.IntVar(&FlagTopK, "top", 50, "Number of brightest pixels to keep per case")
	fs.Int64Var(&FlagSeed, "seed", 0, "Base seed; case n uses seed+n")
	fs.Uint16Var(&FlagMaxValue, "max-value", 255, "Upper bound for generated pixel values")
	fs.IntVar(&FlagWorkers, "workers", 4, "Concurrent sweep workers")
}

func validateFlags() error {
	switch FlagVerbose {
	case "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	default:
		return fmt.Errorf("invalid --log-verbose %q (want DEBUG, INFO, WARN or ERROR)", FlagVerbose)
	}
}

func logLevel() slog.Level {
	switch FlagVerbose {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
