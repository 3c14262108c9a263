package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"brightpix/frame"
	"brightpix/topk"
)

func SelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick the brightest pixels of a generated frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect()
		},
	}
	addSelectFlags(cmd.Flags())
	return cmd
}

func runSelect() error {
	f, err := frame.NewRandom(FlagRows, FlagCols, frame.Pixel(FlagMaxValue), FlagSeed)
	if err != nil {
		return errors.WithMessage(err, "generate frame")
	}
	slog.Info("frame generated", "rows", f.Rows, "cols", f.Cols, "pixels", f.N(), "seed", FlagSeed)

	h, err := topk.Select(f.Pix, FlagTopK)
	if err != nil {
		return errors.WithMessage(err, "select")
	}
	results := topk.DrainDesc(h)
	slog.Debug("selection drained", "kept", len(results))

	buildReport(f, results).PrintTable()
	return nil
}
