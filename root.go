package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brightpix",
		Short: "Brightest-pixel extractor",
		Long: "brightpix finds the K highest-valued pixels of a frame in one pass\n" +
			"with O(K) memory, using a bounded min-heap as the working set.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(); err != nil {
				return err
			}
			initLogger(logLevel())
			return nil
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(SelectCmd())
	rootCmd.AddCommand(SweepCmd())

	return rootCmd
}

func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
