package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCmd(flags *rootFlags) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Take readings from the long range scanner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			return runScan(cmd, flags, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of readings to take")

	return cmd
}

func runScan(cmd *cobra.Command, flags *rootFlags, count int) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		app.Scanner.Scan()
	}
	return nil
}
