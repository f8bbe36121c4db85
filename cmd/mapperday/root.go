package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	please     bool
	color      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "mapperday",
		Short:         "Research developing CLI tools: a long range scanner with styled alerts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, take a single reading.
			return runScan(cmd, flags, 1)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.please, "please", "p", false, "No practical effect, but it's good to be kind")
	cmd.PersistentFlags().StringVar(&flags.color, "color", "", "Color output: auto, always or never (overrides config)")

	cmd.AddCommand(newScanCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
