package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "render STYLE MESSAGE...",
		Short: "Print a message through a named style",
		Long: "Print a message through one of the scanner styles. " +
			"Unknown style names fall back to the unstyled default.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			name, msg := args[0], strings.Join(args[1:], " ")
			if _, ok := app.Sheet.Lookup(name); !ok {
				app.Logger.DebugFields("style not registered, using default", map[string]any{"style": name})
			}

			if noNewline {
				app.Sheet.Print(name, msg)
			} else {
				app.Sheet.Println(name, msg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not print the trailing newline")

	return cmd
}
