package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStylesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List registered styles, each rendered in itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			for _, name := range app.Sheet.Names() {
				app.Sheet.Println(name, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Sheet.Default().Render("(default)"))
			return nil
		},
	}
}
