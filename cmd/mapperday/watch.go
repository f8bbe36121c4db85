package main

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cliexp/internal/tui"
)

var errNotTerminal = errors.New("watch needs an interactive terminal; use scan instead")

// isTerminal is swapped in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newWatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show a live feed of scanner readings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				return errNotTerminal
			}

			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			model := tui.NewModel(app.Scanner, tui.Options{
				Interval: app.Config.Scanner.Interval,
				History:  app.Config.Scanner.History,
			})

			app.Logger.Debug("starting watch")
			_, err = tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(cmd.InOrStdin())).Run()
			return err
		},
	}
}
