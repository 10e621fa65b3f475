package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of today's timeline with clock-in keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID, err := requireWorker(app)
			if err != nil {
				return err
			}
			if !interactive(app) {
				return fmt.Errorf("watch needs an interactive terminal; use `clockwise today` instead")
			}

			m := newWatchModel(app, workerID)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
}
