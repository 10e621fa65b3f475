package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sirapatk/clockwise/internal/cli/formatter"
	"github.com/sirapatk/clockwise/internal/timeline"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's worked time and entry log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := requireWorker(app)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			events, err := app.Timesheet.DayEvents(ctx, workerID, now)
			if err != nil {
				return err
			}

			report := timeline.BuildDayReport(events, now)
			status := timeline.CurrentStatus(events)
			fmt.Print(formatter.FormatDayReport(&report, status, events, now))
			fmt.Println()
			return nil
		},
	}
}
