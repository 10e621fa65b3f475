package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sirapatk/clockwise/internal/cli/formatter"
	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Record work time actions",
	}

	cmd.AddCommand(
		newClockActionCmd(app, "in", "Check in for work", domain.ActionCheckIn),
		newClockActionCmd(app, "out", "Check out", domain.ActionCheckOut),
		newClockActionCmd(app, "break", "Start a break", domain.ActionBreakStart),
		newClockActionCmd(app, "back", "Return from a break", domain.ActionBreakEnd),
	)

	return cmd
}

// addClockFlags registers the flags shared by all clock actions.
func addClockFlags(flags *pflag.FlagSet, mode, location *string, defaultMode string) {
	flags.StringVar(mode, "mode", defaultMode, "Work mode tag (office, wfh, field, meeting, ...)")
	flags.StringVar(location, "location", "", "Recorded position as \"lat,lng\"")
}

func newClockActionCmd(app *App, use, short string, action domain.EntryAction) *cobra.Command {
	var mode, location string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := requireWorker(app)
			if err != nil {
				return err
			}

			var loc *string
			if location != "" {
				loc = &location
			}

			e, err := app.Timesheet.Clock(ctx, workerID, action, mode, loc)
			if err != nil {
				// Nothing was recorded; prior state is unchanged.
				return err
			}

			fmt.Printf("Recorded %s at %s (%s)\n",
				action, formatter.ClockTime(e.Timestamp), e.WorkMode)

			// Recompute totals from the updated event set right away.
			report, err := app.Timesheet.DayReport(ctx, workerID, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("Worked today: %dh %02dm\n", report.Totals.Hours, report.Totals.Minutes)
			return nil
		},
	}

	addClockFlags(cmd.Flags(), &mode, &location, app.Config.DefaultMode)
	return cmd
}
