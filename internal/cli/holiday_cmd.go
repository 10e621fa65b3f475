package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sirapatk/clockwise/internal/cli/formatter"
	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Company holiday calendar",
	}

	cmd.AddCommand(
		newHolidayListCmd(app),
		newHolidayAddCmd(app),
	)

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	var upcoming int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List company holidays in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var holidays []*domain.Holiday
			var err error
			if upcoming > 0 {
				holidays, err = app.Holidays.Upcoming(ctx, time.Now().UTC(), upcoming)
			} else {
				holidays, err = app.Holidays.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(holidays) == 0 {
				fmt.Println(formatter.Dim("No holidays on the calendar."))
				return nil
			}

			rows := make([][]string, 0, len(holidays))
			for _, h := range holidays {
				rows = append(rows, []string{
					formatter.HumanDate(h.Date),
					h.Name,
					h.Note,
				})
			}

			fmt.Print(formatter.RenderTable([]string{"DATE", "NAME", "NOTE"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&upcoming, "upcoming", 0, "Show only the next N holidays from today")
	return cmd
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var date, note string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a holiday to the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			day, err := parseDate(date)
			if err != nil {
				return err
			}

			h, err := app.Holidays.Add(ctx, args[0], day, note)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s on %s\n", h.Name, formatter.HumanDate(h.Date))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Holiday date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
