package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sirapatk/clockwise/internal/cli/formatter"
	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/spf13/cobra"
)

func newLeaveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Request and review time off",
	}

	cmd.AddCommand(
		newLeaveRequestCmd(app),
		newLeaveListCmd(app),
		newLeaveDecisionCmd(app, "approve", "Approve a pending leave request"),
		newLeaveDecisionCmd(app, "reject", "Reject a pending leave request"),
	)

	return cmd
}

func newLeaveRequestCmd(app *App) *cobra.Command {
	var leaveType, from, to, reason string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "File a leave request",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := requireWorker(app)
			if err != nil {
				return err
			}

			// Flags fully specify the request; otherwise fall back to a
			// form when a terminal is attached.
			if leaveType == "" || from == "" || to == "" {
				if !interactive(app) {
					return fmt.Errorf("missing --type, --from or --to (required when not running interactively)")
				}
				if err := runLeaveForm(&leaveType, &from, &to, &reason); err != nil {
					return err
				}
			}

			start, err := parseDate(from)
			if err != nil {
				return err
			}
			end, err := parseDate(to)
			if err != nil {
				return err
			}

			req, err := app.Leaves.Request(ctx, workerID, domain.LeaveType(leaveType), start, end, strings.TrimSpace(reason))
			if err != nil {
				return err
			}

			fmt.Printf("Filed %s leave %s – %s (%d day(s)), status %s\n",
				req.Type,
				formatter.HumanDate(req.StartDate),
				formatter.HumanDate(req.EndDate),
				req.Days(),
				req.Status)
			fmt.Println(formatter.Dim("id: " + req.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&leaveType, "type", "", "Leave type (vacation, sick, personal)")
	cmd.Flags().StringVar(&from, "from", "", "First day of leave (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of leave, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reason, "reason", "", "Free-form reason shown to the approver")
	return cmd
}

func runLeaveForm(leaveType, from, to, reason *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Leave Type").
				Options(
					huh.NewOption("Vacation", string(domain.LeaveVacation)),
					huh.NewOption("Sick", string(domain.LeaveSick)),
					huh.NewOption("Personal", string(domain.LeavePersonal)),
				).
				Value(leaveType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("First Day (YYYY-MM-DD)").
				Placeholder("2026-09-01").
				Value(from).
				Validate(validateDate),
			huh.NewInput().
				Title("Last Day (YYYY-MM-DD, inclusive)").
				Placeholder("2026-09-05").
				Value(to).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Reason (optional)").
				Value(reason),
		),
	).WithTheme(clockwiseHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func newLeaveListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your leave requests, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := requireWorker(app)
			if err != nil {
				return err
			}

			requests, err := app.Leaves.ListByWorker(ctx, workerID)
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				fmt.Println(formatter.Dim("No leave requests yet."))
				return nil
			}

			rows := make([][]string, 0, len(requests))
			for _, r := range requests {
				rows = append(rows, []string{
					formatter.TruncID(r.ID),
					string(r.Type),
					formatter.HumanDate(r.StartDate),
					formatter.HumanDate(r.EndDate),
					strconv.Itoa(r.Days()),
					formatter.LeavePill(r.Status),
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"ID", "TYPE", "FROM", "TO", "DAYS", "STATUS"}, rows))
			return nil
		},
	}
}

func newLeaveDecisionCmd(app *App, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			var err error
			if use == "approve" {
				err = app.Leaves.Approve(ctx, id)
			} else {
				err = app.Leaves.Reject(ctx, id)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Request %s %sd\n", id, use)
			return nil
		},
	}
}
