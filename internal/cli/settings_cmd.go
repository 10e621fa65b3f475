package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/sirapatk/clockwise/internal/cli/formatter"
	"github.com/sirapatk/clockwise/internal/config"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Worker profile and local configuration",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsEditCmd(app),
		newSettingsWorkerCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile and toggles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := requireWorker(app)
			if err != nil {
				return err
			}

			p, err := app.Profiles.Get(ctx, workerID)
			if err != nil {
				return err
			}

			name := p.DisplayName
			if name == "" {
				name = formatter.Dim("(not set)")
			}
			email := p.Email
			if email == "" {
				email = formatter.Dim("(not set)")
			}

			rows := [][]string{
				{"Worker", p.WorkerID},
				{"Name", name},
				{"Email", email},
				{"Default mode", app.Config.DefaultMode},
				{"Email notifications", onOff(p.EmailNotifications)},
				{"Push notifications", onOff(p.PushNotifications)},
				{"Worktime reminder", onOff(p.WorktimeReminder)},
				{"Leave status updates", onOff(p.LeaveStatusUpdate)},
				{"Share location", onOff(p.ShareLocation)},
				{"Auto checkout", onOff(p.AutoCheckout)},
				{"Break reminder", onOff(p.BreakReminder)},
			}

			fmt.Print(formatter.RenderTable([]string{"SETTING", "VALUE"}, rows))
			return nil
		},
	}
}

func onOff(v bool) string {
	if v {
		return formatter.StyleGreen.Render("on")
	}
	return formatter.Dim("off")
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the profile interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workerID, err := requireWorker(app)
			if err != nil {
				return err
			}
			if !interactive(app) {
				return fmt.Errorf("settings edit needs an interactive terminal")
			}

			p, err := app.Profiles.Get(ctx, workerID)
			if err != nil {
				return err
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Display Name").
						Value(&p.DisplayName),
					huh.NewInput().
						Title("Email").
						Value(&p.Email),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Email notifications").Value(&p.EmailNotifications),
					huh.NewConfirm().Title("Push notifications").Value(&p.PushNotifications),
					huh.NewConfirm().Title("Worktime reminder").Value(&p.WorktimeReminder),
					huh.NewConfirm().Title("Leave status updates").Value(&p.LeaveStatusUpdate),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Share location with entries").Value(&p.ShareLocation),
					huh.NewConfirm().Title("Auto checkout at end of day").Value(&p.AutoCheckout),
					huh.NewConfirm().Title("Break reminder").Value(&p.BreakReminder),
				),
			).WithTheme(clockwiseHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			if err := app.Profiles.Update(ctx, p); err != nil {
				return err
			}

			fmt.Println("Settings saved at", formatter.ClockTime(time.Now().UTC()))
			return nil
		},
	}
}

func newSettingsWorkerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "worker <id>",
		Short: "Set the worker this machine clocks for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			cfg.WorkerID = args[0]
			if err := config.Save(cfg); err != nil {
				return err
			}
			app.Config = cfg

			fmt.Printf("Clocking as %s\n", cfg.WorkerID)
			return nil
		},
	}
}
