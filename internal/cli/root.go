package cli

import (
	"fmt"

	"github.com/sirapatk/clockwise/internal/config"
	"github.com/sirapatk/clockwise/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timesheet service.TimesheetService
	Leaves    service.LeaveService
	Holidays  service.HolidayService
	Profiles  service.ProfileService

	Config config.Config

	// IsInteractive reports whether stdin is a terminal; the live view
	// and interactive forms refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "clockwise" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "clockwise",
		Short: "Employee time and leave tracking",
	}

	root.AddCommand(
		newClockCmd(app),
		newTodayCmd(app),
		newWatchCmd(app),
		newLeaveCmd(app),
		newHolidayCmd(app),
		newSettingsCmd(app),
	)

	return root
}

// requireWorker resolves the worker this machine clocks for.
func requireWorker(app *App) (string, error) {
	if app.Config.WorkerID == "" {
		return "", fmt.Errorf("no worker configured; run `clockwise settings worker <id>` or set CLOCKWISE_WORKER")
	}
	return app.Config.WorkerID, nil
}

func interactive(app *App) bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
