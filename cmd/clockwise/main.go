package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirapatk/clockwise/internal/cli"
	"github.com/sirapatk/clockwise/internal/config"
	"github.com/sirapatk/clockwise/internal/db"
	"github.com/sirapatk/clockwise/internal/repository"
	"github.com/sirapatk/clockwise/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	entryRepo := repository.NewSQLiteTimeEntryRepo(database)
	leaveRepo := repository.NewSQLiteLeaveRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Timesheet: service.NewTimesheetService(entryRepo, uow),
		Leaves:    service.NewLeaveService(leaveRepo, uow),
		Holidays:  service.NewHolidayService(holidayRepo),
		Profiles:  service.NewProfileService(profileRepo),
		Config:    cfg,
	}

	// Detect interactive terminal for the live view and forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
