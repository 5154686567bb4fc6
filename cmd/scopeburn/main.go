package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/martinhruska/scopeburn/internal/calendar"
	"github.com/martinhruska/scopeburn/internal/cli"
	"github.com/martinhruska/scopeburn/internal/db"
	"github.com/martinhruska/scopeburn/internal/repository"
	"github.com/martinhruska/scopeburn/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.scopeburn/scopeburn.db
	dbPath := os.Getenv("SCOPEBURN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".scopeburn", "scopeburn.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	memberRepo := repository.NewSQLiteTeamMemberRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	workflowRepo := repository.NewSQLiteWorkflowRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo),
		Team:        service.NewTeamService(memberRepo),
		Assignments: service.NewAssignmentService(assignmentRepo, projectRepo, memberRepo),
		Workflows:   service.NewWorkflowService(workflowRepo, projectRepo),
		Settings:    service.NewSettingsService(settingsRepo),
		Forecast: service.NewForecastService(
			projectRepo, memberRepo, assignmentRepo, workflowRepo, settingsRepo, calendar.New(),
		),
		Import: service.NewImportService(uow),
	}

	// Interactive forms and the board need a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
