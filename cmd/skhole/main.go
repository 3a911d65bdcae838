package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evadimova/skhole/internal/cli"
	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/evadimova/skhole/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.skhole/skhole.db
	dbPath := os.Getenv("SKHOLE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".skhole", "skhole.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Subjects:   service.NewSubjectService(subjectRepo),
		Tasks:      service.NewTaskService(taskRepo, subjectRepo, sessionRepo, uow),
		Sessions:   service.NewSessionService(sessionRepo),
		Plan:       service.NewPlanService(subjectRepo, taskRepo, sessionRepo, settingsRepo, uow),
		CatchUp:    service.NewCatchUpService(subjectRepo, taskRepo, sessionRepo, settingsRepo, uow),
		Reschedule: service.NewRescheduleService(subjectRepo, sessionRepo, uow),
		Status:     service.NewStatusService(subjectRepo, taskRepo, sessionRepo),
		Settings:   service.NewSettingsService(settingsRepo),
		Import:     service.NewImportService(uow),
	}

	// Interactive prompts only when stdin is a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
