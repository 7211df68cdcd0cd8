package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jmalmgren/tempus/internal/cli"
	"github.com/jmalmgren/tempus/internal/db"
	"github.com/jmalmgren/tempus/internal/repository"
	"github.com/jmalmgren/tempus/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempus/tempus.db
	dbPath := os.Getenv("TEMPUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempus", "tempus.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	availRepo := repository.NewSQLiteAvailabilityRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var taskOpts []service.TaskServiceOption
	if os.Getenv("TEMPUS_LOG") != "" {
		taskOpts = append(taskOpts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	app := &cli.App{
		Tasks:        service.NewTaskService(taskRepo, categoryRepo, availRepo, taskOpts...),
		Categories:   service.NewCategoryService(categoryRepo),
		Availability: service.NewAvailabilityService(availRepo),
		Timeline:     service.NewTimelineService(taskRepo, availRepo),
		Import:       service.NewImportService(uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
