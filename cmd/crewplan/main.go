package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crewplanhq/crewplan/internal/cli"
	"github.com/crewplanhq/crewplan/internal/db"
	"github.com/crewplanhq/crewplan/internal/repository"
	"github.com/crewplanhq/crewplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.crewplan/crewplan.db
	dbPath := os.Getenv("CREWPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".crewplan", "crewplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	teamRepo := repository.NewSQLiteTeamRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	logger := newLogger()
	observer := service.NewSlogUseCaseObserver(logger)

	app := &cli.App{
		Teams:       service.NewTeamService(teamRepo),
		Projects:    service.NewProjectService(projectRepo),
		Assignments: service.NewAssignmentService(assignmentRepo, projectRepo, teamRepo),
		Plan:        service.NewPlanService(teamRepo, projectRepo, assignmentRepo, planRepo, uow, logger, observer),
		Status:      service.NewStatusService(teamRepo, projectRepo, assignmentRepo),
		Import:      service.NewImportService(uow, observer),
	}

	return cli.NewRootCmd(app).Execute()
}

// newLogger builds the debug logger. Scheduling telemetry only shows up when
// CREWPLAN_DEBUG is set; it goes to stderr so piped plan output stays clean.
func newLogger() *slog.Logger {
	if os.Getenv("CREWPLAN_DEBUG") == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
