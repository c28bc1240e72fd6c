package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pacerapp/pacer/internal/cli"
	"github.com/pacerapp/pacer/internal/config"
	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/repository"
	"github.com/pacerapp/pacer/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config path: env var or default ~/.pacer/config.yaml
	cfgPath := os.Getenv("PACER_CONFIG")
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".pacer", "config.yaml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	intakeRepo := repository.NewSQLiteIntakeRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)
	readinessRepo := repository.NewSQLiteReadinessRepo(database)
	windowRepo := repository.NewSQLiteStatusWindowRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	params := cfg.Params()

	var observers []service.UseCaseObserver
	if os.Getenv("PACER_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	planSvc := service.NewPlanService(workoutRepo, intakeRepo, scheduleRepo,
		auditRepo, readinessRepo, windowRepo, uow, params, observers...)

	app := &cli.App{
		Plan: planSvc,
		Reconcile: service.NewReconcileService(workoutRepo, scheduleRepo,
			windowRepo, uow, planSvc, params, observers...),
		Status: service.NewStatusService(workoutRepo, scheduleRepo, auditRepo,
			readinessRepo, windowRepo, params),
		Schedule:  service.NewScheduleService(scheduleRepo, params),
		Intake:    service.NewIntakeService(intakeRepo, uow),
		Workouts:  service.NewWorkoutService(workoutRepo),
		Readiness: service.NewReadinessService(readinessRepo),
		Absence:   service.NewAbsenceService(windowRepo),
	}

	// Detect interactive terminal for the intake form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
