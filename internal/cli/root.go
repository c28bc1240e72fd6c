package cli

import (
	"github.com/pacerapp/pacer/internal/app"
	"github.com/spf13/cobra"
)

// App holds references to all use-case ports consumed by CLI commands.
type App struct {
	Plan      app.PlanUseCase
	Reconcile app.ReconcileUseCase
	Status    app.StatusUseCase
	Schedule  app.ScheduleUseCase
	Intake    app.IntakeUseCase
	Workouts  app.LogWorkoutUseCase
	Readiness app.ReadinessUseCase
	Absence   app.AbsenceUseCase

	// IsInteractive reports whether stdin is a terminal; the intake form
	// falls back to flag-only mode when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pacer" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pacer",
		Short: "Adaptive training planner",
	}

	root.AddCommand(
		newPlanCmd(a),
		newReconcileCmd(a),
		newStatusCmd(a),
		newScheduleCmd(a),
		newIntakeCmd(a),
		newWorkoutCmd(a),
		newReadinessCmd(a),
		newAbsenceCmd(a),
	)

	return root
}
