package service

import (
	"database/sql"
	"testing"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/repository"
	"github.com/pacerapp/pacer/internal/testutil"
)

// testEnv wires every service against one in-memory database.
type testEnv struct {
	db        *sql.DB
	workouts  *repository.SQLiteWorkoutRepo
	intake    *repository.SQLiteIntakeRepo
	schedule  *repository.SQLiteScheduleRepo
	audit     *repository.SQLiteAuditRepo
	readiness *repository.SQLiteReadinessRepo
	windows   *repository.SQLiteStatusWindowRepo

	plan      app.PlanUseCase
	reconcile app.ReconcileUseCase
	status    app.StatusUseCase
	schedules app.ScheduleUseCase
	intakeSvc app.IntakeUseCase
	workout   app.LogWorkoutUseCase
	ready     app.ReadinessUseCase
	absence   app.AbsenceUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	params := DefaultParams()

	env := &testEnv{
		db:        database,
		workouts:  repository.NewSQLiteWorkoutRepo(database),
		intake:    repository.NewSQLiteIntakeRepo(database),
		schedule:  repository.NewSQLiteScheduleRepo(database),
		audit:     repository.NewSQLiteAuditRepo(database),
		readiness: repository.NewSQLiteReadinessRepo(database),
		windows:   repository.NewSQLiteStatusWindowRepo(database),
	}

	env.plan = NewPlanService(env.workouts, env.intake, env.schedule, env.audit, env.readiness, env.windows, uow, params)
	env.reconcile = NewReconcileService(env.workouts, env.schedule, env.windows, uow, env.plan, params)
	env.status = NewStatusService(env.workouts, env.schedule, env.audit, env.readiness, env.windows, params)
	env.schedules = NewScheduleService(env.schedule, params)
	env.intakeSvc = NewIntakeService(env.intake, uow)
	env.workout = NewWorkoutService(env.workouts)
	env.ready = NewReadinessService(env.readiness)
	env.absence = NewAbsenceService(env.windows)
	return env
}
