package service

import (
	"context"
	"testing"
	"time"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is a fixed reference instant: Monday 2025-03-17, ISO week 12.
var monday = time.Date(2025, time.March, 17, 8, 0, 0, 0, time.UTC)

func planAt(t *testing.T, env *testEnv, now time.Time) *app.PlanResponse {
	t.Helper()
	resp, err := env.plan.Plan(context.Background(), app.PlanRequest{Now: &now})
	require.NoError(t, err)
	return resp
}

func TestPlan_NoIntake(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.plan.Plan(context.Background(), app.PlanRequest{Now: &monday})
	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrNoIntake, planErr.Code)
}

func TestPlan_InvalidConstraintsFailFast(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Bypass intake validation: Monday is both available and a rest day.
	bad := testutil.NewTestIntake()
	bad.Constraints.PreferredRestDays[time.Monday] = true
	require.NoError(t, env.intake.Replace(ctx, bad))

	_, err := env.plan.Plan(ctx, app.PlanRequest{Now: &monday})
	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrInvalidConstraints, planErr.Code)

	// Nothing published.
	sessions, listErr := env.schedule.ListRange(ctx,
		testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23))
	require.NoError(t, listErr)
	assert.Empty(t, sessions)
}

func TestPlan_HybridWeekWithoutHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.intakeSvc.SaveIntake(ctx, testutil.NewTestIntake()))

	resp := planAt(t, env, monday)

	assert.True(t, resp.Flagged(app.FlagInsufficientData))
	assert.Equal(t, domain.RiskUnknown, resp.Risk)
	assert.False(t, resp.Deload)
	require.Len(t, resp.Sessions, 5, "3 endurance + 2 strength")

	assert.Equal(t, domain.SessionLongRun, resp.Sessions[0].Type)
	assert.Equal(t, "2025-03-17", resp.Sessions[0].Date)
	assert.Equal(t, 60, resp.Sessions[0].DurationMin)

	var endurance, strength, intervals int
	for _, sv := range resp.Sessions {
		switch sv.Modality {
		case domain.ModalityEndurance:
			endurance++
		case domain.ModalityStrength:
			strength++
		}
		if sv.Type == domain.SessionIntervals {
			intervals++
		}
	}
	assert.Equal(t, 3, endurance)
	assert.Equal(t, 2, strength)
	assert.Equal(t, 1, intervals, "even ISO week picks intervals as the quality session")

	// Published atomically and readable back.
	stored, err := env.schedule.ListByStatus(ctx, domain.StatusPlanned)
	require.NoError(t, err)
	assert.Len(t, stored, 5)
}

func TestPlan_HighLoadRatioTriggersDeload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.intakeSvc.SaveIntake(ctx, testutil.NewTestIntake()))

	// A quiet chronic month followed by a heavy trailing week: acute 360,
	// chronic (360+70)/4 = 107.5, ratio well above 2.0.
	for i := 21; i <= 27; i++ {
		w := testutil.NewTestWorkout(testutil.Date(2025, time.March, 17).AddDate(0, 0, -i), "run", 10)
		require.NoError(t, env.workout.LogWorkout(ctx, w))
	}
	for i := 1; i <= 6; i++ {
		w := testutil.NewTestWorkout(testutil.Date(2025, time.March, 17).AddDate(0, 0, -i), "run", 60)
		require.NoError(t, env.workout.LogWorkout(ctx, w))
	}

	resp := planAt(t, env, monday)

	assert.Equal(t, domain.RiskHigh, resp.Risk)
	assert.True(t, resp.Deload)
	assert.True(t, resp.Flagged(app.FlagDeloadActive))
	require.NotNil(t, resp.LoadRatio)
	assert.Greater(t, resp.LoadRatio.Ratio, 2.0)

	// Hard sessions scale by 0.55, easy by 0.75.
	require.Equal(t, domain.SessionLongRun, resp.Sessions[0].Type)
	assert.Equal(t, 33, resp.Sessions[0].DurationMin, "60 * 0.55")
	for _, sv := range resp.Sessions {
		if sv.Type == domain.SessionStrength {
			assert.Equal(t, 38, sv.DurationMin, "50 * 0.75 rounded")
		}
		assert.Contains(t, sv.Notes, "deload")
	}
}

func TestPlan_NoOpenSlotsFlag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := testutil.NewTestIntake()
	// Only Saturday available, and a standing appointment blocks it.
	in.Constraints.DaysAvailable = map[time.Weekday]bool{time.Saturday: true}
	in.Constraints.FixedAppointments = []domain.FixedAppointment{{Weekday: time.Saturday}}
	require.NoError(t, env.intakeSvc.SaveIntake(ctx, in))

	resp := planAt(t, env, monday)

	assert.True(t, resp.Flagged(app.FlagNoOpenSlots))
	assert.Empty(t, resp.Sessions)
}

func TestPlan_QuotaCarryoverFlagWhenSlotsRunOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := testutil.NewTestIntake()
	in.Constraints.DaysAvailable = map[time.Weekday]bool{
		time.Monday: true, time.Wednesday: true,
	}
	in.Constraints.PreferredRestDays = map[time.Weekday]bool{time.Sunday: true}
	require.NoError(t, env.intakeSvc.SaveIntake(ctx, in))

	resp := planAt(t, env, monday)

	assert.Len(t, resp.Sessions, 2, "two open slots for five quota sessions")
	assert.True(t, resp.Flagged(app.FlagQuotaCarryover))
}

func TestPlan_AbsenceWindowBlocksDays(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.intakeSvc.SaveIntake(ctx, testutil.NewTestIntake()))
	require.NoError(t, env.absence.SetAbsence(ctx, domain.StatusWindow{
		Kind:  domain.StatusIllness,
		Until: testutil.Date(2025, time.March, 19),
	}))

	resp := planAt(t, env, monday)

	assert.True(t, resp.Flagged(app.FlagAbsenceActive))
	for _, sv := range resp.Sessions {
		assert.Greater(t, sv.Date, "2025-03-19", "no session inside the illness window")
	}
}

func TestPlan_ReadinessGateDowngradesEarliestHardSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.intakeSvc.SaveIntake(ctx, testutil.NewTestIntake()))
	require.NoError(t, env.ready.RecordReadiness(ctx, domain.ReadinessScore{
		Date:    testutil.Date(2025, time.March, 17),
		Score:   40,
		Quality: domain.ReadinessOK,
	}))

	resp := planAt(t, env, monday)

	// The long run planned for today is downgraded to easy volume.
	require.NotEmpty(t, resp.Sessions)
	first := resp.Sessions[0]
	assert.Equal(t, "2025-03-17", first.Date)
	assert.Equal(t, domain.SessionZone2, first.Type)
	assert.Contains(t, first.Notes, "readiness downgrade (score 40)")
}

func TestPlan_RerunSameDayIsStable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.intakeSvc.SaveIntake(ctx, testutil.NewTestIntake()))

	first := planAt(t, env, monday)
	second := planAt(t, env, monday)

	require.Len(t, second.Sessions, len(first.Sessions))
	for i := range first.Sessions {
		assert.Equal(t, first.Sessions[i].Date, second.Sessions[i].Date)
		assert.Equal(t, first.Sessions[i].Type, second.Sessions[i].Type)
		assert.Equal(t, first.Sessions[i].DurationMin, second.Sessions[i].DurationMin)
	}

	stored, err := env.schedule.ListByStatus(ctx, domain.StatusPlanned)
	require.NoError(t, err)
	assert.Len(t, stored, len(first.Sessions), "re-planning replaces, never accumulates")
}
