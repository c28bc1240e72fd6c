package scheduler

import (
	"testing"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actual(id string, date time.Time, modality domain.Modality, min int) domain.ClassifiedWorkout {
	return domain.ClassifiedWorkout{
		Workout:  domain.Workout{ID: id, Type: string(modality), Date: date, DurationMin: min},
		Modality: modality,
	}
}

func TestReconcile_MatchedSessionCompleted(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)
	planned := plannedSession(domain.AddDays(today, -2), domain.SessionZone2, domain.StressNormal)
	planned.ID = "ps-1"

	result := Reconcile(ReconcileInput{
		Planned: []domain.PlanSession{planned},
		Actuals: []domain.ClassifiedWorkout{
			actual("w-1", domain.AddDays(today, -2), domain.ModalityEndurance, 44),
		},
		Today: today,
	})

	require.Len(t, result.Transitions, 1)
	tr := result.Transitions[0]
	assert.Equal(t, domain.StatusCompleted, tr.To)
	assert.Equal(t, RuleMatchedActual, tr.Rule)
	assert.Equal(t, "w-1", tr.MatchedWorkoutID)
}

func TestReconcile_NearestDurationTieBreak(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)
	date := domain.AddDays(today, -1)
	planned := plannedSession(date, domain.SessionZone2, domain.StressNormal) // 45 min

	result := Reconcile(ReconcileInput{
		Planned: []domain.PlanSession{planned},
		Actuals: []domain.ClassifiedWorkout{
			actual("w-short", date, domain.ModalityEndurance, 20),
			actual("w-close", date, domain.ModalityEndurance, 48),
			actual("w-long", date, domain.ModalityEndurance, 95),
		},
		Today: today,
	})

	require.Len(t, result.Transitions, 1)
	assert.Equal(t, "w-close", result.Transitions[0].MatchedWorkoutID)
}

func TestReconcile_ActualConsumedOnce(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)
	date := domain.AddDays(today, -1)
	a := plannedSession(date, domain.SessionZone2, domain.StressNormal)
	b := plannedSession(date, domain.SessionTempo, domain.StressHard)

	result := Reconcile(ReconcileInput{
		Planned: []domain.PlanSession{a, b},
		Actuals: []domain.ClassifiedWorkout{
			actual("w-1", date, domain.ModalityEndurance, 45),
		},
		Today: today,
	})

	require.Len(t, result.Transitions, 2)
	completed, missed := 0, 0
	for _, tr := range result.Transitions {
		switch tr.To {
		case domain.StatusCompleted:
			completed++
		case domain.StatusMissed:
			missed++
		}
	}
	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, missed)
}

func TestReconcile_ModalityMustMatch(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)
	date := domain.AddDays(today, -1)
	planned := plannedSession(date, domain.SessionStrength, domain.StressNormal)

	result := Reconcile(ReconcileInput{
		Planned: []domain.PlanSession{planned},
		Actuals: []domain.ClassifiedWorkout{
			actual("w-run", date, domain.ModalityEndurance, 45),
		},
		Today: today,
	})

	require.Len(t, result.Transitions, 1)
	assert.Equal(t, domain.StatusMissed, result.Transitions[0].To)
}

func TestReconcile_StatusWindowForcesSkipAndDeload(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)
	date := domain.AddDays(today, -2)
	planned := plannedSession(date, domain.SessionLongRun, domain.StressHard)

	since := domain.AddDays(today, -4)
	result := Reconcile(ReconcileInput{
		Planned: []domain.PlanSession{planned},
		Window:  &domain.StatusWindow{Kind: domain.StatusIllness, Since: &since, Until: today},
		Today:   today,
	})

	require.Len(t, result.Transitions, 1)
	assert.Equal(t, domain.StatusSkipped, result.Transitions[0].To)
	assert.Equal(t, RuleStatusWindowSkip, result.Transitions[0].Rule)
	assert.True(t, result.DeloadFlag)
	// Skipped sessions do not bump carryover quotas.
	assert.Zero(t, result.CarryoverEndurance)
}

func TestReconcile_SubstitutionRules(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)

	tests := []struct {
		name      string
		sessType  domain.SessionType
		daysAgo   int
		wantRule  string
		wantCarry bool
	}{
		{"long run always carries", domain.SessionLongRun, 5, RuleMissedCarryover, true},
		{"tempo carries within 72h", domain.SessionTempo, 2, RuleMissedCarryover, true},
		{"tempo dropped after window", domain.SessionTempo, 4, RuleMissedDropped, false},
		{"intervals dropped first", domain.SessionIntervals, 1, RuleMissedDropped, false},
		{"strength safe equivalent swap", domain.SessionStrength, 2, RuleMissedCarryover, true},
		{"easy volume not chased", domain.SessionZone2, 1, RuleMissedDropped, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hardness := domain.StressHard
			if tt.sessType == domain.SessionZone2 || tt.sessType == domain.SessionStrength {
				hardness = domain.StressNormal
			}
			planned := plannedSession(domain.AddDays(today, -tt.daysAgo), tt.sessType, hardness)

			result := Reconcile(ReconcileInput{
				Planned: []domain.PlanSession{planned},
				Today:   today,
			})

			require.Len(t, result.Transitions, 1)
			assert.Equal(t, domain.StatusMissed, result.Transitions[0].To)
			assert.Equal(t, tt.wantRule, result.Transitions[0].Rule)

			carried := result.CarryoverEndurance+result.CarryoverStrength > 0
			assert.Equal(t, tt.wantCarry, carried)
		})
	}
}

func TestReconcile_FutureAndTerminalUntouched(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)

	futureSession := plannedSession(domain.AddDays(today, 1), domain.SessionZone2, domain.StressNormal)
	doneSession := plannedSession(domain.AddDays(today, -1), domain.SessionZone2, domain.StressNormal)
	doneSession.Status = domain.StatusCompleted

	result := Reconcile(ReconcileInput{
		Planned: []domain.PlanSession{futureSession, doneSession},
		Today:   today,
	})

	assert.Empty(t, result.Transitions)
}

func TestReconcile_Idempotent(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)
	date := domain.AddDays(today, -1)
	planned := plannedSession(date, domain.SessionZone2, domain.StressNormal)
	actuals := []domain.ClassifiedWorkout{actual("w-1", date, domain.ModalityEndurance, 45)}

	first := Reconcile(ReconcileInput{Planned: []domain.PlanSession{planned}, Actuals: actuals, Today: today})
	require.Len(t, first.Transitions, 1)

	// Apply the decided status, then reconcile again: no new transitions.
	planned.Status = first.Transitions[0].To
	second := Reconcile(ReconcileInput{Planned: []domain.PlanSession{planned}, Actuals: actuals, Today: today})
	assert.Empty(t, second.Transitions)
}
