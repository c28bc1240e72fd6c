package scheduler

import (
	"testing"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plannedSession(date time.Time, st domain.SessionType, hardness domain.StressTier) domain.PlanSession {
	modality := domain.ModalityEndurance
	if st == domain.SessionStrength {
		modality = domain.ModalityStrength
	}
	return domain.PlanSession{
		Date:        date,
		Modality:    modality,
		Type:        st,
		DurationMin: 45,
		Hardness:    hardness,
		Status:      domain.StatusPlanned,
	}
}

func TestHardCeiling(t *testing.T) {
	assert.Equal(t, 3, HardCeiling(0, domain.LevelIntermediate))
	assert.Equal(t, 2, HardCeiling(4, domain.LevelBeginner))
	assert.Equal(t, 3, HardCeiling(5, domain.LevelIntermediate))
	assert.Equal(t, 5, HardCeiling(5, domain.LevelAdvanced))
	assert.Equal(t, 2, HardCeiling(1, domain.LevelAdvanced))
	assert.Equal(t, 5, HardCeiling(9, domain.LevelAdvanced))
}

func TestApplyGuardrails_AdjacentHardDemoted(t *testing.T) {
	mon := domain.NewDate(2025, 3, 10)
	sessions := []domain.PlanSession{
		plannedSession(mon, domain.SessionLongRun, domain.StressHard),
		plannedSession(domain.AddDays(mon, 1), domain.SessionTempo, domain.StressHard),
	}

	result := ApplyGuardrails(sessions, nil, 3)

	require.Len(t, result.Sessions, 2)
	assert.Equal(t, domain.SessionLongRun, result.Sessions[0].Type)
	assert.Equal(t, domain.SessionZone2, result.Sessions[1].Type)
	assert.Equal(t, domain.StressNormal, result.Sessions[1].Hardness)
	assert.Equal(t, []string{domain.FormatDate(domain.AddDays(mon, 1))}, result.Demoted)
}

func TestApplyGuardrails_NoAdjacentHardPairsRemain(t *testing.T) {
	mon := domain.NewDate(2025, 3, 10)
	sessions := []domain.PlanSession{
		plannedSession(mon, domain.SessionIntervals, domain.StressVeryHard),
		plannedSession(domain.AddDays(mon, 1), domain.SessionTempo, domain.StressHard),
		plannedSession(domain.AddDays(mon, 2), domain.SessionLongRun, domain.StressHard),
	}

	result := ApplyGuardrails(sessions, nil, 5)

	for i := 1; i < len(result.Sessions); i++ {
		prev, cur := result.Sessions[i-1], result.Sessions[i]
		if domain.DaysBetween(prev.Date, cur.Date) == 1 {
			assert.False(t, prev.Hardness.IsHard() && cur.Hardness.IsHard(),
				"adjacent hard pair %s / %s", domain.FormatDate(prev.Date), domain.FormatDate(cur.Date))
		}
	}
}

func TestApplyGuardrails_NonAdjacentHardKept(t *testing.T) {
	mon := domain.NewDate(2025, 3, 10)
	sessions := []domain.PlanSession{
		plannedSession(mon, domain.SessionLongRun, domain.StressHard),
		plannedSession(domain.AddDays(mon, 2), domain.SessionTempo, domain.StressHard),
	}

	result := ApplyGuardrails(sessions, nil, 3)
	require.Len(t, result.Sessions, 2)
	assert.Equal(t, domain.SessionTempo, result.Sessions[1].Type)
	assert.Empty(t, result.Demoted)
}

func TestApplyGuardrails_HardStrengthAfterVeryHardDropped(t *testing.T) {
	mon := domain.NewDate(2025, 3, 10)
	heavy := plannedSession(domain.AddDays(mon, 1), domain.SessionStrength, domain.StressHard)
	sessions := []domain.PlanSession{
		plannedSession(mon, domain.SessionIntervals, domain.StressVeryHard),
		heavy,
	}

	result := ApplyGuardrails(sessions, nil, 3)

	// Strength has no safe endurance substitute, so the later session drops.
	require.Len(t, result.Sessions, 1)
	assert.Equal(t, domain.SessionIntervals, result.Sessions[0].Type)
	assert.Contains(t, result.Dropped, heavy.Title())
}

func TestApplyGuardrails_WeeklyBudgetDropsIntervalsFirst(t *testing.T) {
	mon := domain.NewDate(2025, 3, 10)
	sessions := []domain.PlanSession{
		plannedSession(mon, domain.SessionLongRun, domain.StressHard),
		plannedSession(domain.AddDays(mon, 2), domain.SessionTempo, domain.StressHard),
		plannedSession(domain.AddDays(mon, 4), domain.SessionIntervals, domain.StressVeryHard),
	}

	result := ApplyGuardrails(sessions, nil, 2)

	require.Len(t, result.Sessions, 2)
	for _, s := range result.Sessions {
		assert.NotEqual(t, domain.SessionIntervals, s.Type)
	}
	assert.Equal(t, []string{"Intervals"}, result.Dropped)
}

func TestApplyGuardrails_CompletedHardCountsAgainstBudget(t *testing.T) {
	mon := domain.NewDate(2025, 3, 10)
	week := domain.FormatDate(mon)
	sessions := []domain.PlanSession{
		plannedSession(domain.AddDays(mon, 2), domain.SessionLongRun, domain.StressHard),
		plannedSession(domain.AddDays(mon, 4), domain.SessionTempo, domain.StressHard),
	}

	// Two hard sessions already completed this week leave room for only one
	// more under a ceiling of three.
	result := ApplyGuardrails(sessions, map[string]int{week: 2}, 3)

	require.Len(t, result.Sessions, 1)
	assert.Equal(t, domain.SessionLongRun, result.Sessions[0].Type)
	assert.Equal(t, []string{"Tempo"}, result.Dropped)
}

func TestApplyGuardrails_BudgetIsPerCalendarWeek(t *testing.T) {
	// Window spans a week boundary: Sat/Sun-Mon. Three hard sessions split
	// 1 + 2 across weeks stay under a per-week ceiling of two.
	sat := domain.NewDate(2025, 3, 15)
	sessions := []domain.PlanSession{
		plannedSession(sat, domain.SessionLongRun, domain.StressHard),
		plannedSession(domain.AddDays(sat, 2), domain.SessionTempo, domain.StressHard), // Monday, next week
		plannedSession(domain.AddDays(sat, 4), domain.SessionLongRun, domain.StressHard),
	}

	result := ApplyGuardrails(sessions, nil, 2)
	assert.Len(t, result.Sessions, 3)
	assert.Empty(t, result.Dropped)
}
