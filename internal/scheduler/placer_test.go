package scheduler

import (
	"testing"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSlots(from time.Time, n int) []time.Time {
	slots := make([]time.Time, n)
	for i := range slots {
		slots[i] = domain.AddDays(from, i)
	}
	return slots
}

func baseBaseline() domain.Baseline {
	return domain.Baseline{
		RunFrequencyPerWeek:      3,
		StrengthFrequencyPerWeek: 2,
		LongestRunMin:            90,
		Z2DurationMin:            45,
		StrengthSessionMin:       60,
		StrengthSplit:            domain.SplitFullBody,
	}
}

func TestPlaceSessions_EnduranceRotation(t *testing.T) {
	today := domain.NewDate(2025, 3, 15) // ISO week 11, odd: quality = tempo

	sessions := PlaceSessions(PlacementInput{
		Slots:    openSlots(today, 7),
		Targets:  Targets{RemainingEndurance: 4},
		Baseline: baseBaseline(),
		Factors:  DefaultDeloadFactors(),
		Today:    today,
	})

	require.Len(t, sessions, 4)
	assert.Equal(t, domain.SessionLongRun, sessions[0].Type)
	assert.Equal(t, domain.SessionZone2, sessions[1].Type)
	assert.Equal(t, domain.SessionTempo, sessions[2].Type)
	assert.Equal(t, domain.SessionZone2, sessions[3].Type)

	for _, s := range sessions {
		assert.Equal(t, domain.StatusPlanned, s.Status)
		assert.Equal(t, domain.ModalityEndurance, s.Modality)
	}
}

func TestPlaceSessions_QualityAlternatesByWeek(t *testing.T) {
	evenWeek := domain.NewDate(2025, 3, 17) // ISO week 12

	sessions := PlaceSessions(PlacementInput{
		Slots:    openSlots(evenWeek, 7),
		Targets:  Targets{RemainingEndurance: 3},
		Baseline: baseBaseline(),
		Factors:  DefaultDeloadFactors(),
		Today:    evenWeek,
	})

	require.Len(t, sessions, 3)
	assert.Equal(t, domain.SessionIntervals, sessions[2].Type)
	assert.Equal(t, domain.StressVeryHard, sessions[2].Hardness)
}

func TestPlaceSessions_HybridAlternatesModalities(t *testing.T) {
	// Spec scenario: six open slots Mon-Sat, endurance + strength goals, no
	// completed sessions. Expect alternation, one session per day, exactly
	// one long run.
	monday := domain.NewDate(2025, 3, 10)

	sessions := PlaceSessions(PlacementInput{
		Slots:    openSlots(monday, 6),
		Targets:  Targets{RemainingEndurance: 3, RemainingStrength: 2},
		Baseline: baseBaseline(),
		Factors:  DefaultDeloadFactors(),
		Today:    monday,
	})

	require.Len(t, sessions, 5)

	seenDates := make(map[string]bool)
	longRuns := 0
	for i, s := range sessions {
		key := domain.FormatDate(s.Date)
		assert.False(t, seenDates[key], "two sessions on %s", key)
		seenDates[key] = true
		if s.Type == domain.SessionLongRun {
			longRuns++
		}
		wantModality := domain.ModalityEndurance
		if i%2 == 1 {
			wantModality = domain.ModalityStrength
		}
		assert.Equal(t, wantModality, s.Modality, "slot %d", i)
	}
	assert.Equal(t, 1, longRuns)
}

func TestPlaceSessions_StrengthSplitRoundRobin(t *testing.T) {
	today := domain.NewDate(2025, 3, 10)
	b := baseBaseline()
	b.StrengthSplit = domain.SplitPushPullLegs

	sessions := PlaceSessions(PlacementInput{
		Slots:    openSlots(today, 5),
		Targets:  Targets{RemainingStrength: 4},
		Baseline: b,
		Factors:  DefaultDeloadFactors(),
		Today:    today,
	})

	require.Len(t, sessions, 4)
	variants := []string{sessions[0].Variant, sessions[1].Variant, sessions[2].Variant, sessions[3].Variant}
	assert.Equal(t, []string{"Push", "Pull", "Legs", "Push"}, variants)
}

func TestPlaceSessions_QuotaCarriesWhenSlotsRunOut(t *testing.T) {
	today := domain.NewDate(2025, 3, 10)

	sessions := PlaceSessions(PlacementInput{
		Slots:    openSlots(today, 2),
		Targets:  Targets{RemainingEndurance: 5},
		Baseline: baseBaseline(),
		Factors:  DefaultDeloadFactors(),
		Today:    today,
	})

	// Excess quota carries silently; placement never exceeds open slots.
	assert.Len(t, sessions, 2)
}

func TestPlaceSessions_DeloadScalesDurations(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)

	sessions := PlaceSessions(PlacementInput{
		Slots:    openSlots(today, 7),
		Targets:  Targets{RemainingEndurance: 2, Deload: true},
		Baseline: baseBaseline(),
		Factors:  DefaultDeloadFactors(),
		Today:    today,
	})

	require.Len(t, sessions, 2)
	// Long run is hard: 90 * 0.55 = 50. Zone 2 is easy: 45 * 0.75 = 34.
	assert.Equal(t, domain.SessionLongRun, sessions[0].Type)
	assert.Equal(t, 50, sessions[0].DurationMin)
	assert.Contains(t, sessions[0].Notes, "deload")
	assert.Equal(t, domain.SessionZone2, sessions[1].Type)
	assert.Equal(t, 34, sessions[1].DurationMin)
}

func TestLongRunDuration_MilestoneProgression(t *testing.T) {
	today := domain.NewDate(2025, 3, 15)

	tests := []struct {
		name     string
		daysOut  int
		wantMin  int
		wantNote string
	}{
		{"far out builds toward peak", 70, 78, "milestone build"}, // 10 weeks: 1 + 0.05*6 = 1.3
		{"peak factor is capped", 21, 78, "milestone build"},      // 3 weeks: cap at 1.3
		{"taper inside two weeks", 10, 42, "taper"},
		{"race week halves", 6, 30, "race week taper"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &domain.Milestone{Kind: domain.GoalEndurance, Date: domain.AddDays(today, tt.daysOut)}
			got, note := longRunDuration(60, m, today)
			assert.Equal(t, tt.wantMin, got)
			assert.Equal(t, tt.wantNote, note)
		})
	}

	got, note := longRunDuration(60, nil, today)
	assert.Equal(t, 60, got)
	assert.Empty(t, note)
}
