package service

import (
	"time"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/scheduler"
)

// Params carries the tunable planning knobs resolved from configuration.
type Params struct {
	// WindowDays is the planning horizon; 0 falls back to the default.
	WindowDays int
	// HardCeiling overrides the weekly hard-session budget; 0 derives it from
	// the fitness level.
	HardCeiling   int
	DeloadFactors scheduler.DeloadFactors
	TypeRules     scheduler.TypeRules
	// Location resolves instants to civil dates.
	Location *time.Location
}

// DefaultParams returns the standard planning parameters in UTC.
func DefaultParams() Params {
	return Params{
		WindowDays:    scheduler.DefaultWindowDays,
		DeloadFactors: scheduler.DefaultDeloadFactors(),
		TypeRules:     scheduler.DefaultTypeRules(),
		Location:      time.UTC,
	}
}

// resolveNow pins the reference instant: the request override wins, otherwise
// the wall clock. Pure planning logic only ever sees the resolved value.
func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return override.UTC()
	}
	return time.Now().UTC()
}

func (p Params) today(now time.Time) time.Time {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	return domain.DateOf(now, loc)
}

func (p Params) windowDays() int {
	if p.WindowDays <= 0 {
		return scheduler.DefaultWindowDays
	}
	return p.WindowDays
}

// classifyAll runs the signal classifier over raw workouts.
func classifyAll(workouts []domain.Workout, rules scheduler.TypeRules) []domain.ClassifiedWorkout {
	classified := make([]domain.ClassifiedWorkout, len(workouts))
	for i, w := range workouts {
		classified[i] = scheduler.Classify(w, rules)
	}
	return classified
}

// completedThisWeek filters classified actuals to Monday of the reference week
// through the reference date.
func completedThisWeek(classified []domain.ClassifiedWorkout, today time.Time) []domain.ClassifiedWorkout {
	weekStart := domain.StartOfWeek(today)
	var out []domain.ClassifiedWorkout
	for _, cw := range classified {
		if cw.Date.Before(weekStart) || cw.Date.After(today) {
			continue
		}
		out = append(out, cw)
	}
	return out
}

// completedHardByWeek counts hard completed actuals per calendar week, keyed
// by the Monday date. Feeds the guardrail budget pass.
func completedHardByWeek(classified []domain.ClassifiedWorkout) map[string]int {
	counts := make(map[string]int)
	for _, cw := range classified {
		if !cw.Stress.IsHard() {
			continue
		}
		counts[domain.FormatDate(domain.StartOfWeek(cw.Date))]++
	}
	return counts
}
