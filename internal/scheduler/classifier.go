package scheduler

import (
	"strings"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

// TypeRules configures the name-based parts of classification: the fixed
// type-to-modality lookup and the fallback list of high-intensity type
// patterns used when a workout carries no physiological data.
type TypeRules struct {
	Modalities         map[string]domain.Modality
	HighIntensityTypes []string
}

// DefaultTypeRules returns the built-in type lookup tables.
func DefaultTypeRules() TypeRules {
	return TypeRules{
		Modalities: map[string]domain.Modality{
			"run": domain.ModalityEndurance, "running": domain.ModalityEndurance,
			"trail_run": domain.ModalityEndurance, "long_run": domain.ModalityEndurance,
			"ride": domain.ModalityEndurance, "cycling": domain.ModalityEndurance,
			"bike": domain.ModalityEndurance, "swim": domain.ModalityEndurance,
			"row": domain.ModalityEndurance, "zone2": domain.ModalityEndurance,
			"tempo": domain.ModalityEndurance, "intervals": domain.ModalityEndurance,
			"interval": domain.ModalityEndurance, "threshold": domain.ModalityEndurance,
			"vo2max": domain.ModalityEndurance, "hike": domain.ModalityEndurance,
			"strength": domain.ModalityStrength, "weights": domain.ModalityStrength,
			"gym": domain.ModalityStrength, "lifting": domain.ModalityStrength,
			"crossfit": domain.ModalityStrength,
		},
		HighIntensityTypes: []string{"hiit", "spinning", "soccer", "football", "basketball", "squash"},
	}
}

// hardTypeNames are endurance session types that are hard by definition
// regardless of recorded effort.
var hardTypeNames = map[string]bool{
	"tempo": true, "interval": true, "intervals": true,
	"zone4": true, "zone5": true, "threshold": true, "vo2max": true,
}

// Workout duration boundaries for the zone-minute heuristics.
const (
	longSessionMin     = 80
	moderateSessionMin = 30
)

// ClassifyRecent classifies every workout dated within the trailing 7 days of
// the reference date (inclusive). Pure and re-derivable: no cached
// classification is authoritative.
func ClassifyRecent(workouts []domain.Workout, today time.Time, rules TypeRules) []domain.ClassifiedWorkout {
	cutoff := domain.AddDays(today, -6)
	var out []domain.ClassifiedWorkout
	for _, w := range workouts {
		if w.Date.Before(cutoff) || w.Date.After(today) {
			continue
		}
		out = append(out, Classify(w, rules))
	}
	return out
}

// Classify derives the stress tier and modality for a single workout.
func Classify(w domain.Workout, rules TypeRules) domain.ClassifiedWorkout {
	return domain.ClassifiedWorkout{
		Workout:  w,
		Stress:   stressTier(w, rules),
		Modality: ModalityOf(w.Type, rules),
	}
}

// stressTier walks the classification ladder in priority order; the first
// matching rule wins.
func stressTier(w domain.Workout, rules TypeRules) domain.StressTier {
	hard := hardSignal(w)

	ladder := []struct {
		match bool
		tier  domain.StressTier
	}{
		{veryHardSignal(w, hard), domain.StressVeryHard},
		{hard, domain.StressHard},
		{!w.HasPhysioData() && typeNameFallback(w.Type, rules), domain.StressHard},
	}
	for _, rule := range ladder {
		if rule.match {
			return rule.tier
		}
	}
	return domain.StressNormal
}

// veryHardSignal implements rule 1: extreme effort, sustained top-zone work,
// or a long session that already qualifies as hard.
func veryHardSignal(w domain.Workout, hardByRule2 bool) bool {
	if w.EffortScore != nil && *w.EffortScore >= 8 {
		return true
	}
	if w.TopTwoZoneMinutes() >= 20 {
		return true
	}
	return w.DurationMin >= longSessionMin && hardByRule2
}

// hardSignal implements rule 2: elevated effort, an intrinsically hard session
// type, or enough top-zone minutes relative to duration.
func hardSignal(w domain.Workout) bool {
	if w.EffortScore != nil && *w.EffortScore >= 7 {
		return true
	}
	if hardTypeNames[normalizeType(w.Type)] {
		return true
	}
	// Top-zone minute threshold graduates with duration: 8 min for short
	// sessions, 5 min from 30 min up, 15% of duration for long sessions.
	top2 := w.TopTwoZoneMinutes()
	switch {
	case w.DurationMin >= longSessionMin:
		return float64(top2) >= 0.15*float64(w.DurationMin)
	case w.DurationMin >= moderateSessionMin:
		return top2 >= 5
	default:
		return top2 >= 8
	}
}

// typeNameFallback is rule 3: with no physiological data at all, a fixed
// pattern match on the type name decides hardness.
func typeNameFallback(typeName string, rules TypeRules) bool {
	name := normalizeType(typeName)
	if strings.Contains(name, "tempo") || strings.Contains(name, "strength") {
		return true
	}
	for _, p := range rules.HighIntensityTypes {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// ModalityOf maps a workout type name to its broad modality. Unmatched types
// are "other": they count toward hardness budgets but not toward
// endurance/strength quotas.
func ModalityOf(typeName string, rules TypeRules) domain.Modality {
	if m, ok := rules.Modalities[normalizeType(typeName)]; ok {
		return m
	}
	return domain.ModalityOther
}

func normalizeType(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, " ", "_")))
}
