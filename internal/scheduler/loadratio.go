package scheduler

import (
	"errors"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

// ErrInsufficientData signals that fewer than MinDistinctDays of workout data
// exist in the lookback window. Callers must treat this as "no ACWR signal",
// not as a failure that halts planning.
var ErrInsufficientData = errors.New("insufficient workout history for load ratio")

const (
	AcuteWindowDays   = 7
	ChronicWindowDays = 28
	// MinDistinctDays is the minimum number of distinct workout days required
	// before the ratio carries any signal.
	MinDistinctDays = 7
)

// ACWR tier boundaries.
const (
	ratioDetrainingBelow = 0.8
	ratioSafeUpTo        = 1.5
	ratioElevatedUpTo    = 2.0
)

// ComputeLoadRatio aggregates per-day duration minutes and derives the
// acute:chronic workload ratio for the reference date. Acute is the trailing
// 7 calendar days, chronic the trailing 28 divided by 4 (a weekly-equivalent
// average). Missing days contribute zero.
func ComputeLoadRatio(workouts []domain.Workout, today time.Time) (domain.LoadRatio, error) {
	lookback := domain.AddDays(today, -(ChronicWindowDays + AcuteWindowDays - 1))
	perDay := make(map[string]int)
	for _, w := range workouts {
		if w.Date.Before(lookback) || w.Date.After(today) {
			continue
		}
		perDay[domain.FormatDate(w.Date)] += w.DurationMin
	}

	lr := domain.LoadRatio{Tier: domain.RiskUnknown, DaysOfData: len(perDay)}

	acuteCutoff := domain.AddDays(today, -(AcuteWindowDays - 1))
	chronicCutoff := domain.AddDays(today, -(ChronicWindowDays - 1))
	for d := chronicCutoff; !d.After(today); d = domain.AddDays(d, 1) {
		min := perDay[domain.FormatDate(d)]
		lr.ChronicWeeklyAvgMin += float64(min)
		if !d.Before(acuteCutoff) {
			lr.AcuteMin += min
		}
	}
	lr.ChronicWeeklyAvgMin /= 4

	if lr.DaysOfData < MinDistinctDays {
		return lr, ErrInsufficientData
	}
	if lr.ChronicWeeklyAvgMin == 0 {
		// Ratio undefined; no signal either way.
		return lr, nil
	}

	lr.Ratio = float64(lr.AcuteMin) / lr.ChronicWeeklyAvgMin
	lr.Tier = tierFor(lr.Ratio)
	return lr, nil
}

func tierFor(ratio float64) domain.RiskTier {
	switch {
	case ratio < ratioDetrainingBelow:
		return domain.RiskDetraining
	case ratio <= ratioSafeUpTo:
		return domain.RiskSafe
	case ratio <= ratioElevatedUpTo:
		return domain.RiskElevated
	default:
		return domain.RiskHigh
	}
}
