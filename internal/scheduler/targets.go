package scheduler

import (
	"math"

	"github.com/pacerapp/pacer/internal/domain"
)

// DeloadFactors scale session durations while a deload is active. The hard
// factor applies to hard/very_hard sessions, the easy factor to everything
// else. Deload changes duration, never quota counts.
type DeloadFactors struct {
	Hard float64
	Easy float64
}

// DefaultDeloadFactors returns the standard deload scaling.
func DefaultDeloadFactors() DeloadFactors {
	return DeloadFactors{Hard: 0.55, Easy: 0.75}
}

// Goal-derived weekly frequencies used when the baseline carries none.
const (
	defaultEnduranceFreq = 3
	defaultStrengthFreq  = 2
)

// TargetInput feeds the weekly target derivation.
type TargetInput struct {
	Intake domain.Intake
	Risk   domain.RiskTier
	// DeloadFlagged carries a reconciliation-triggered deload (status window
	// skip) into this run.
	DeloadFlagged bool
	// CompletedThisWeek are classified actuals from Monday of the current
	// week through the reference date.
	CompletedThisWeek []domain.ClassifiedWorkout
}

// Targets are the per-modality session quotas remaining for this week.
type Targets struct {
	RemainingEndurance int
	RemainingStrength  int
	Deload             bool
}

// Hybrid reports whether both modalities are active this week.
func (t Targets) Hybrid() bool {
	return t.RemainingEndurance > 0 && t.RemainingStrength > 0
}

// ComputeTargets derives weekly quotas per modality from baseline frequencies
// (or goal-derived defaults), net of sessions already completed this week.
// Deload state is recomputed every run from the current risk tier; it is not
// sticky.
func ComputeTargets(in TargetInput) Targets {
	enduranceTarget := in.Intake.Baseline.RunFrequencyPerWeek
	if enduranceTarget == 0 && in.Intake.HasGoal(domain.GoalEndurance) {
		enduranceTarget = defaultEnduranceFreq
	}
	strengthTarget := in.Intake.Baseline.StrengthFrequencyPerWeek
	if strengthTarget == 0 && in.Intake.HasGoal(domain.GoalStrength) {
		strengthTarget = defaultStrengthFreq
	}

	// Respect the weekly session cap, trimming strength before endurance
	// since endurance goals are date-driven.
	if cap := in.Intake.Constraints.MaxSessionsPerWeek; cap != nil {
		for enduranceTarget+strengthTarget > *cap {
			if strengthTarget > 0 {
				strengthTarget--
			} else {
				enduranceTarget--
			}
		}
	}

	var doneEndurance, doneStrength int
	for _, cw := range in.CompletedThisWeek {
		switch cw.Modality {
		case domain.ModalityEndurance:
			doneEndurance++
		case domain.ModalityStrength:
			doneStrength++
		}
	}

	return Targets{
		RemainingEndurance: maxInt(0, enduranceTarget-doneEndurance),
		RemainingStrength:  maxInt(0, strengthTarget-doneStrength),
		Deload:             in.Risk.IsDeload() || in.DeloadFlagged,
	}
}

// ApplyDeload scales a session duration by the factor matching its hardness.
// No-op when deload is inactive.
func ApplyDeload(durationMin int, hardness domain.StressTier, factors DeloadFactors, active bool) int {
	if !active {
		return durationMin
	}
	f := factors.Easy
	if hardness.IsHard() {
		f = factors.Hard
	}
	return int(math.Round(float64(durationMin) * f))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
