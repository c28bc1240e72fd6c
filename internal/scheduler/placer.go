package scheduler

import (
	"math"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

// Long-run progression bounds toward a milestone date.
const (
	longRunPeakFactor   = 1.3
	longRunWeeklyGrowth = 0.05
	progressionRampWeeks = 16
)

// PlacementInput feeds the session placer.
type PlacementInput struct {
	Slots     []time.Time
	Targets   Targets
	Baseline  domain.Baseline
	Milestone *domain.Milestone // next endurance event, nil when none
	Factors   DeloadFactors
	Today     time.Time
}

// PlaceSessions fills open slots with concrete sessions. The endurance cycle
// rotates Long Run -> Zone 2 -> Quality -> Zone 2; quality alternates
// intervals and tempo week over week. Strength variants are drawn from the
// configured split in round-robin. In hybrid mode endurance takes
// even-indexed slots and strength odd-indexed ones; at most one session per
// calendar day. Quota exceeding the open slots silently carries to the next
// planning run.
func PlaceSessions(in PlacementInput) []domain.PlanSession {
	var sessions []domain.PlanSession

	remainingE := in.Targets.RemainingEndurance
	remainingS := in.Targets.RemainingStrength
	hybrid := in.Targets.Hybrid()

	variants := in.Baseline.StrengthSplit.Variants()
	enduranceIdx, strengthIdx := 0, 0

	for i, day := range in.Slots {
		if remainingE == 0 && remainingS == 0 {
			break
		}

		placeEndurance := remainingE > 0
		if hybrid {
			// Alternate by slot parity; fall back to the other modality once
			// one quota is exhausted.
			if i%2 == 0 {
				placeEndurance = remainingE > 0
			} else {
				placeEndurance = remainingS == 0
			}
		}

		var s domain.PlanSession
		if placeEndurance && remainingE > 0 {
			s = in.enduranceSession(day, enduranceIdx)
			enduranceIdx++
			remainingE--
		} else if remainingS > 0 {
			s = in.strengthSession(day, variants[strengthIdx%len(variants)])
			strengthIdx++
			remainingS--
		} else {
			continue
		}

		if in.Targets.Deload {
			s.DurationMin = ApplyDeload(s.DurationMin, s.Hardness, in.Factors, true)
			s.Notes = append(s.Notes, "deload")
		}
		sessions = append(sessions, s)
	}

	return sessions
}

// enduranceCycle is the fixed rotation applied across open slots.
var enduranceCycle = []domain.SessionType{
	domain.SessionLongRun,
	domain.SessionZone2,
	domain.SessionTempo, // placeholder; replaced by weekly quality pick
	domain.SessionZone2,
}

func (in PlacementInput) enduranceSession(day time.Time, cycleIdx int) domain.PlanSession {
	sessionType := enduranceCycle[cycleIdx%len(enduranceCycle)]
	if sessionType == domain.SessionTempo {
		sessionType = in.qualityPick()
	}

	s := domain.PlanSession{
		Date:     day,
		Modality: domain.ModalityEndurance,
		Type:     sessionType,
		Status:   domain.StatusPlanned,
	}
	switch sessionType {
	case domain.SessionLongRun:
		dur, note := longRunDuration(in.Baseline.LongestRunMin, in.Milestone, in.Today)
		s.DurationMin = dur
		s.Hardness = domain.StressHard
		if note != "" {
			s.Notes = append(s.Notes, note)
		}
	case domain.SessionTempo:
		s.DurationMin = in.Baseline.Z2DurationMin
		s.Hardness = domain.StressHard
	case domain.SessionIntervals:
		s.DurationMin = in.Baseline.Z2DurationMin
		s.Hardness = domain.StressVeryHard
	default: // zone 2
		s.DurationMin = in.Baseline.Z2DurationMin
		s.Hardness = domain.StressNormal
	}
	return s
}

// qualityPick alternates intervals and tempo week over week by ISO week
// parity, so consecutive planning runs inside the same week agree.
func (in PlacementInput) qualityPick() domain.SessionType {
	_, week := in.Today.ISOWeek()
	if week%2 == 0 {
		return domain.SessionIntervals
	}
	return domain.SessionTempo
}

func (in PlacementInput) strengthSession(day time.Time, variant string) domain.PlanSession {
	return domain.PlanSession{
		Date:        day,
		Modality:    domain.ModalityStrength,
		Type:        domain.SessionStrength,
		Variant:     variant,
		DurationMin: in.Baseline.StrengthSessionMin,
		Hardness:    domain.StressNormal,
		Status:      domain.StatusPlanned,
	}
}

// longRunDuration ramps the long run toward an upcoming milestone and tapers
// inside the final two weeks. Without a milestone the baseline duration is
// used as-is.
func longRunDuration(baseMin int, m *domain.Milestone, today time.Time) (int, string) {
	if m == nil || baseMin == 0 {
		return baseMin, ""
	}
	daysTo := domain.DaysBetween(today, m.Date)
	switch {
	case daysTo < 0:
		return baseMin, ""
	case daysTo <= 7:
		return int(math.Round(float64(baseMin) * 0.5)), "race week taper"
	case daysTo <= 14:
		return int(math.Round(float64(baseMin) * 0.7)), "taper"
	}

	weeksTo := daysTo / 7
	growth := longRunWeeklyGrowth * float64(maxInt(0, progressionRampWeeks-weeksTo))
	factor := math.Min(1+growth, longRunPeakFactor)
	if factor <= 1 {
		return baseMin, ""
	}
	return int(math.Round(float64(baseMin) * factor)), "milestone build"
}
