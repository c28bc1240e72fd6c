package scheduler

import (
	"fmt"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

// Readiness gate thresholds. The composite score has no established
// predictive value beyond tomorrow, so only the imminent session is touched.
const (
	readinessNoChangeAbove  = 65
	readinessDowngradeBelow = 50
)

// ApplyReadinessGate downgrades the intensity of the single earliest planned
// session dated today or tomorrow, based on today's composite readiness
// score. Strength sessions are never downgraded. A nil score or insufficient
// data quality makes the gate a no-op. Returns the adjusted schedule and the
// date of the downgraded session, if any.
func ApplyReadinessGate(sessions []domain.PlanSession, score *domain.ReadinessScore, today time.Time) ([]domain.PlanSession, *time.Time) {
	if score == nil || score.Quality == domain.ReadinessInsufficient {
		return sessions, nil
	}
	if score.Score > readinessNoChangeAbove {
		return sessions, nil
	}

	tomorrow := domain.AddDays(today, 1)
	idx := -1
	for i, s := range sessions {
		if s.Status != domain.StatusPlanned {
			continue
		}
		if !s.Date.Equal(today) && !s.Date.Equal(tomorrow) {
			continue
		}
		if idx == -1 || s.Date.Before(sessions[idx].Date) {
			idx = i
		}
	}
	if idx == -1 {
		return sessions, nil
	}

	s := sessions[idx]
	if !gateApplies(s.Type, score.Score) {
		return sessions, nil
	}

	out := make([]domain.PlanSession, len(sessions))
	copy(out, sessions)
	s.Type = domain.SessionZone2
	s.Hardness = domain.StressNormal
	s.Notes = append(s.Notes, fmt.Sprintf("readiness downgrade (score %d)", score.Score))
	out[idx] = s
	date := s.Date
	return out, &date
}

func gateApplies(t domain.SessionType, score int) bool {
	switch t {
	case domain.SessionTempo, domain.SessionIntervals:
		return true
	case domain.SessionLongRun:
		return score < readinessDowngradeBelow
	default:
		return false
	}
}
