package scheduler

import (
	"sort"

	"github.com/pacerapp/pacer/internal/domain"
)

// Weekly hard-session ceiling: default 3, clamped 2-5 by fitness level.
const (
	hardCeilingFloor   = 2
	hardCeilingDefault = 3
	hardCeilingMax     = 5
)

// HardCeiling clamps the configured weekly hard-session ceiling by fitness
// level: beginners stay at 2, intermediates at 3, advanced athletes may raise
// it up to 5.
func HardCeiling(configured int, level domain.FitnessLevel) int {
	if configured == 0 {
		configured = hardCeilingDefault
	}
	ceiling := clamp(configured, hardCeilingFloor, hardCeilingMax)
	switch level {
	case domain.LevelBeginner:
		return hardCeilingFloor
	case domain.LevelAdvanced:
		return ceiling
	default:
		return minInt(ceiling, hardCeilingDefault)
	}
}

// GuardrailResult is the post-processed schedule plus an audit of what the
// pass changed.
type GuardrailResult struct {
	Sessions []domain.PlanSession
	Demoted  []string // dates demoted to zone 2
	Dropped  []string // session titles dropped for budget or adjacency
}

// ApplyGuardrails post-processes the placed schedule in two ordered passes:
// the adjacency rule, then the weekly hard-session budget. completedHard maps
// week start (Monday, YYYY-MM-DD) to hard sessions already completed in that
// week.
func ApplyGuardrails(sessions []domain.PlanSession, completedHard map[string]int, ceiling int) GuardrailResult {
	out := make([]domain.PlanSession, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	result := GuardrailResult{}
	out = result.adjacencyPass(out)
	out = result.budgetPass(out, completedHard, ceiling)
	result.Sessions = out
	return result
}

// adjacencyPass demotes or removes the later of two calendar-adjacent hard
// sessions. A very_hard session forces the following day session-free or
// normal.
func (r *GuardrailResult) adjacencyPass(sessions []domain.PlanSession) []domain.PlanSession {
	var out []domain.PlanSession
	for _, s := range sessions {
		if len(out) > 0 {
			prev := &out[len(out)-1]
			adjacent := domain.DaysBetween(prev.Date, s.Date) == 1
			if adjacent && prev.Hardness.IsHard() && s.Hardness.IsHard() {
				demoted, ok := demoteToZone2(s)
				if !ok {
					// No safe substitute: drop the later session.
					r.Dropped = append(r.Dropped, s.Title())
					continue
				}
				r.Demoted = append(r.Demoted, domain.FormatDate(s.Date))
				s = demoted
			}
		}
		out = append(out, s)
	}
	return out
}

// budgetPass enforces the weekly hard ceiling, counting hard sessions already
// completed this week. Over budget, the lowest-priority planned hard session
// is dropped first: intervals, then tempo, then long run, then strength.
func (r *GuardrailResult) budgetPass(sessions []domain.PlanSession, completedHard map[string]int, ceiling int) []domain.PlanSession {
	hardByWeek := make(map[string]int)
	for wk, n := range completedHard {
		hardByWeek[wk] = n
	}
	for _, s := range sessions {
		if s.Hardness.IsHard() {
			hardByWeek[weekKey(s)]++
		}
	}

	removed := make(map[int]bool)
	for wk, count := range hardByWeek {
		for count > ceiling {
			idx := lowestPriorityHard(sessions, removed, wk)
			if idx < 0 {
				break // only completed sessions remain over budget
			}
			removed[idx] = true
			r.Dropped = append(r.Dropped, sessions[idx].Title())
			count--
		}
	}

	var out []domain.PlanSession
	for i, s := range sessions {
		if !removed[i] {
			out = append(out, s)
		}
	}
	return out
}

// hardDropOrder ranks hard session types by drop priority, lowest kept last.
var hardDropOrder = map[domain.SessionType]int{
	domain.SessionIntervals: 0,
	domain.SessionTempo:     1,
	domain.SessionLongRun:   2,
	domain.SessionStrength:  3,
}

func lowestPriorityHard(sessions []domain.PlanSession, removed map[int]bool, week string) int {
	best := -1
	for i, s := range sessions {
		if removed[i] || !s.Hardness.IsHard() || weekKey(s) != week {
			continue
		}
		if best == -1 || hardDropOrder[s.Type] < hardDropOrder[sessions[best].Type] {
			best = i
		}
	}
	return best
}

func weekKey(s domain.PlanSession) string {
	return domain.FormatDate(domain.StartOfWeek(s.Date))
}

// demoteToZone2 replaces an endurance session with an easy Zone 2 session of
// the same duration. Non-endurance sessions have no safe substitute.
func demoteToZone2(s domain.PlanSession) (domain.PlanSession, bool) {
	if s.Modality != domain.ModalityEndurance {
		return s, false
	}
	s.Type = domain.SessionZone2
	s.Hardness = domain.StressNormal
	s.Notes = append(s.Notes, "demoted for recovery spacing")
	return s, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
