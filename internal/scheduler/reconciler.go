package scheduler

import (
	"sort"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

// Reconciliation rule identifiers recorded on the audit trail.
const (
	RuleMatchedActual    = "matched_actual"
	RuleStatusWindowSkip = "status_window_skip"
	RuleMissedCarryover  = "missed_carryover"
	RuleMissedDropped    = "missed_dropped"
)

// tempoSwapWindowDays is how long a missed tempo session remains worth
// swapping forward (48-72h; resolved at day granularity).
const tempoSwapWindowDays = 3

// Transition is one session status change decided by reconciliation.
type Transition struct {
	Session          domain.PlanSession
	From             domain.SessionStatus
	To               domain.SessionStatus
	Rule             string
	Detail           string
	MatchedWorkoutID string
}

// ReconcileInput is a snapshot of the previously published schedule and the
// actuals logged since.
type ReconcileInput struct {
	Planned []domain.PlanSession
	Actuals []domain.ClassifiedWorkout
	Window  *domain.StatusWindow
	Today   time.Time
}

// ReconcileResult carries the decided transitions plus the signals the next
// planning run consumes.
type ReconcileResult struct {
	Transitions []Transition
	// CarryoverEndurance / CarryoverStrength bump next week's quotas for
	// missed sessions worth re-placing (long runs always, tempo within its
	// swap window, strength via safe equivalent; intervals and easy volume
	// are never chased).
	CarryoverEndurance int
	CarryoverStrength  int
	// DeloadFlag is set when a status window forced skips; the next planning
	// run deloads regardless of the load ratio.
	DeloadFlag bool
}

// Reconcile classifies every previously planned session whose date has passed
// as completed, missed or skipped. Terminal sessions are skipped entirely,
// making the operation idempotent. Each actual workout is consumed by at most
// one planned session.
func Reconcile(in ReconcileInput) ReconcileResult {
	result := ReconcileResult{}
	consumed := make(map[string]bool)

	planned := make([]domain.PlanSession, len(in.Planned))
	copy(planned, in.Planned)
	sort.SliceStable(planned, func(i, j int) bool { return planned[i].Date.Before(planned[j].Date) })

	for _, s := range planned {
		if !s.Date.Before(in.Today) {
			continue
		}
		if s.Status.IsTerminal() {
			continue
		}

		if match := bestMatch(s, in.Actuals, consumed); match != nil {
			consumed[match.ID] = true
			result.Transitions = append(result.Transitions, Transition{
				Session:          s,
				From:             s.Status,
				To:               domain.StatusCompleted,
				Rule:             RuleMatchedActual,
				Detail:           "matched " + match.Type + " on " + domain.FormatDate(match.Date),
				MatchedWorkoutID: match.ID,
			})
			continue
		}

		if in.Window != nil && in.Window.ActiveOn(s.Date) {
			result.DeloadFlag = true
			result.Transitions = append(result.Transitions, Transition{
				Session: s,
				From:    s.Status,
				To:      domain.StatusSkipped,
				Rule:    RuleStatusWindowSkip,
				Detail:  string(in.Window.Kind) + " window active",
			})
			continue
		}

		rule, detail, carry := substitution(s, in.Today)
		if carry {
			switch s.Modality {
			case domain.ModalityEndurance:
				result.CarryoverEndurance++
			case domain.ModalityStrength:
				result.CarryoverStrength++
			}
		}
		result.Transitions = append(result.Transitions, Transition{
			Session: s,
			From:    s.Status,
			To:      domain.StatusMissed,
			Rule:    rule,
			Detail:  detail,
		})
	}

	return result
}

// bestMatch finds the unconsumed actual sharing the session's date and
// modality, tie-broken by nearest duration, then by workout ID for
// determinism.
func bestMatch(s domain.PlanSession, actuals []domain.ClassifiedWorkout, consumed map[string]bool) *domain.ClassifiedWorkout {
	var best *domain.ClassifiedWorkout
	for i := range actuals {
		a := &actuals[i]
		if consumed[a.ID] || !a.Date.Equal(s.Date) || a.Modality != s.Modality {
			continue
		}
		if best == nil || closer(s.DurationMin, a, best) {
			best = a
		}
	}
	if best == nil {
		return nil
	}
	return best
}

func closer(target int, a, b *domain.ClassifiedWorkout) bool {
	da, db := absInt(a.DurationMin-target), absInt(b.DurationMin-target)
	if da != db {
		return da < db
	}
	return a.ID < b.ID
}

// substitution applies the missed-session rules going forward. Terminal
// sessions are never rewritten; these rules only shape the next run's quotas.
func substitution(s domain.PlanSession, today time.Time) (rule, detail string, carry bool) {
	switch s.Type {
	case domain.SessionLongRun:
		return RuleMissedCarryover, "long run swaps to next available slot", true
	case domain.SessionTempo:
		if domain.DaysBetween(s.Date, today) <= tempoSwapWindowDays {
			return RuleMissedCarryover, "tempo swap within 72h window", true
		}
		return RuleMissedDropped, "tempo swap window elapsed", false
	case domain.SessionIntervals:
		return RuleMissedDropped, "intervals dropped first under budget pressure", false
	case domain.SessionStrength:
		return RuleMissedCarryover, "strength safe equivalent swap", true
	default:
		return RuleMissedDropped, "easy volume is not chased", false
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
