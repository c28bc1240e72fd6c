package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConstraints marks a fatal intake error: planning is never
// attempted until the caller supplies corrected input.
var ErrInvalidConstraints = errors.New("invalid constraints")

// Goal is a user-declared training objective. Immutable until replaced by a
// new intake.
type Goal struct {
	ID          string
	Kind        GoalKind
	SubKind     string
	TargetValue string
	Priority    int
}

// Milestone is a dated event, one per endurance goal at most. It drives
// long-run progression toward its date.
type Milestone struct {
	ID            string
	Kind          GoalKind
	Date          time.Time // day granularity
	Priority      int
	TargetTimeSec *int
}

// FixedAppointment blocks a weekday from receiving planned sessions.
type FixedAppointment struct {
	Weekday    time.Weekday
	TimeWindow string // e.g. "18:00-19:30", informational
}

// Constraints are the user's hard scheduling boundaries. DaysAvailable and
// PreferredRestDays must both be non-empty; absence is a hard input error,
// never defaulted.
type Constraints struct {
	DaysAvailable      map[time.Weekday]bool
	PreferredRestDays  map[time.Weekday]bool
	MaxSessionsPerWeek *int
	FixedAppointments  []FixedAppointment
}

// Validate enforces the intake contract on constraints. Overlap between
// available and rest days is rejected here, at input time; the scheduler
// assumes disjoint sets.
func (c Constraints) Validate() error {
	if len(c.DaysAvailable) == 0 {
		return fmt.Errorf("%w: days_available must not be empty", ErrInvalidConstraints)
	}
	if len(c.PreferredRestDays) == 0 {
		return fmt.Errorf("%w: preferred_rest_days must not be empty", ErrInvalidConstraints)
	}
	for wd := range c.DaysAvailable {
		if c.PreferredRestDays[wd] {
			return fmt.Errorf("%w: %s is both available and a rest day", ErrInvalidConstraints, wd)
		}
	}
	if c.MaxSessionsPerWeek != nil && *c.MaxSessionsPerWeek < 1 {
		return fmt.Errorf("%w: max_sessions_per_week must be positive", ErrInvalidConstraints)
	}
	return nil
}

// Baseline is the fallback source for session frequencies and durations when
// workout history is insufficient.
type Baseline struct {
	RunFrequencyPerWeek      int
	StrengthFrequencyPerWeek int
	LongestRunMin            int
	Z2DurationMin            int
	StrengthSessionMin       int
	StrengthSplit            StrengthSplit
	FitnessLevel             FitnessLevel
}

// Intake bundles everything the user declares about goals and limits.
type Intake struct {
	Goals       []Goal
	Milestones  []Milestone
	Constraints Constraints
	Baseline    Baseline
	UpdatedAt   time.Time
}

// HasGoal reports whether any goal of the given kind is declared.
func (in Intake) HasGoal(kind GoalKind) bool {
	for _, g := range in.Goals {
		if g.Kind == kind {
			return true
		}
	}
	return false
}

// NextMilestone returns the earliest milestone on or after the given date,
// or nil when none exists.
func (in Intake) NextMilestone(after time.Time) *Milestone {
	var next *Milestone
	for i := range in.Milestones {
		m := &in.Milestones[i]
		if m.Date.Before(after) {
			continue
		}
		if next == nil || m.Date.Before(next.Date) {
			next = m
		}
	}
	return next
}
