package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/pacerapp/pacer/internal/domain"
)

// Workout options
type WorkoutOption func(*domain.Workout)

func WithEffort(score float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.EffortScore = &score
	}
}

func WithZones(minutes [domain.ZoneCount]int) WorkoutOption {
	return func(w *domain.Workout) {
		w.ZoneMinutes = minutes
		w.HasZones = true
	}
}

func WithWorkoutNote(note string) WorkoutOption {
	return func(w *domain.Workout) {
		w.Note = note
	}
}

func NewTestWorkout(date time.Time, typ string, durationMin int, opts ...WorkoutOption) *domain.Workout {
	w := &domain.Workout{
		ID:          uuid.New().String(),
		Date:        date,
		Type:        typ,
		DurationMin: durationMin,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PlanSession options
type SessionOption func(*domain.PlanSession)

func WithStatus(s domain.SessionStatus) SessionOption {
	return func(ps *domain.PlanSession) {
		ps.Status = s
	}
}

func WithHardness(h domain.StressTier) SessionOption {
	return func(ps *domain.PlanSession) {
		ps.Hardness = h
	}
}

func WithDuration(min int) SessionOption {
	return func(ps *domain.PlanSession) {
		ps.DurationMin = min
	}
}

func WithVariant(v string) SessionOption {
	return func(ps *domain.PlanSession) {
		ps.Variant = v
	}
}

func WithNotes(notes ...string) SessionOption {
	return func(ps *domain.PlanSession) {
		ps.Notes = notes
	}
}

func NewTestSession(date time.Time, typ domain.SessionType, opts ...SessionOption) *domain.PlanSession {
	now := time.Now().UTC()
	modality := domain.ModalityEndurance
	if typ == domain.SessionStrength {
		modality = domain.ModalityStrength
	}
	ps := &domain.PlanSession{
		ID:          uuid.New().String(),
		Date:        date,
		Modality:    modality,
		Type:        typ,
		DurationMin: 45,
		Hardness:    domain.StressNormal,
		Status:      domain.StatusPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// Intake options
type IntakeOption func(*domain.Intake)

func WithGoal(kind domain.GoalKind) IntakeOption {
	return func(in *domain.Intake) {
		in.Goals = append(in.Goals, domain.Goal{
			ID:   uuid.New().String(),
			Kind: kind,
		})
	}
}

func WithMilestone(kind domain.GoalKind, date time.Time) IntakeOption {
	return func(in *domain.Intake) {
		in.Milestones = append(in.Milestones, domain.Milestone{
			ID:   uuid.New().String(),
			Kind: kind,
			Date: date,
		})
	}
}

func WithMaxSessionsPerWeek(n int) IntakeOption {
	return func(in *domain.Intake) {
		in.Constraints.MaxSessionsPerWeek = &n
	}
}

func WithAppointment(wd time.Weekday, window string) IntakeOption {
	return func(in *domain.Intake) {
		in.Constraints.FixedAppointments = append(in.Constraints.FixedAppointments,
			domain.FixedAppointment{Weekday: wd, TimeWindow: window})
	}
}

func WithBaseline(b domain.Baseline) IntakeOption {
	return func(in *domain.Intake) {
		in.Baseline = b
	}
}

// NewTestIntake returns a valid intake: weekdays plus Saturday available,
// Sunday rest, a hybrid baseline.
func NewTestIntake(opts ...IntakeOption) *domain.Intake {
	in := &domain.Intake{
		Constraints: domain.Constraints{
			DaysAvailable: map[time.Weekday]bool{
				time.Monday:    true,
				time.Tuesday:   true,
				time.Wednesday: true,
				time.Thursday:  true,
				time.Friday:    true,
				time.Saturday:  true,
			},
			PreferredRestDays: map[time.Weekday]bool{
				time.Sunday: true,
			},
		},
		Baseline: domain.Baseline{
			RunFrequencyPerWeek:      3,
			StrengthFrequencyPerWeek: 2,
			LongestRunMin:            60,
			Z2DurationMin:            45,
			StrengthSessionMin:       50,
			StrengthSplit:            domain.SplitFullBody,
			FitnessLevel:             domain.LevelIntermediate,
		},
		UpdatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Date is shorthand for a day-granularity UTC date.
func Date(year int, month time.Month, day int) time.Time {
	return domain.NewDate(year, month, day)
}
