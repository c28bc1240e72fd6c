package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type WorkoutRepo interface {
	Create(ctx context.Context, w *domain.Workout) error
	// ListRange returns workouts with from <= date <= to, ordered by date.
	ListRange(ctx context.Context, from, to time.Time) ([]domain.Workout, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Workout, error)
}

type IntakeRepo interface {
	// Get returns the stored intake, or ErrNotFound when no intake exists.
	Get(ctx context.Context) (*domain.Intake, error)
	// Replace swaps the entire intake in one pass (whole-replace semantics,
	// never partial mutation). Callers run it inside a unit of work.
	Replace(ctx context.Context, in *domain.Intake) error
}

type ScheduleRepo interface {
	ListRange(ctx context.Context, from, to time.Time) ([]domain.PlanSession, error)
	ListByStatus(ctx context.Context, status domain.SessionStatus) ([]domain.PlanSession, error)
	// TerminalDates returns the dates in [from, to] holding a completed,
	// missed or skipped session. Those dates are permanently excluded from
	// re-planning.
	TerminalDates(ctx context.Context, from, to time.Time) (map[string]bool, error)
	// ReplacePlanned removes all still-planned sessions dated in [from, to]
	// and inserts the new ones. Terminal rows are untouched. Callers run it
	// inside a unit of work so the window is never torn.
	ReplacePlanned(ctx context.Context, from, to time.Time, sessions []domain.PlanSession) error
	UpdateStatus(ctx context.Context, id string, status domain.SessionStatus, updatedAt time.Time) error
}

// AuditRepo is the append-only adaptation trail. Entries are never mutated or
// deleted.
type AuditRepo interface {
	Append(ctx context.Context, e *domain.AdaptationLogEntry) error
	List(ctx context.Context, limit int) ([]domain.AdaptationLogEntry, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.AdaptationLogEntry, error)
}

type ReadinessRepo interface {
	Upsert(ctx context.Context, s domain.ReadinessScore) error
	// GetByDate returns the score for a local date, or ErrNotFound.
	GetByDate(ctx context.Context, date time.Time) (*domain.ReadinessScore, error)
}

type StatusWindowRepo interface {
	// Get returns the single status window, or ErrNotFound when none is set.
	Get(ctx context.Context) (*domain.StatusWindow, error)
	Set(ctx context.Context, w domain.StatusWindow) error
	Clear(ctx context.Context) error
}
