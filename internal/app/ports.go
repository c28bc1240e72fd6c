package app

import (
	"context"

	"github.com/pacerapp/pacer/internal/domain"
)

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type ReconcileUseCase interface {
	Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResponse, error)
}

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type ScheduleUseCase interface {
	GetSchedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}

type IntakeUseCase interface {
	SaveIntake(ctx context.Context, in *domain.Intake) error
	GetIntake(ctx context.Context) (*domain.Intake, error)
}

type LogWorkoutUseCase interface {
	LogWorkout(ctx context.Context, w *domain.Workout) error
	ListWorkouts(ctx context.Context, limit int) ([]domain.Workout, error)
}

type ReadinessUseCase interface {
	RecordReadiness(ctx context.Context, s domain.ReadinessScore) error
}

type AbsenceUseCase interface {
	SetAbsence(ctx context.Context, w domain.StatusWindow) error
	ClearAbsence(ctx context.Context) error
	GetAbsence(ctx context.Context) (*domain.StatusWindow, error)
}
