package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/repository"
)

type workoutService struct {
	workouts repository.WorkoutRepo
}

func NewWorkoutService(workouts repository.WorkoutRepo) app.LogWorkoutUseCase {
	return &workoutService{workouts: workouts}
}

func (s *workoutService) LogWorkout(ctx context.Context, w *domain.Workout) error {
	if w.Type == "" {
		return fmt.Errorf("workout type must not be empty")
	}
	if w.DurationMin <= 0 {
		return fmt.Errorf("workout duration must be positive, got %d", w.DurationMin)
	}
	if w.EffortScore != nil && (*w.EffortScore < 0 || *w.EffortScore > 10) {
		return fmt.Errorf("effort score must be 0-10, got %g", *w.EffortScore)
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	return s.workouts.Create(ctx, w)
}

func (s *workoutService) ListWorkouts(ctx context.Context, limit int) ([]domain.Workout, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.workouts.ListRecent(ctx, limit)
}
