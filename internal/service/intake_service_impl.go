package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/repository"
)

type intakeService struct {
	intake repository.IntakeRepo
	uow    db.UnitOfWork
}

func NewIntakeService(intake repository.IntakeRepo, uow db.UnitOfWork) app.IntakeUseCase {
	return &intakeService{intake: intake, uow: uow}
}

// SaveIntake validates and persists a whole new intake. Constraint violations
// are fatal: nothing is written and no planning happens until corrected input
// arrives.
func (s *intakeService) SaveIntake(ctx context.Context, in *domain.Intake) error {
	if err := in.Constraints.Validate(); err != nil {
		return err
	}
	for i := range in.Goals {
		if in.Goals[i].ID == "" {
			in.Goals[i].ID = uuid.New().String()
		}
	}
	for i := range in.Milestones {
		if in.Milestones[i].ID == "" {
			in.Milestones[i].ID = uuid.New().String()
		}
	}
	in.UpdatedAt = time.Now().UTC()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteIntakeRepo(tx).Replace(ctx, in)
	})
	if err != nil {
		return fmt.Errorf("saving intake: %w", err)
	}
	return nil
}

func (s *intakeService) GetIntake(ctx context.Context) (*domain.Intake, error) {
	return s.intake.Get(ctx)
}
