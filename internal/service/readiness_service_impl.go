package service

import (
	"context"
	"fmt"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/repository"
)

type readinessService struct {
	readiness repository.ReadinessRepo
}

func NewReadinessService(readiness repository.ReadinessRepo) app.ReadinessUseCase {
	return &readinessService{readiness: readiness}
}

func (s *readinessService) RecordReadiness(ctx context.Context, score domain.ReadinessScore) error {
	if score.Score < 0 || score.Score > 100 {
		return fmt.Errorf("readiness score must be 0-100, got %d", score.Score)
	}
	if score.Quality == "" {
		score.Quality = domain.ReadinessOK
	}
	return s.readiness.Upsert(ctx, score)
}

type absenceService struct {
	windows repository.StatusWindowRepo
}

func NewAbsenceService(windows repository.StatusWindowRepo) app.AbsenceUseCase {
	return &absenceService{windows: windows}
}

func (s *absenceService) SetAbsence(ctx context.Context, w domain.StatusWindow) error {
	if !domain.ValidStatusKinds[string(w.Kind)] {
		return fmt.Errorf("unknown status kind %q", w.Kind)
	}
	if w.Since != nil && w.Until.Before(*w.Since) {
		return fmt.Errorf("window ends %s before it starts %s",
			domain.FormatDate(w.Until), domain.FormatDate(*w.Since))
	}
	return s.windows.Set(ctx, w)
}

func (s *absenceService) ClearAbsence(ctx context.Context) error {
	return s.windows.Clear(ctx)
}

func (s *absenceService) GetAbsence(ctx context.Context) (*domain.StatusWindow, error) {
	return s.windows.Get(ctx)
}
