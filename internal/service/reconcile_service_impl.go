package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/repository"
	"github.com/pacerapp/pacer/internal/scheduler"
)

// reconcileLookbackDays bounds how far back unreconciled sessions are chased.
const reconcileLookbackDays = 28

type reconcileService struct {
	workouts repository.WorkoutRepo
	schedule repository.ScheduleRepo
	windows  repository.StatusWindowRepo
	uow      db.UnitOfWork
	planner  app.PlanUseCase
	params   Params
	observer UseCaseObserver
}

func NewReconcileService(
	workouts repository.WorkoutRepo,
	schedule repository.ScheduleRepo,
	windows repository.StatusWindowRepo,
	uow db.UnitOfWork,
	planner app.PlanUseCase,
	params Params,
	observers ...UseCaseObserver,
) app.ReconcileUseCase {
	return &reconcileService{
		workouts: workouts,
		schedule: schedule,
		windows:  windows,
		uow:      uow,
		planner:  planner,
		params:   params,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reconcileService) Reconcile(ctx context.Context, req app.ReconcileRequest) (*app.ReconcileResponse, error) {
	started := time.Now()
	resp, err := s.reconcile(ctx, req)
	event := UseCaseEvent{
		Name:      "reconcile",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if resp != nil {
		event.Fields = map[string]any{
			"transitions":    len(resp.Transitions),
			"deload_flagged": resp.DeloadFlagged,
		}
	}
	s.observer.ObserveUseCase(ctx, event)
	return resp, err
}

func (s *reconcileService) reconcile(ctx context.Context, req app.ReconcileRequest) (*app.ReconcileResponse, error) {
	now := resolveNow(req.Now)
	today := s.params.today(now)
	lookback := domain.AddDays(today, -reconcileLookbackDays)

	planned, err := s.schedule.ListRange(ctx, lookback, domain.AddDays(today, -1))
	if err != nil {
		return nil, fmt.Errorf("loading published schedule: %w", err)
	}

	workouts, err := s.workouts.ListRange(ctx, lookback, today)
	if err != nil {
		return nil, fmt.Errorf("loading actual workouts: %w", err)
	}

	window, err := s.windows.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading status window: %w", err)
	}

	result := scheduler.Reconcile(scheduler.ReconcileInput{
		Planned: planned,
		Actuals: classifyAll(workouts, s.params.TypeRules),
		Window:  window,
		Today:   today,
	})

	// Status updates and their audit entries commit together; a torn trail
	// would break idempotency guarantees.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedule := repository.NewSQLiteScheduleRepo(tx)
		txAudit := repository.NewSQLiteAuditRepo(tx)

		for _, tr := range result.Transitions {
			if err := txSchedule.UpdateStatus(ctx, tr.Session.ID, tr.To, now); err != nil {
				return err
			}
			entry := &domain.AdaptationLogEntry{
				ID:          uuid.New().String(),
				Timestamp:   now,
				SessionID:   tr.Session.ID,
				SessionDate: tr.Session.Date,
				FromStatus:  tr.From,
				ToStatus:    tr.To,
				Rule:        tr.Rule,
				Detail:      tr.Detail,
			}
			if err := txAudit.Append(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("committing reconciliation: %w", err)
	}

	resp := &app.ReconcileResponse{
		GeneratedAt:        now,
		Today:              domain.FormatDate(today),
		Transitions:        transitionViews(result.Transitions),
		CarryoverEndurance: result.CarryoverEndurance,
		CarryoverStrength:  result.CarryoverStrength,
		DeloadFlagged:      result.DeloadFlag,
	}

	if req.Replan {
		planReq := app.PlanRequest{
			Now:                &now,
			CarryoverEndurance: result.CarryoverEndurance,
			CarryoverStrength:  result.CarryoverStrength,
			DeloadFlagged:      result.DeloadFlag,
		}
		plan, err := s.planner.Plan(ctx, planReq)
		if err != nil {
			return nil, fmt.Errorf("re-planning after reconciliation: %w", err)
		}
		resp.Plan = plan
	}

	return resp, nil
}

func transitionViews(transitions []scheduler.Transition) []app.TransitionView {
	views := make([]app.TransitionView, len(transitions))
	for i, tr := range transitions {
		views[i] = app.TransitionView{
			SessionID: tr.Session.ID,
			Date:      domain.FormatDate(tr.Session.Date),
			Title:     tr.Session.Title(),
			From:      tr.From,
			To:        tr.To,
			Rule:      tr.Rule,
			Detail:    tr.Detail,
		}
	}
	return views
}
