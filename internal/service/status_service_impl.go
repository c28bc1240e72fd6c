package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/repository"
	"github.com/pacerapp/pacer/internal/scheduler"
)

type statusService struct {
	workouts  repository.WorkoutRepo
	schedule  repository.ScheduleRepo
	audit     repository.AuditRepo
	readiness repository.ReadinessRepo
	windows   repository.StatusWindowRepo
	params    Params
}

func NewStatusService(
	workouts repository.WorkoutRepo,
	schedule repository.ScheduleRepo,
	audit repository.AuditRepo,
	readiness repository.ReadinessRepo,
	windows repository.StatusWindowRepo,
	params Params,
) app.StatusUseCase {
	return &statusService{
		workouts:  workouts,
		schedule:  schedule,
		audit:     audit,
		readiness: readiness,
		windows:   windows,
		params:    params,
	}
}

func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error) {
	now := resolveNow(req.Now)
	today := s.params.today(now)

	resp := &app.StatusResponse{
		GeneratedAt: now,
		Today:       domain.FormatDate(today),
	}

	workouts, err := s.workouts.ListRange(ctx, domain.AddDays(today, -loadRatioLookbackDays), today)
	if err != nil {
		return nil, fmt.Errorf("loading workout history: %w", err)
	}

	lr, err := scheduler.ComputeLoadRatio(workouts, today)
	switch {
	case errors.Is(err, scheduler.ErrInsufficientData):
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("only %d days of workout history; load ratio unavailable", lr.DaysOfData))
	case err != nil:
		return nil, fmt.Errorf("computing load ratio: %w", err)
	default:
		ratio := lr
		resp.LoadRatio = &ratio
	}
	resp.Risk = lr.Tier

	weekAgo := domain.AddDays(today, -(scheduler.AcuteWindowDays - 1))
	for _, w := range workouts {
		if !w.Date.Before(weekAgo) && !w.Date.After(today) {
			resp.RecentWorkouts++
		}
	}

	score, err := s.readiness.GetByDate(ctx, today)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading readiness score: %w", err)
	}
	resp.Readiness = score

	window, err := s.windows.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading status window: %w", err)
	}
	resp.Absence = window

	upcoming, err := s.schedule.ListRange(ctx, today, domain.AddDays(today, s.params.windowDays()-1))
	if err != nil {
		return nil, fmt.Errorf("loading upcoming sessions: %w", err)
	}
	var next []domain.PlanSession
	for _, ps := range upcoming {
		if ps.Status == domain.StatusPlanned {
			next = append(next, ps)
		}
	}
	resp.UpcomingCount = len(next)
	if len(next) > 3 {
		next = next[:3]
	}
	resp.NextSessions = app.NewSessionViews(next)

	tail := req.AuditTail
	if tail <= 0 {
		tail = 5
	}
	entries, err := s.audit.List(ctx, tail)
	if err != nil {
		return nil, fmt.Errorf("loading adaptation log: %w", err)
	}
	for _, e := range entries {
		resp.AuditTail = append(resp.AuditTail, app.AuditView{
			Timestamp:   e.Timestamp,
			SessionDate: domain.FormatDate(e.SessionDate),
			From:        e.FromStatus,
			To:          e.ToStatus,
			Rule:        e.Rule,
			Detail:      e.Detail,
		})
	}

	return resp, nil
}

type scheduleService struct {
	schedule repository.ScheduleRepo
	params   Params
}

func NewScheduleService(schedule repository.ScheduleRepo, params Params) app.ScheduleUseCase {
	return &scheduleService{schedule: schedule, params: params}
}

func (s *scheduleService) GetSchedule(ctx context.Context, req app.ScheduleRequest) (*app.ScheduleResponse, error) {
	now := resolveNow(req.Now)
	today := s.params.today(now)

	from := today
	if req.From != nil {
		from = *req.From
	}
	to := domain.AddDays(from, s.params.windowDays()-1)
	if req.To != nil {
		to = *req.To
	}

	sessions, err := s.schedule.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}

	return &app.ScheduleResponse{
		GeneratedAt: now,
		From:        domain.FormatDate(from),
		To:          domain.FormatDate(to),
		Sessions:    app.NewSessionViews(sessions),
	}, nil
}
