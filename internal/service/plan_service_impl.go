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

// loadRatioLookbackDays covers the chronic window plus the acute week.
const loadRatioLookbackDays = scheduler.ChronicWindowDays + scheduler.AcuteWindowDays

type planService struct {
	workouts  repository.WorkoutRepo
	intake    repository.IntakeRepo
	schedule  repository.ScheduleRepo
	audit     repository.AuditRepo
	readiness repository.ReadinessRepo
	windows   repository.StatusWindowRepo
	uow       db.UnitOfWork
	params    Params
	observer  UseCaseObserver
}

func NewPlanService(
	workouts repository.WorkoutRepo,
	intake repository.IntakeRepo,
	schedule repository.ScheduleRepo,
	audit repository.AuditRepo,
	readiness repository.ReadinessRepo,
	windows repository.StatusWindowRepo,
	uow db.UnitOfWork,
	params Params,
	observers ...UseCaseObserver,
) app.PlanUseCase {
	return &planService{
		workouts:  workouts,
		intake:    intake,
		schedule:  schedule,
		audit:     audit,
		readiness: readiness,
		windows:   windows,
		uow:       uow,
		params:    params,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	started := time.Now()
	resp, err := s.plan(ctx, req)
	event := UseCaseEvent{
		Name:      "plan",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if resp != nil {
		event.Fields = map[string]any{
			"sessions": len(resp.Sessions),
			"risk":     string(resp.Risk),
			"deload":   resp.Deload,
		}
	}
	s.observer.ObserveUseCase(ctx, event)
	return resp, err
}

func (s *planService) plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	now := resolveNow(req.Now)
	today := s.params.today(now)

	windowDays := req.WindowDays
	if windowDays <= 0 {
		windowDays = s.params.windowDays()
	}
	windowEnd := domain.AddDays(today, windowDays-1)

	intake, err := s.intake.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{Code: app.PlanErrNoIntake, Message: "no intake on file; run pacer intake first"}
		}
		return nil, fmt.Errorf("loading intake: %w", err)
	}
	if err := intake.Constraints.Validate(); err != nil {
		return nil, &app.PlanError{Code: app.PlanErrInvalidConstraints, Message: err.Error()}
	}

	resp := &app.PlanResponse{
		GeneratedAt: now,
		Today:       domain.FormatDate(today),
		WindowStart: domain.FormatDate(today),
		WindowEnd:   domain.FormatDate(windowEnd),
	}

	workouts, err := s.workouts.ListRange(ctx, domain.AddDays(today, -loadRatioLookbackDays), today)
	if err != nil {
		return nil, fmt.Errorf("loading workout history: %w", err)
	}

	lr, err := scheduler.ComputeLoadRatio(workouts, today)
	switch {
	case errors.Is(err, scheduler.ErrInsufficientData):
		resp.Flags = append(resp.Flags, app.PlanFlag{
			Code:    app.FlagInsufficientData,
			Message: fmt.Sprintf("only %d days of history; planning from baseline without deload", lr.DaysOfData),
		})
	case err != nil:
		return nil, fmt.Errorf("computing load ratio: %w", err)
	default:
		ratio := lr
		resp.LoadRatio = &ratio
	}
	resp.Risk = lr.Tier

	classified := classifyAll(workouts, s.params.TypeRules)

	deloadFlagged := req.DeloadFlagged
	if !deloadFlagged {
		deloadFlagged, err = s.recentWindowSkips(ctx, today)
		if err != nil {
			return nil, err
		}
	}

	targets := scheduler.ComputeTargets(scheduler.TargetInput{
		Intake:            *intake,
		Risk:              lr.Tier,
		DeloadFlagged:     deloadFlagged,
		CompletedThisWeek: completedThisWeek(classified, today),
	})
	targets.RemainingEndurance += req.CarryoverEndurance
	targets.RemainingStrength += req.CarryoverStrength
	resp.Deload = targets.Deload
	if targets.Deload {
		resp.Flags = append(resp.Flags, app.PlanFlag{
			Code:    app.FlagDeloadActive,
			Message: "deload active; session durations reduced",
		})
	}

	terminal, err := s.schedule.TerminalDates(ctx, today, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("loading terminal dates: %w", err)
	}

	slots := scheduler.ResolveSlots(intake.Constraints, terminal, today, windowDays)

	window, err := s.currentWindow(ctx)
	if err != nil {
		return nil, err
	}
	if window != nil {
		slots = filterWindowDays(slots, window)
		if window.ActiveOn(today) || window.ActiveOn(windowEnd) {
			resp.Flags = append(resp.Flags, app.PlanFlag{
				Code:    app.FlagAbsenceActive,
				Message: string(window.Kind) + " window blocks part of the horizon",
			})
		}
	}

	wantSessions := targets.RemainingEndurance + targets.RemainingStrength
	if len(slots) == 0 && wantSessions > 0 {
		resp.Flags = append(resp.Flags, app.PlanFlag{
			Code:    app.FlagNoOpenSlots,
			Message: "no open slots in the planning window",
		})
	}

	placed := scheduler.PlaceSessions(scheduler.PlacementInput{
		Slots:     slots,
		Targets:   targets,
		Baseline:  intake.Baseline,
		Milestone: intake.NextMilestone(today),
		Factors:   s.params.DeloadFactors,
		Today:     today,
	})
	if placedShort(placed, wantSessions) && len(slots) > 0 {
		resp.Flags = append(resp.Flags, app.PlanFlag{
			Code:    app.FlagQuotaCarryover,
			Message: fmt.Sprintf("%d session(s) did not fit; quota carries to the next run", wantSessions-len(placed)),
		})
	}

	ceiling := scheduler.HardCeiling(s.params.HardCeiling, intake.Baseline.FitnessLevel)
	guarded := scheduler.ApplyGuardrails(placed, completedHardByWeek(classified), ceiling)
	resp.Demoted = guarded.Demoted
	resp.Dropped = guarded.Dropped

	score, err := s.todayReadiness(ctx, today)
	if err != nil {
		return nil, err
	}
	final, _ := scheduler.ApplyReadinessGate(guarded.Sessions, score, today)

	for i := range final {
		final[i].ID = uuid.New().String()
		final[i].CreatedAt = now
		final[i].UpdatedAt = now
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScheduleRepo(tx).ReplacePlanned(ctx, today, windowEnd, final)
	})
	if err != nil {
		return nil, fmt.Errorf("publishing schedule: %w", err)
	}

	resp.Sessions = app.NewSessionViews(final)
	return resp, nil
}

// recentWindowSkips reports whether a status window forced skips during the
// trailing week, which keeps the deload sticky across standalone plan runs.
func (s *planService) recentWindowSkips(ctx context.Context, today time.Time) (bool, error) {
	entries, err := s.audit.List(ctx, 50)
	if err != nil {
		return false, fmt.Errorf("loading adaptation log: %w", err)
	}
	cutoff := domain.AddDays(today, -scheduler.AcuteWindowDays)
	for _, e := range entries {
		if e.Rule == scheduler.RuleStatusWindowSkip && !e.SessionDate.Before(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

func (s *planService) currentWindow(ctx context.Context) (*domain.StatusWindow, error) {
	w, err := s.windows.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading status window: %w", err)
	}
	return w, nil
}

func (s *planService) todayReadiness(ctx context.Context, today time.Time) (*domain.ReadinessScore, error) {
	score, err := s.readiness.GetByDate(ctx, today)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading readiness score: %w", err)
	}
	return score, nil
}

func filterWindowDays(slots []time.Time, w *domain.StatusWindow) []time.Time {
	var out []time.Time
	for _, day := range slots {
		if w.ActiveOn(day) {
			continue
		}
		out = append(out, day)
	}
	return out
}

func placedShort(placed []domain.PlanSession, want int) bool {
	return len(placed) < want
}
