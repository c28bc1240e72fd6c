package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
)

// SQLiteIntakeRepo implements IntakeRepo using a SQLite database. The intake
// is a singleton aggregate spread over five tables; Replace rewrites all of
// them, so it must run inside a unit of work.
type SQLiteIntakeRepo struct {
	db db.DBTX
}

// NewSQLiteIntakeRepo creates a new SQLiteIntakeRepo.
func NewSQLiteIntakeRepo(conn db.DBTX) *SQLiteIntakeRepo {
	return &SQLiteIntakeRepo{db: conn}
}

func (r *SQLiteIntakeRepo) Get(ctx context.Context) (*domain.Intake, error) {
	var in domain.Intake

	constraints, updatedAt, err := r.getConstraints(ctx)
	if err != nil {
		return nil, err
	}
	in.Constraints = *constraints
	in.UpdatedAt = updatedAt

	if in.Goals, err = r.listGoals(ctx); err != nil {
		return nil, err
	}
	if in.Milestones, err = r.listMilestones(ctx); err != nil {
		return nil, err
	}
	if in.Constraints.FixedAppointments, err = r.listAppointments(ctx); err != nil {
		return nil, err
	}
	if err = r.getBaseline(ctx, &in.Baseline); err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *SQLiteIntakeRepo) Replace(ctx context.Context, in *domain.Intake) error {
	for _, table := range []string{"goals", "milestones", "constraints", "fixed_appointments", "baseline"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, g := range in.Goals {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO goals (id, kind, sub_kind, target_value, priority) VALUES (?, ?, ?, ?, ?)`,
			g.ID, string(g.Kind), g.SubKind, g.TargetValue, g.Priority,
		)
		if err != nil {
			return fmt.Errorf("inserting goal: %w", err)
		}
	}

	for _, m := range in.Milestones {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO milestones (id, kind, date, priority, target_time_sec) VALUES (?, ?, ?, ?, ?)`,
			m.ID, string(m.Kind), domain.FormatDate(m.Date), m.Priority, nullableIntToValue(m.TargetTimeSec),
		)
		if err != nil {
			return fmt.Errorf("inserting milestone: %w", err)
		}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO constraints (id, days_available, preferred_rest_days, max_sessions_per_week, updated_at)
		 VALUES (1, ?, ?, ?, ?)`,
		encodeWeekdaySet(in.Constraints.DaysAvailable),
		encodeWeekdaySet(in.Constraints.PreferredRestDays),
		nullableIntToValue(in.Constraints.MaxSessionsPerWeek),
		in.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting constraints: %w", err)
	}

	for _, a := range in.Constraints.FixedAppointments {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO fixed_appointments (weekday, time_window) VALUES (?, ?)`,
			int(a.Weekday), a.TimeWindow,
		)
		if err != nil {
			return fmt.Errorf("inserting fixed appointment: %w", err)
		}
	}

	b := in.Baseline
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO baseline
		 (id, run_freq, strength_freq, longest_run_min, z2_duration_min, strength_session_min, strength_split, fitness_level)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		b.RunFrequencyPerWeek, b.StrengthFrequencyPerWeek, b.LongestRunMin,
		b.Z2DurationMin, b.StrengthSessionMin, string(b.StrengthSplit), string(b.FitnessLevel),
	)
	if err != nil {
		return fmt.Errorf("inserting baseline: %w", err)
	}
	return nil
}

func (r *SQLiteIntakeRepo) getConstraints(ctx context.Context) (*domain.Constraints, time.Time, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT days_available, preferred_rest_days, max_sessions_per_week, updated_at FROM constraints WHERE id = 1`)

	var availStr, restStr, updatedAtStr string
	var maxSessions sql.NullInt64
	err := row.Scan(&availStr, &restStr, &maxSessions, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, time.Time{}, fmt.Errorf("intake: %w", ErrNotFound)
		}
		return nil, time.Time{}, fmt.Errorf("scanning constraints: %w", err)
	}

	var c domain.Constraints
	if c.DaysAvailable, err = decodeWeekdaySet(availStr); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding days_available: %w", err)
	}
	if c.PreferredRestDays, err = decodeWeekdaySet(restStr); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding preferred_rest_days: %w", err)
	}
	if maxSessions.Valid {
		v := int(maxSessions.Int64)
		c.MaxSessionsPerWeek = &v
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parsing constraints updated_at: %w", err)
	}
	return &c, updatedAt, nil
}

func (r *SQLiteIntakeRepo) listGoals(ctx context.Context) ([]domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, sub_kind, target_value, priority FROM goals ORDER BY priority DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		var kind string
		if err := rows.Scan(&g.ID, &kind, &g.SubKind, &g.TargetValue, &g.Priority); err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		g.Kind = domain.GoalKind(kind)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteIntakeRepo) listMilestones(ctx context.Context) ([]domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, date, priority, target_time_sec FROM milestones ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var kind, dateStr string
		var target sql.NullInt64
		if err := rows.Scan(&m.ID, &kind, &dateStr, &m.Priority, &target); err != nil {
			return nil, fmt.Errorf("scanning milestone row: %w", err)
		}
		m.Kind = domain.GoalKind(kind)
		if m.Date, err = domain.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("parsing milestone date: %w", err)
		}
		if target.Valid {
			v := int(target.Int64)
			m.TargetTimeSec = &v
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func (r *SQLiteIntakeRepo) listAppointments(ctx context.Context) ([]domain.FixedAppointment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT weekday, time_window FROM fixed_appointments ORDER BY weekday, id`)
	if err != nil {
		return nil, fmt.Errorf("listing fixed appointments: %w", err)
	}
	defer rows.Close()

	var appts []domain.FixedAppointment
	for rows.Next() {
		var a domain.FixedAppointment
		var weekday int
		if err := rows.Scan(&weekday, &a.TimeWindow); err != nil {
			return nil, fmt.Errorf("scanning fixed appointment row: %w", err)
		}
		a.Weekday = time.Weekday(weekday)
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fixed appointments: %w", err)
	}
	return appts, nil
}

func (r *SQLiteIntakeRepo) getBaseline(ctx context.Context, b *domain.Baseline) error {
	row := r.db.QueryRowContext(ctx,
		`SELECT run_freq, strength_freq, longest_run_min, z2_duration_min, strength_session_min, strength_split, fitness_level
		 FROM baseline WHERE id = 1`)

	var split, level string
	err := row.Scan(&b.RunFrequencyPerWeek, &b.StrengthFrequencyPerWeek, &b.LongestRunMin,
		&b.Z2DurationMin, &b.StrengthSessionMin, &split, &level)
	if err != nil {
		if err == sql.ErrNoRows {
			// Baseline is optional; the planner falls back to goal defaults.
			return nil
		}
		return fmt.Errorf("scanning baseline: %w", err)
	}
	b.StrengthSplit = domain.StrengthSplit(split)
	b.FitnessLevel = domain.FitnessLevel(level)
	return nil
}
