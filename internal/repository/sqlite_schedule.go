package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

const sessionColumns = `SELECT id, date, modality, type, variant, duration_min, hardness, status, notes, created_at, updated_at`

func (r *SQLiteScheduleRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.PlanSession, error) {
	query := sessionColumns + ` FROM plan_sessions WHERE date >= ? AND date <= ? ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, domain.FormatDate(from), domain.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing plan sessions in range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteScheduleRepo) ListByStatus(ctx context.Context, status domain.SessionStatus) ([]domain.PlanSession, error) {
	query := sessionColumns + ` FROM plan_sessions WHERE status = ? ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("listing plan sessions by status: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteScheduleRepo) TerminalDates(ctx context.Context, from, to time.Time) (map[string]bool, error) {
	query := `SELECT DISTINCT date FROM plan_sessions
		WHERE date >= ? AND date <= ? AND status IN ('completed', 'missed', 'skipped')`
	rows, err := r.db.QueryContext(ctx, query, domain.FormatDate(from), domain.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing terminal dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning terminal date: %w", err)
		}
		dates[d] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating terminal dates: %w", err)
	}
	return dates, nil
}

func (r *SQLiteScheduleRepo) ReplacePlanned(ctx context.Context, from, to time.Time, sessions []domain.PlanSession) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM plan_sessions WHERE date >= ? AND date <= ? AND status = 'planned'`,
		domain.FormatDate(from), domain.FormatDate(to),
	)
	if err != nil {
		return fmt.Errorf("clearing planned sessions: %w", err)
	}

	for i := range sessions {
		if err := r.insert(ctx, &sessions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE plan_sessions SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), updatedAt.Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("updating session status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRepo) insert(ctx context.Context, s *domain.PlanSession) error {
	query := `INSERT INTO plan_sessions
		(id, date, modality, type, variant, duration_min, hardness, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		domain.FormatDate(s.Date),
		string(s.Modality),
		string(s.Type),
		s.Variant,
		s.DurationMin,
		string(s.Hardness),
		string(s.Status),
		encodeNotes(s.Notes),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan session: %w", err)
	}
	return nil
}

// scanSessions scans multiple plan sessions from *sql.Rows.
func (r *SQLiteScheduleRepo) scanSessions(rows *sql.Rows) ([]domain.PlanSession, error) {
	var sessions []domain.PlanSession
	for rows.Next() {
		var s domain.PlanSession
		var dateStr, modality, typ, hardness, status, notes, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&s.ID, &dateStr, &modality, &typ, &s.Variant, &s.DurationMin,
			&hardness, &status, &notes, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning plan session row: %w", err)
		}

		if s.Date, err = domain.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("parsing session date: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		s.Modality = domain.Modality(modality)
		s.Type = domain.SessionType(typ)
		s.Hardness = domain.StressTier(hardness)
		s.Status = domain.SessionStatus(status)
		s.Notes = decodeNotes(notes)

		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan sessions: %w", err)
	}
	return sessions, nil
}
