package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
)

// SQLiteAuditRepo implements AuditRepo using a SQLite database. The table is
// append-only; there is no update or delete path.
type SQLiteAuditRepo struct {
	db db.DBTX
}

// NewSQLiteAuditRepo creates a new SQLiteAuditRepo.
func NewSQLiteAuditRepo(conn db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: conn}
}

func (r *SQLiteAuditRepo) Append(ctx context.Context, e *domain.AdaptationLogEntry) error {
	query := `INSERT INTO adaptation_log
		(id, timestamp, session_id, session_date, from_status, to_status, rule, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Timestamp.Format(time.RFC3339),
		e.SessionID,
		domain.FormatDate(e.SessionDate),
		string(e.FromStatus),
		string(e.ToStatus),
		e.Rule,
		e.Detail,
	)
	if err != nil {
		return fmt.Errorf("appending adaptation log entry: %w", err)
	}
	return nil
}

func (r *SQLiteAuditRepo) List(ctx context.Context, limit int) ([]domain.AdaptationLogEntry, error) {
	query := auditColumns + ` FROM adaptation_log ORDER BY timestamp DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing adaptation log: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteAuditRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.AdaptationLogEntry, error) {
	query := auditColumns + ` FROM adaptation_log WHERE session_id = ? ORDER BY timestamp, id`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing adaptation log by session: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

const auditColumns = `SELECT id, timestamp, session_id, session_date, from_status, to_status, rule, detail`

func (r *SQLiteAuditRepo) scanEntries(rows *sql.Rows) ([]domain.AdaptationLogEntry, error) {
	var entries []domain.AdaptationLogEntry
	for rows.Next() {
		var e domain.AdaptationLogEntry
		var tsStr, dateStr, from, to string

		err := rows.Scan(&e.ID, &tsStr, &e.SessionID, &dateStr, &from, &to, &e.Rule, &e.Detail)
		if err != nil {
			return nil, fmt.Errorf("scanning adaptation log row: %w", err)
		}

		if e.Timestamp, err = time.Parse(time.RFC3339, tsStr); err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		if e.SessionDate, err = domain.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("parsing session_date: %w", err)
		}
		e.FromStatus = domain.SessionStatus(from)
		e.ToStatus = domain.SessionStatus(to)

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating adaptation log: %w", err)
	}
	return entries, nil
}
