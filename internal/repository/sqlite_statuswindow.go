package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
)

// SQLiteStatusWindowRepo implements StatusWindowRepo using a SQLite database.
// At most one window exists at a time; Set replaces any previous one.
type SQLiteStatusWindowRepo struct {
	db db.DBTX
}

// NewSQLiteStatusWindowRepo creates a new SQLiteStatusWindowRepo.
func NewSQLiteStatusWindowRepo(conn db.DBTX) *SQLiteStatusWindowRepo {
	return &SQLiteStatusWindowRepo{db: conn}
}

func (r *SQLiteStatusWindowRepo) Get(ctx context.Context) (*domain.StatusWindow, error) {
	row := r.db.QueryRowContext(ctx, `SELECT kind, since, until FROM status_windows WHERE id = 1`)

	var w domain.StatusWindow
	var kind, untilStr string
	var since sql.NullString
	err := row.Scan(&kind, &since, &untilStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("status window: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning status window: %w", err)
	}

	w.Kind = domain.StatusKind(kind)
	w.Since = parseNullableTime(since, "2006-01-02")
	if w.Until, err = domain.ParseDate(untilStr); err != nil {
		return nil, fmt.Errorf("parsing status window until: %w", err)
	}
	return &w, nil
}

func (r *SQLiteStatusWindowRepo) Set(ctx context.Context, w domain.StatusWindow) error {
	query := `INSERT OR REPLACE INTO status_windows (id, kind, since, until) VALUES (1, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(w.Kind),
		nullableTimeToString(w.Since, "2006-01-02"),
		domain.FormatDate(w.Until),
	)
	if err != nil {
		return fmt.Errorf("setting status window: %w", err)
	}
	return nil
}

func (r *SQLiteStatusWindowRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM status_windows WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("clearing status window: %w", err)
	}
	return nil
}
