package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
)

// SQLiteReadinessRepo implements ReadinessRepo using a SQLite database.
type SQLiteReadinessRepo struct {
	db db.DBTX
}

// NewSQLiteReadinessRepo creates a new SQLiteReadinessRepo.
func NewSQLiteReadinessRepo(conn db.DBTX) *SQLiteReadinessRepo {
	return &SQLiteReadinessRepo{db: conn}
}

func (r *SQLiteReadinessRepo) Upsert(ctx context.Context, s domain.ReadinessScore) error {
	query := `INSERT INTO readiness_scores (date, score, quality) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET score = excluded.score, quality = excluded.quality`
	_, err := r.db.ExecContext(ctx, query, domain.FormatDate(s.Date), s.Score, string(s.Quality))
	if err != nil {
		return fmt.Errorf("upserting readiness score: %w", err)
	}
	return nil
}

func (r *SQLiteReadinessRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ReadinessScore, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT date, score, quality FROM readiness_scores WHERE date = ?`, domain.FormatDate(date))

	var s domain.ReadinessScore
	var dateStr, quality string
	err := row.Scan(&dateStr, &s.Score, &quality)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("readiness score: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning readiness score: %w", err)
	}

	if s.Date, err = domain.ParseDate(dateStr); err != nil {
		return nil, fmt.Errorf("parsing readiness date: %w", err)
	}
	s.Quality = domain.ReadinessQuality(quality)
	return &s, nil
}
