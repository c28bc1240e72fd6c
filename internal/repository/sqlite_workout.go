package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pacerapp/pacer/internal/db"
	"github.com/pacerapp/pacer/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo using a SQLite database.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

// NewSQLiteWorkoutRepo creates a new SQLiteWorkoutRepo.
func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

func (r *SQLiteWorkoutRepo) Create(ctx context.Context, w *domain.Workout) error {
	query := `INSERT INTO workouts
		(id, date, type, duration_min, effort_score,
		 zone1_min, zone2_min, zone3_min, zone4_min, zone5_min,
		 has_zones, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		domain.FormatDate(w.Date),
		w.Type,
		w.DurationMin,
		nullableFloatToValue(w.EffortScore),
		w.ZoneMinutes[0], w.ZoneMinutes[1], w.ZoneMinutes[2], w.ZoneMinutes[3], w.ZoneMinutes[4],
		boolToInt(w.HasZones),
		w.Note,
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

func (r *SQLiteWorkoutRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.Workout, error) {
	query := workoutColumns + ` FROM workouts WHERE date >= ? AND date <= ? ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query, domain.FormatDate(from), domain.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing workouts in range: %w", err)
	}
	defer rows.Close()
	return r.scanWorkouts(rows)
}

func (r *SQLiteWorkoutRepo) ListRecent(ctx context.Context, limit int) ([]domain.Workout, error) {
	query := workoutColumns + ` FROM workouts ORDER BY date DESC, created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent workouts: %w", err)
	}
	defer rows.Close()
	return r.scanWorkouts(rows)
}

const workoutColumns = `SELECT id, date, type, duration_min, effort_score,
	zone1_min, zone2_min, zone3_min, zone4_min, zone5_min, has_zones, note, created_at`

// scanWorkouts scans multiple workouts from *sql.Rows.
func (r *SQLiteWorkoutRepo) scanWorkouts(rows *sql.Rows) ([]domain.Workout, error) {
	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		var dateStr, createdAtStr string
		var effort sql.NullFloat64
		var hasZones int

		err := rows.Scan(
			&w.ID, &dateStr, &w.Type, &w.DurationMin, &effort,
			&w.ZoneMinutes[0], &w.ZoneMinutes[1], &w.ZoneMinutes[2], &w.ZoneMinutes[3], &w.ZoneMinutes[4],
			&hasZones, &w.Note, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning workout row: %w", err)
		}

		w.Date, err = domain.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing workout date: %w", err)
		}
		w.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if effort.Valid {
			v := effort.Float64
			w.EffortScore = &v
		}
		w.HasZones = intToBool(hasZones)

		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return workouts, nil
}
