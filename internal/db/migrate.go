package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// additions tolerate re-runs.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workouts (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		type         TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		effort_score REAL,
		zone1_min    INTEGER NOT NULL DEFAULT 0,
		zone2_min    INTEGER NOT NULL DEFAULT 0,
		zone3_min    INTEGER NOT NULL DEFAULT 0,
		zone4_min    INTEGER NOT NULL DEFAULT 0,
		zone5_min    INTEGER NOT NULL DEFAULT 0,
		has_zones    INTEGER NOT NULL DEFAULT 0,
		note         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL
		             CHECK(kind IN ('endurance','strength','bodycomp','sleep','vo2max','general')),
		sub_kind     TEXT NOT NULL DEFAULT '',
		target_value TEXT NOT NULL DEFAULT '',
		priority     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id              TEXT PRIMARY KEY,
		kind            TEXT NOT NULL,
		date            TEXT NOT NULL,
		priority        INTEGER NOT NULL DEFAULT 0,
		target_time_sec INTEGER
	)`,

	`CREATE TABLE IF NOT EXISTS constraints (
		id                    INTEGER PRIMARY KEY CHECK(id = 1),
		days_available        TEXT NOT NULL,
		preferred_rest_days   TEXT NOT NULL,
		max_sessions_per_week INTEGER,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS fixed_appointments (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		weekday     INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		time_window TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS baseline (
		id                   INTEGER PRIMARY KEY CHECK(id = 1),
		run_freq             INTEGER NOT NULL DEFAULT 0,
		strength_freq        INTEGER NOT NULL DEFAULT 0,
		longest_run_min      INTEGER NOT NULL DEFAULT 0,
		z2_duration_min      INTEGER NOT NULL DEFAULT 0,
		strength_session_min INTEGER NOT NULL DEFAULT 0,
		strength_split       TEXT NOT NULL DEFAULT 'full_body'
		                     CHECK(strength_split IN ('full_body','upper_lower','push_pull_legs','bro_split')),
		fitness_level        TEXT NOT NULL DEFAULT 'intermediate'
		                     CHECK(fitness_level IN ('beginner','intermediate','advanced'))
	)`,

	`CREATE TABLE IF NOT EXISTS plan_sessions (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		modality     TEXT NOT NULL,
		type         TEXT NOT NULL,
		variant      TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL,
		hardness     TEXT NOT NULL,
		status       TEXT NOT NULL
		             CHECK(status IN ('planned','completed','missed','skipped')),
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_sessions_date ON plan_sessions(date)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_sessions_status ON plan_sessions(status)`,

	`CREATE TABLE IF NOT EXISTS adaptation_log (
		id           TEXT PRIMARY KEY,
		timestamp    TEXT NOT NULL,
		session_id   TEXT NOT NULL,
		session_date TEXT NOT NULL,
		from_status  TEXT NOT NULL,
		to_status    TEXT NOT NULL,
		rule         TEXT NOT NULL,
		detail       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_adaptation_log_session ON adaptation_log(session_id)`,

	`CREATE TABLE IF NOT EXISTS readiness_scores (
		date    TEXT PRIMARY KEY,
		score   INTEGER NOT NULL CHECK(score BETWEEN 0 AND 100),
		quality TEXT NOT NULL DEFAULT 'ok' CHECK(quality IN ('ok','insufficient'))
	)`,

	`CREATE TABLE IF NOT EXISTS status_windows (
		id    INTEGER PRIMARY KEY CHECK(id = 1),
		kind  TEXT NOT NULL CHECK(kind IN ('illness','travel','injury')),
		since TEXT,
		until TEXT NOT NULL
	)`,
}
