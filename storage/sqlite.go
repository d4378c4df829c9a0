// Package storage provides SQLite-based persistence for run results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunResult is one finished playthrough.
type RunResult struct {
	ID              int64
	Score           int
	SurvivalTime    float64
	EnemiesDefeated int
	MaxCombo        int
	PerfectBlocks   int
	DamageBlocked   float64
	DeathCause      string
	Difficulty      string
	CreatedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS run_results (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	score            INTEGER NOT NULL,
	survival_time    REAL NOT NULL,
	enemies_defeated INTEGER NOT NULL,
	max_combo        INTEGER NOT NULL,
	perfect_blocks   INTEGER NOT NULL,
	damage_blocked   REAL NOT NULL,
	death_cause      TEXT NOT NULL DEFAULT '',
	difficulty       TEXT NOT NULL DEFAULT 'normal',
	created_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_run_results_score ON run_results(score DESC);
`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRunResult inserts one finished run and returns its id.
func (s *Store) SaveRunResult(r RunResult) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO run_results
			(score, survival_time, enemies_defeated, max_combo,
			 perfect_blocks, damage_blocked, death_cause, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Score, r.SurvivalTime, r.EnemiesDefeated, r.MaxCombo,
		r.PerfectBlocks, r.DamageBlocked, r.DeathCause, r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run result: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns the best runs by score, newest first among ties.
func (s *Store) TopRuns(limit int) ([]RunResult, error) {
	rows, err := s.db.Query(`
		SELECT id, score, survival_time, enemies_defeated, max_combo,
		       perfect_blocks, damage_blocked, death_cause, difficulty, created_at
		FROM run_results
		ORDER BY score DESC, created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: query top runs: %w", err)
	}
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var r RunResult
		if err := rows.Scan(&r.ID, &r.Score, &r.SurvivalTime, &r.EnemiesDefeated,
			&r.MaxCombo, &r.PerfectBlocks, &r.DamageBlocked,
			&r.DeathCause, &r.Difficulty, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan run result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// BestScore returns the highest recorded score, 0 when no runs exist.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM run_results`).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: query best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}
