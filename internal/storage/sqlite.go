// Package storage provides SQLite-based persistence for pathfinding runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrRunNotFound is returned by RunByID for unknown IDs.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded generate-and-search outcome.
type Run struct {
	ID        string
	Source    string // "random", "level:<id>" or "ssh"
	Rows      int
	Cols      int
	Seed      uint64
	Obstacles int
	Found     bool
	Steps     int // -1 when no path exists
	CreatedAt time.Time
}

// Stats contains aggregated run statistics.
type Stats struct {
	Runs      int
	Found     int
	AvgSteps  float64 // Over runs with a path
	MaxSteps  int
	LastRunAt time.Time
}

// SuccessRate returns the share of runs that found a path.
func (s Stats) SuccessRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Found) / float64(s.Runs)
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

	// Create parent directories
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			seed TEXT NOT NULL,
			obstacles INTEGER NOT NULL,
			found INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns its ID. A fresh UUID is assigned when
// r.ID is empty.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	// Seeds are full uint64; SQLite integers are signed, so store as text.
	_, err := s.db.Exec(
		`INSERT INTO runs (id, source, rows, cols, seed, obstacles, found, steps)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Source, r.Rows, r.Cols, fmt.Sprint(r.Seed), r.Obstacles, r.Found, r.Steps,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source, rows, cols, seed, obstacles, found, steps, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT id, source, rows, cols, seed, obstacles, found, steps, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return r, err
}

// Stats returns aggregated statistics over all runs.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(found), 0),
		        AVG(CASE WHEN found = 1 THEN steps END),
		        COALESCE(MAX(steps), 0),
		        MAX(created_at)
		 FROM runs`,
	).Scan(&st.Runs, &st.Found, &avg, &st.MaxSteps, &lastRun)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if avg.Valid {
		st.AvgSteps = avg.Float64
	}
	if st.MaxSteps < 0 {
		st.MaxSteps = 0
	}
	st.LastRunAt = parseTime(lastRun)
	return st, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var seed string
	var createdAt any
	if err := sc.Scan(&r.ID, &r.Source, &r.Rows, &r.Cols, &seed, &r.Obstacles, &r.Found, &r.Steps, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	if _, err := fmt.Sscan(seed, &r.Seed); err != nil {
		return Run{}, fmt.Errorf("storage: bad seed %q: %w", seed, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
