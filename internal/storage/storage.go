// Package storage persists fitting runs and their per-step progress to
// SQLite, so results survive the process and can be compared across runs.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/descent-ml/descent/internal/optim"
)

// Run is one persisted optimization run: its configuration and outcome.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Size         int
	LearningRate float64
	MaxSteps     int
	Eps          float64
	Theta0       float64
	Theta1       float64
	Steps        int
	Converged    bool
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Store is a SQLite-backed run history.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewStore creates a store for the database file at path. Call Init before use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init opens the database and creates the schema if needed. Calling Init on
// an initialized store is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("storage: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRun persists a run and its progress records in a single transaction.
// Saving an existing run ID replaces the run and its steps.
func (s *Store) SaveRun(ctx context.Context, run Run, progress []optim.ProgressRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, size, learning_rate, max_steps, eps,
			theta0, theta1, steps, converged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			size = excluded.size,
			learning_rate = excluded.learning_rate,
			max_steps = excluded.max_steps,
			eps = excluded.eps,
			theta0 = excluded.theta0,
			theta1 = excluded.theta1,
			steps = excluded.steps,
			converged = excluded.converged
	`, run.ID, run.CreatedAt.UnixMilli(), run.Size, run.LearningRate, run.MaxSteps,
		run.Eps, run.Theta0, run.Theta1, run.Steps, run.Converged)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_steps WHERE run_id = ?`, run.ID); err != nil {
		return err
	}

	for _, rec := range progress {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_steps (run_id, step, theta0, theta1)
			VALUES (?, ?, ?, ?)
		`, run.ID, rec.Step, rec.Theta0, rec.Theta1)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun loads a run by ID. The second return value is false when the run
// does not exist.
func (s *Store) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	var run Run
	var createdAt int64
	err = db.QueryRowContext(ctx, `
		SELECT id, created_at, size, learning_rate, max_steps, eps,
			theta0, theta1, steps, converged
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &createdAt, &run.Size, &run.LearningRate, &run.MaxSteps,
		&run.Eps, &run.Theta0, &run.Theta1, &run.Steps, &run.Converged)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}
	run.CreatedAt = time.UnixMilli(createdAt).UTC()
	return run, true, nil
}

// RunSteps loads the progress records of a run in step order.
func (s *Store) RunSteps(ctx context.Context, id string) ([]optim.ProgressRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT step, theta0, theta1 FROM run_steps
		WHERE run_id = ? ORDER BY step
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []optim.ProgressRecord
	for rows.Next() {
		var rec optim.ProgressRecord
		if err := rows.Scan(&rec.Step, &rec.Theta0, &rec.Theta1); err != nil {
			return nil, fmt.Errorf("storage: scan step for run %s: %w", id, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListRuns returns all runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, created_at, size, learning_rate, max_steps, eps,
			theta0, theta1, steps, converged
		FROM runs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(&run.ID, &createdAt, &run.Size, &run.LearningRate,
			&run.MaxSteps, &run.Eps, &run.Theta0, &run.Theta1, &run.Steps,
			&run.Converged); err != nil {
			return nil, err
		}
		run.CreatedAt = time.UnixMilli(createdAt).UTC()
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("storage: store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			size INTEGER NOT NULL,
			learning_rate REAL NOT NULL,
			max_steps INTEGER NOT NULL,
			eps REAL NOT NULL,
			theta0 REAL NOT NULL,
			theta1 REAL NOT NULL,
			steps INTEGER NOT NULL,
			converged INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS run_steps (
			run_id TEXT NOT NULL,
			step INTEGER NOT NULL,
			theta0 REAL NOT NULL,
			theta1 REAL NOT NULL,
			PRIMARY KEY (run_id, step)
		);
	`)
	return err
}
