// Package history persists run summaries to a local SQLite database so
// the CLI can show recent results.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/abelmx/affirm/packages/core/runner"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	suite      TEXT NOT NULL,
	passed     INTEGER NOT NULL,
	failed     INTEGER NOT NULL,
	skipped    INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	started_at TIMESTAMP NOT NULL
);
`

// Store is a run-history database.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

// Record is one persisted run summary.
type Record struct {
	ID        string
	Suite     string
	Passed    int
	Failed    int
	Skipped   int
	Duration  time.Duration
	StartedAt time.Time
}

// Open opens the history database at path, creating the file and its
// parent directory on first use.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: initialize schema: %w", err)
	}

	return &Store{db: db, timeout: 5 * time.Second}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun inserts one row per run result.
func (s *Store) RecordRun(result *runner.RunResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, suite, passed, failed, skipped, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.Suite, result.Passed, result.Failed, result.Skipped,
		result.Duration.Milliseconds(), result.StartedAt)
	if err != nil {
		return fmt.Errorf("history: record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, suite, passed, failed, skipped, duration_ms, started_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var ms int64
		if err := rows.Scan(&r.ID, &r.Suite, &r.Passed, &r.Failed, &r.Skipped, &ms, &r.StartedAt); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		records = append(records, r)
	}
	return records, rows.Err()
}
