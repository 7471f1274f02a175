// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/sortviz/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for runs, benchmarks and quiz attempts.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sort_runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			size INTEGER NOT NULL,
			comparisons INTEGER NOT NULL,
			swaps INTEGER NOT NULL,
			delay_ms INTEGER NOT NULL,
			frames INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS bench_runs (
			id INTEGER PRIMARY KEY,
			run_id TEXT NOT NULL UNIQUE,
			started_at TEXT NOT NULL,
			sizes TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS bench_results (
			run_id TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			size INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			comparisons INTEGER NOT NULL,
			swaps INTEGER NOT NULL,
			PRIMARY KEY (run_id, algorithm, size)
		);`,
		`CREATE TABLE IF NOT EXISTS quiz_attempts (
			id INTEGER PRIMARY KEY,
			taken_at TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sort_runs_ended_at ON sort_runs(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_bench_runs_started_at ON bench_runs(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSortRun stores a completed visualiser run.
func (s *Store) InsertSortRun(ctx context.Context, run model.SortRun) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sort_runs (started_at, ended_at, algorithm, size, comparisons, swaps, delay_ms, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.Format(time.RFC3339Nano),
		run.EndedAt.Format(time.RFC3339Nano),
		run.Algorithm,
		run.Size,
		run.Comparisons,
		run.Swaps,
		run.DelayMs,
		run.Frames,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSortRuns returns visualiser runs filtered by cfg, oldest first.
func (s *Store) ListSortRuns(ctx context.Context, cfg model.HistoryConfig) ([]model.SortRun, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Algorithm != "" {
		clauses = append(clauses, "algorithm = ?")
		args = append(args, cfg.Algorithm)
	}
	query := fmt.Sprintf(`SELECT id, started_at, ended_at, algorithm, size, comparisons, swaps, delay_ms, frames
		FROM sort_runs
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.SortRun
	for rows.Next() {
		var run model.SortRun
		var startedAt, endedAt string
		if err := rows.Scan(&run.ID, &startedAt, &endedAt, &run.Algorithm, &run.Size, &run.Comparisons, &run.Swaps, &run.DelayMs, &run.Frames); err != nil {
			return nil, err
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if run.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(runs) > cfg.Last {
		runs = runs[len(runs)-cfg.Last:]
	}
	return runs, nil
}

// InsertBenchRun stores a benchmark run and all of its results atomically.
func (s *Store) InsertBenchRun(ctx context.Context, run model.BenchRun, results []model.BenchResult) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bench_runs (run_id, started_at, sizes) VALUES (?, ?, ?)`,
		run.RunID,
		run.StartedAt.Format(time.RFC3339Nano),
		encodeSizes(run.Sizes),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(results) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO bench_results (run_id, algorithm, size, duration_ns, comparisons, swaps)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, r := range results {
			if _, err := stmt.ExecContext(ctx, run.RunID, r.Algorithm, r.Size, r.DurationNs, r.Comparisons, r.Swaps); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListBenchRuns returns benchmark runs, oldest first. last > 0 keeps only the
// most recent runs.
func (s *Store) ListBenchRuns(ctx context.Context, last int) ([]model.BenchRun, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, started_at, sizes FROM bench_runs ORDER BY started_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.BenchRun
	for rows.Next() {
		var run model.BenchRun
		var startedAt, sizes string
		if err := rows.Scan(&run.ID, &run.RunID, &startedAt, &sizes); err != nil {
			return nil, err
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if run.Sizes, err = decodeSizes(sizes); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if last > 0 && len(runs) > last {
		runs = runs[len(runs)-last:]
	}
	return runs, nil
}

// ListBenchResults returns the results of one benchmark run ordered by
// algorithm and size.
func (s *Store) ListBenchResults(ctx context.Context, runID string) ([]model.BenchResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, algorithm, size, duration_ns, comparisons, swaps
		 FROM bench_results
		 WHERE run_id = ?
		 ORDER BY algorithm ASC, size ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []model.BenchResult
	for rows.Next() {
		var r model.BenchResult
		if err := rows.Scan(&r.RunID, &r.Algorithm, &r.Size, &r.DurationNs, &r.Comparisons, &r.Swaps); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// InsertQuizAttempt stores a finished quiz.
func (s *Store) InsertQuizAttempt(ctx context.Context, attempt model.QuizAttempt) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (taken_at, score, total) VALUES (?, ?, ?)`,
		attempt.TakenAt.Format(time.RFC3339Nano),
		attempt.Score,
		attempt.Total,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListQuizAttempts returns quiz attempts, oldest first.
func (s *Store) ListQuizAttempts(ctx context.Context, last int) ([]model.QuizAttempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, taken_at, score, total FROM quiz_attempts ORDER BY taken_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var attempts []model.QuizAttempt
	for rows.Next() {
		var a model.QuizAttempt
		var takenAt string
		if err := rows.Scan(&a.ID, &takenAt, &a.Score, &a.Total); err != nil {
			return nil, err
		}
		if a.TakenAt, err = time.Parse(time.RFC3339Nano, takenAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if last > 0 && len(attempts) > last {
		attempts = attempts[len(attempts)-last:]
	}
	return attempts, nil
}

func encodeSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func decodeSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
