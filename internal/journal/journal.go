// Package journal records organizing runs and their file moves in a
// SQLite database, giving `bucketize history` something to show. The
// journal is strictly best-effort: a run never fails because its journal
// write did.
package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Run is one recorded organizing run.
type Run struct {
	ID             string
	Root           string
	Depth          int
	DryRun         bool
	StartedAt      time.Time
	FinishedAt     time.Time
	FoldersCreated int
	FilesMoved     int
	FilesFailed    int
}

// Move is one recorded file move attempt.
type Move struct {
	ID      int64
	RunID   string
	Src     string
	Dst     string
	OK      bool
	Error   string
	MovedAt time.Time
}

// Stats aggregates the whole journal.
type Stats struct {
	TotalRuns   int
	TotalMoves  int
	TotalFailed int
	FirstRunAt  time.Time
	LastRunAt   time.Time
}

// Store manages the SQLite journal database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the journal database at dbPath.
// ":memory:" is supported for tests.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}

	// busy_timeout first so the remaining pragmas wait on locks instead
	// of failing when another bucketize process holds the database.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure journal database: %w", err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize journal schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun inserts a new run row and returns its generated ID.
func (s *Store) BeginRun(ctx context.Context, root string, depth int, dryRun bool) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, root, depth, dry_run, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, root, depth, dryRun, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("record run start: %w", err)
	}
	return id, nil
}

// FinishRun stamps the run's end time and final counters.
func (s *Store) FinishRun(ctx context.Context, runID string, foldersCreated, filesMoved, filesFailed int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, folders_created = ?, files_moved = ?, files_failed = ? WHERE id = ?`,
		time.Now().UTC(), foldersCreated, filesMoved, filesFailed, runID,
	)
	if err != nil {
		return fmt.Errorf("record run finish: %w", err)
	}
	return nil
}

// RecordMove inserts one move attempt. cause is empty for successful moves.
func (s *Store) RecordMove(ctx context.Context, runID, src, dst string, ok bool, cause string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO moves (run_id, src, dst, ok, error, moved_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, src, dst, ok, cause, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, depth, dry_run, started_at, finished_at,
		        folders_created, files_moved, files_failed
		   FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.Root, &r.Depth, &r.DryRun, &r.StartedAt,
			&finished, &r.FoldersCreated, &r.FilesMoved, &r.FilesFailed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = finished.Time
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// MovesForRun returns the moves recorded for one run, in insertion order.
func (s *Store) MovesForRun(ctx context.Context, runID string) ([]Move, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, src, dst, ok, error, moved_at FROM moves WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var m Move
		if err := rows.Scan(&m.ID, &m.RunID, &m.Src, &m.Dst, &m.OK, &m.Error, &m.MovedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// Stats aggregates run and move counts across the whole journal.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&stats.TotalRuns)
	if err != nil {
		return nil, fmt.Errorf("aggregate runs: %w", err)
	}

	if stats.TotalRuns > 0 {
		err = s.db.QueryRowContext(ctx,
			`SELECT started_at FROM runs ORDER BY started_at ASC LIMIT 1`).Scan(&stats.FirstRunAt)
		if err != nil {
			return nil, fmt.Errorf("aggregate runs: %w", err)
		}
		err = s.db.QueryRowContext(ctx,
			`SELECT started_at FROM runs ORDER BY started_at DESC LIMIT 1`).Scan(&stats.LastRunAt)
		if err != nil {
			return nil, fmt.Errorf("aggregate runs: %w", err)
		}
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN ok = 0 THEN 1 ELSE 0 END), 0) FROM moves`).
		Scan(&stats.TotalMoves, &stats.TotalFailed)
	if err != nil {
		return nil, fmt.Errorf("aggregate moves: %w", err)
	}

	return stats, nil
}

// PruneOlderThan deletes runs (and, via cascade, their moves) started more
// than the given number of days ago. Returns the number of runs removed.
func (s *Store) PruneOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}
	return res.RowsAffected()
}

// Clear removes all journal history.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM moves`); err != nil {
		return fmt.Errorf("clear journal moves: %w", err)
	}
	return nil
}
