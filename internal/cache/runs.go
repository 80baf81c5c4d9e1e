package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Counts summarizes the files a run processed.
type Counts struct {
	Files    int `json:"files"`
	Expanded int `json:"expanded"`
	Failed   int `json:"failed"`
}

// Run is one invocation of the tool.
type Run struct {
	ID         string     `json:"id"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Counts
}

// Stats describes the cache contents.
type Stats struct {
	Entries    int  `json:"entries"`
	Directives int  `json:"directives"`
	Runs       int  `json:"runs"`
	LastRun    *Run `json:"last_run,omitempty"`
}

// BeginRun records the start of a run and returns its ID.
func (s *Store) BeginRun(ctx context.Context) (string, error) {
	id := s.runID.Generate()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		id, s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// FinishRun stores the final counts of run id.
func (s *Store) FinishRun(ctx context.Context, id string, counts Counts) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, files = ?, expanded = ?, failed = ?
		WHERE id = ?
	`, s.now().UnixMilli(), counts.Files, counts.Expanded, counts.Failed, id)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run %s: no such run", id)
	}
	return nil
}

// Stats returns entry and run totals and the most recent run.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(directives), 0) FROM expansions
	`).Scan(&st.Entries, &st.Directives)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&st.Runs); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	var (
		run      Run
		started  int64
		finished sql.NullInt64
	)
	err = s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, files, expanded, failed
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT 1
	`).Scan(&run.ID, &started, &finished, &run.Files, &run.Expanded, &run.Failed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return st, nil
	case err != nil:
		return Stats{}, fmt.Errorf("stats: %w", err)
	}

	run.StartedAt = time.UnixMilli(started)
	if finished.Valid {
		t := time.UnixMilli(finished.Int64)
		run.FinishedAt = &t
	}
	st.LastRun = &run
	return st, nil
}

// Clear deletes every run and entry and returns the number of entries
// removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM expansions`)
	if err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}
	return n, nil
}
