package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Entry is the cached result of expanding one source file.
type Entry struct {
	SourcePath string
	SourceHash string
	ConfigHash string
	OutputPath string
	OutputHash string
	Directives int
	RunID      string
	UpdatedAt  time.Time
}

// Fresh reports whether e still describes a source with the given hashes.
// outputHash is the hash of the output currently on disk.
func (e Entry) Fresh(sourceHash, configHash, outputHash string) bool {
	return e.SourceHash == sourceHash &&
		e.ConfigHash == configHash &&
		e.OutputHash == outputHash
}

// Lookup returns the entry for sourcePath. ok is false when there is none.
func (s *Store) Lookup(ctx context.Context, sourcePath string) (entry Entry, ok bool, err error) {
	var updated int64
	err = s.db.QueryRowContext(ctx, `
		SELECT source_path, source_hash, config_hash, output_path, output_hash,
		       directives, run_id, updated_at
		FROM expansions
		WHERE source_path = ?
	`, sourcePath).Scan(
		&entry.SourcePath,
		&entry.SourceHash,
		&entry.ConfigHash,
		&entry.OutputPath,
		&entry.OutputHash,
		&entry.Directives,
		&entry.RunID,
		&updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("lookup %s: %w", sourcePath, err)
	}

	entry.UpdatedAt = time.UnixMilli(updated)
	return entry, true, nil
}

// Record inserts or replaces the entry for e.SourcePath. e.RunID must name
// a run started with BeginRun. UpdatedAt is set from the store's clock.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expansions
		(source_path, source_hash, config_hash, output_path, output_hash, directives, run_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_path) DO UPDATE SET
			source_hash = excluded.source_hash,
			config_hash = excluded.config_hash,
			output_path = excluded.output_path,
			output_hash = excluded.output_hash,
			directives = excluded.directives,
			run_id = excluded.run_id,
			updated_at = excluded.updated_at
	`,
		e.SourcePath,
		e.SourceHash,
		e.ConfigHash,
		e.OutputPath,
		e.OutputHash,
		e.Directives,
		e.RunID,
		s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", e.SourcePath, err)
	}
	return nil
}

// Forget removes the entry for sourcePath, if any.
func (s *Store) Forget(ctx context.Context, sourcePath string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expansions WHERE source_path = ?`, sourcePath); err != nil {
		return fmt.Errorf("forget %s: %w", sourcePath, err)
	}
	return nil
}
