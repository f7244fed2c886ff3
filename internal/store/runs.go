package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nsharma/studyblocks/internal/allocate"
)

// Run is one saved planning run.
type Run struct {
	ID         string    `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	Source     string    `db:"source"`
	ItemCount  int       `db:"item_count"`
	BlockCount int       `db:"block_count"`
}

// BlockRecord is a stored study block row.
type BlockRecord struct {
	ID     int64  `db:"id"`
	RunID  string `db:"run_id"`
	Title  string `db:"title"`
	Date   string `db:"date"`
	Time   string `db:"time"`
	Type   string `db:"type"`
	Course string `db:"course"`
}

// SaveRun stores a planning run with all of its blocks in one
// transaction and returns the run ID.
func (s *Store) SaveRun(ctx context.Context, source string, itemCount int, blocks []allocate.Block) (string, error) {
	run := Run{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Source:     source,
		ItemCount:  itemCount,
		BlockCount: len(blocks),
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO runs (id, created_at, source, item_count, block_count)
		 VALUES (:id, :created_at, :source, :item_count, :block_count)`, run); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, b := range blocks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO blocks (run_id, title, date, time, type, course)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, b.Title, b.Date(), b.Clock(), string(b.Kind), b.Course); err != nil {
			return "", fmt.Errorf("insert block: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := s.db.SelectContext(ctx, &runs,
		`SELECT id, created_at, source, item_count, block_count
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// LatestRun returns the most recent run, or nil when none exist.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	var run Run
	err := s.db.GetContext(ctx, &run,
		`SELECT id, created_at, source, item_count, block_count
		 FROM runs ORDER BY created_at DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return &run, nil
}

// BlocksForRun returns a run's blocks in insertion (priority) order.
func (s *Store) BlocksForRun(ctx context.Context, runID string) ([]BlockRecord, error) {
	var blocks []BlockRecord
	err := s.db.SelectContext(ctx, &blocks,
		`SELECT id, run_id, title, date, time, type, course
		 FROM blocks WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("blocks for run %s: %w", runID, err)
	}
	return blocks, nil
}
