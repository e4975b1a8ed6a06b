package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/tagid"
)

// ErrBatchNotFound is returned when a batch id is not in the log.
var ErrBatchNotFound = errors.New("batch not found")

// ListBatches returns every batch ordered by Seq.
//
// Returns an empty slice (not nil) if the log is empty.
func (s *Store) ListBatches(ctx context.Context) ([]Batch, error) {
	batches := []Batch{}
	if err := s.db.SelectContext(ctx, &batches, `
		SELECT id, backend, seq, pass FROM batches ORDER BY seq ASC
	`); err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return batches, nil
}

// GetBatch returns the batch with the given id.
func (s *Store) GetBatch(ctx context.Context, id tagid.ID[Batch, string]) (Batch, error) {
	var b Batch
	err := s.db.GetContext(ctx, &b, `SELECT id, backend, seq, pass FROM batches WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, fmt.Errorf("get batch %s: %w", id, ErrBatchNotFound)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("get batch %s: %w", id, err)
	}
	return b, nil
}

// LatestBatch returns the batch with the highest Seq.
func (s *Store) LatestBatch(ctx context.Context) (Batch, error) {
	var b Batch
	err := s.db.GetContext(ctx, &b, `SELECT id, backend, seq, pass FROM batches ORDER BY seq DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, fmt.Errorf("latest batch: %w", ErrBatchNotFound)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("latest batch: %w", err)
	}
	return b, nil
}

// ListRuns returns the runs of one batch in insertion order.
//
// Returns an empty slice (not nil) if the batch has no runs.
func (s *Store) ListRuns(ctx context.Context, batch tagid.ID[Batch, string]) ([]Run, error) {
	runs := []Run{}
	if err := s.db.SelectContext(ctx, &runs, `
		SELECT id, batch_id, backend, repr, bridge, ok, skipped, detail
		FROM runs
		WHERE batch_id = ?
		ORDER BY id ASC
	`, batch); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
