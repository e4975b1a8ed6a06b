package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/roach88/tagid"
)

const insertRun = `
	INSERT INTO runs (batch_id, backend, repr, bridge, ok, skipped, detail)
	VALUES (:batch_id, :backend, :repr, :bridge, :ok, :skipped, :detail)
`

// WriteBatch inserts b and its runs in a single transaction. b.Seq is
// assigned from the batch log; every run's Batch and ID are filled in.
// The stored records are returned.
func (s *Store) WriteBatch(ctx context.Context, b Batch, runs []Run) (Batch, []Run, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Batch{}, nil, fmt.Errorf("write batch: %w", err)
	}
	defer tx.Rollback()

	if err := tx.GetContext(ctx, &b.Seq, "SELECT COALESCE(MAX(seq), 0) + 1 FROM batches"); err != nil {
		return Batch{}, nil, fmt.Errorf("write batch: next seq: %w", err)
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO batches (id, backend, seq, pass)
		VALUES (:id, :backend, :seq, :pass)
	`, b); err != nil {
		return Batch{}, nil, fmt.Errorf("write batch: %w", err)
	}

	stored := make([]Run, 0, len(runs))
	for _, r := range runs {
		r.Batch = b.ID
		if err := writeRun(ctx, tx, &r); err != nil {
			return Batch{}, nil, fmt.Errorf("write batch: %w", err)
		}
		stored = append(stored, r)
	}

	if err := tx.Commit(); err != nil {
		return Batch{}, nil, fmt.Errorf("write batch: commit: %w", err)
	}
	return b, stored, nil
}

// WriteRun appends a single run to an existing batch and sets r.ID.
func (s *Store) WriteRun(ctx context.Context, r *Run) error {
	if err := writeRun(ctx, s.db, r); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

func writeRun(ctx context.Context, e sqlx.ExtContext, r *Run) error {
	res, err := sqlx.NamedExecContext(ctx, e, insertRun, r)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}
	r.ID = tagid.New[Run](id)
	return nil
}
