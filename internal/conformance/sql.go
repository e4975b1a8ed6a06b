package conformance

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/dialect"
)

type sampleRow[R tagid.Repr] struct {
	ID tagid.ID[subject, R] `db:"id"`
}

// CheckSQL stores sample in a temporary table typed by d and reads it back.
// The caller owns tx and is expected to roll it back.
//
// When d has no column type for R the check returns ErrSkipped, unless the
// ID and the bare value disagree about whether they can be bound.
func CheckSQL[R tagid.Repr](ctx context.Context, tx *sqlx.Tx, d *dialect.Dialect, sample R) error {
	kind := dialect.KindOf[R]()
	id := tagid.New[subject](sample)

	col, err := d.ColumnType(kind)
	if errors.Is(err, dialect.ErrUnsupported) {
		_, idErr := id.Value()
		_, bareErr := driver.DefaultParameterConverter.ConvertValue(sample)
		if (idErr == nil) != (bareErr == nil) {
			return fmt.Errorf("bind mismatch: id %v, bare %v", idErr, bareErr)
		}
		return fmt.Errorf("%w: %w", ErrSkipped, err)
	}
	if err != nil {
		return err
	}

	table := "tagid_check_" + kind.String()
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TEMPORARY TABLE IF NOT EXISTS %s (id %s NOT NULL)", table, col)); err != nil {
		return fmt.Errorf("create check table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear check table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO "+table+" (id) VALUES (?)"), id); err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	rows, err := tx.QueryxContext(ctx, tx.Rebind("SELECT id FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return fmt.Errorf("column types: %w", err)
	}
	if name := types[0].DatabaseTypeName(); !d.Compatible(kind, name) {
		return fmt.Errorf("column type %s not compatible with %s on %s", name, kind, d.Name())
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("select: %w", err)
		}
		return fmt.Errorf("select: check row not found by id")
	}
	var got sampleRow[R]
	if err := rows.StructScan(&got); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return sameID(id, got.ID)
}
