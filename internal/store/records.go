package store

import "github.com/roach88/tagid"

// Batch is one conformance run against one backend.
type Batch struct {
	ID      tagid.ID[Batch, string] `db:"id" json:"id"`
	Backend string                  `db:"backend" json:"backend"`
	// Seq orders batches by insertion. Assigned by WriteBatch.
	Seq  int64 `db:"seq" json:"seq"`
	Pass bool  `db:"pass" json:"pass"`
}

// Run is the outcome of one bridge check within a batch.
type Run struct {
	// ID is assigned by the database on insert.
	ID      tagid.ID[Run, int64]    `db:"id" json:"id"`
	Batch   tagid.ID[Batch, string] `db:"batch_id" json:"batch_id"`
	Backend string                  `db:"backend" json:"backend"`
	Repr    string                  `db:"repr" json:"repr"`
	Bridge  string                  `db:"bridge" json:"bridge"`
	OK      bool                    `db:"ok" json:"ok"`
	Skipped bool                    `db:"skipped" json:"skipped,omitempty"`
	Detail  string                  `db:"detail" json:"detail,omitempty"`
}
