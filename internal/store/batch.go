package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/roach88/tagid"
)

// BatchIDGenerator produces identifiers for new batches.
type BatchIDGenerator interface {
	Generate() tagid.ID[Batch, string]
}

// UUIDv7Generator generates time-sortable UUIDv7 batch ids.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 in its hyphenated string form.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() tagid.ID[Batch, string] {
	return tagid.New[Batch](uuid.Must(uuid.NewV7()).String())
}

// FixedGenerator returns predetermined batch ids for testing.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id.
//
// Panics if all ids have been consumed. This is a fail-fast approach
// for tests that use more batches than expected.
func (g *FixedGenerator) Generate() tagid.ID[Batch, string] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all batch ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return tagid.New[Batch](id)
}
