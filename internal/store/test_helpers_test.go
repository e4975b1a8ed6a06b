package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/tagid"
)

var drivers = []string{"sqlite3", "sqlite"}

// createTestStore creates a new temp-file store for testing.
func createTestStore(t *testing.T, driverName string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(driverName, path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestBatch creates a batch with minimal required fields.
func createTestBatch(id, backend string, pass bool) Batch {
	return Batch{
		ID:      tagid.New[Batch](id),
		Backend: backend,
		Pass:    pass,
	}
}

// createTestRun creates a passing run for a repr/bridge pair.
func createTestRun(repr, bridge string) Run {
	return Run{
		Backend: "sqlite",
		Repr:    repr,
		Bridge:  bridge,
		OK:      true,
	}
}
