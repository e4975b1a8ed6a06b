// Package testutil holds database helpers shared by tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// SQLiteDrivers lists the registered SQLite drivers: the cgo driver and the
// pure-Go one. Tests that touch SQLite run once per entry.
var SQLiteDrivers = []string{"sqlite3", "sqlite"}

// OpenSQLite connects to a fresh database file in a per-test temp dir. The
// connection is closed on cleanup.
func OpenSQLite(t testing.TB, driverName string) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect(driverName, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect %s: %v", driverName, err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
