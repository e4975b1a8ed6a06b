package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.db")

			s, err := Open(driver, path)
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer s.Close()

			if _, err := os.Stat(path); os.IsNotExist(err) {
				t.Error("database file was not created")
			}
		})
	}
}

func TestOpen_DefaultDriver(t *testing.T) {
	s, err := Open("", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if got := s.DB().DriverName(); got != DefaultDriver {
		t.Errorf("DriverName() = %q, want %q", got, DefaultDriver)
	}
}

func TestOpen_RejectsOtherDrivers(t *testing.T) {
	if _, err := Open("pgx", "postgres://localhost/db"); err == nil {
		t.Error("expected error for non-SQLite driver, got nil")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(DefaultDriver, path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(DefaultDriver, path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	for _, table := range []string{"batches", "runs"} {
		var name string
		err := s.db.Get(&name, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table)
		if err != nil {
			t.Errorf("table %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open(DefaultDriver, "/nonexistent/dir/test.db")
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestPragmas(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := createTestStore(t, driver)

			pragmas := []struct{ name, want string }{
				{"journal_mode", "wal"},
				{"synchronous", "1"}, // NORMAL
				{"busy_timeout", "5000"},
				{"foreign_keys", "1"},
				{"user_version", "1"},
			}
			for _, p := range pragmas {
				if err := s.verifyPragma(p.name, p.want); err != nil {
					t.Error(err)
				}
			}
		})
	}
}

func TestMigration_AddsRunIndex(t *testing.T) {
	s := createTestStore(t, DefaultDriver)

	var name string
	err := s.db.Get(&name, "SELECT name FROM sqlite_master WHERE type='index' AND name='idx_runs_batch'")
	if err != nil {
		t.Fatalf("index idx_runs_batch not found: %v", err)
	}
}

func TestMigration_UpgradesVersionZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(DefaultDriver, path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	s.db.MustExec("DROP INDEX idx_runs_batch")
	s.db.MustExec("PRAGMA user_version = 0")
	s.Close()

	s, err = Open(DefaultDriver, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	if err := s.verifyPragma("user_version", "1"); err != nil {
		t.Error(err)
	}
	var name string
	if err := s.db.Get(&name, "SELECT name FROM sqlite_master WHERE type='index' AND name='idx_runs_batch'"); err != nil {
		t.Errorf("index not recreated: %v", err)
	}
}
