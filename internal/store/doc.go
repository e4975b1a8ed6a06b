// Package store keeps a SQLite log of conformance runs.
//
// A batch is one invocation of the conformance runner against one backend.
// Each bridge check within it is a run. Batches are identified by UUIDv7
// text and ordered by a logical sequence number assigned on insert; runs
// are identified by their row id.
//
// Both record types carry tagged identifiers, so the store itself exercises
// the database/sql bridge of tagid.ID for int64 and string columns.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Both SQLite drivers are supported: "sqlite3" (mattn/go-sqlite3, cgo) and
// "sqlite" (modernc.org/sqlite, pure Go).
package store
