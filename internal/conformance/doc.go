// Package conformance exercises every tagid bridge for every supported
// representation and reports what it found.
//
// Each check encodes a sample ID, compares the wire form with what the bare
// representation produces, and decodes it back. The SQL check runs against
// a live connection: it declares a temporary check table using the
// backend's dialect, binds the ID, reads it back through sqlx and verifies
// the driver-reported column type. Everything the SQL check touches is
// rolled back.
//
// Representations a backend cannot store are reported as skipped, after
// confirming that the ID refuses to bind exactly like the bare value does.
package conformance
