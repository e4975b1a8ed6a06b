package dialect

import "strings"

// SQLite serves both the cgo driver (mattn/go-sqlite3, "sqlite3") and the
// pure-Go driver (modernc.org/sqlite, "sqlite"). SQLite stores every
// integer as a signed 64-bit value, so uint64 round-trips only below 2^63;
// larger values are rejected when bound, not here.
var SQLite = &Dialect{
	name:    "sqlite",
	drivers: []string{"sqlite3", "sqlite"},
	columns: map[Kind]string{
		Int8:    "INTEGER",
		Int16:   "INTEGER",
		Int32:   "INTEGER",
		Int64:   "INTEGER",
		Uint8:   "INTEGER",
		Uint16:  "INTEGER",
		Uint32:  "INTEGER",
		Uint64:  "INTEGER",
		Float32: "REAL",
		Float64: "REAL",
		String:  "TEXT",
	},
	affinity: sqliteAffinity,
}

// Postgres has no unsigned or single-byte integers. Those kinds are stored
// in the next wider signed column; uint64 has none and is unsupported.
var Postgres = &Dialect{
	name:    "postgres",
	drivers: []string{"pgx", "postgres"},
	columns: map[Kind]string{
		Int8:    "SMALLINT",
		Int16:   "SMALLINT",
		Int32:   "INTEGER",
		Int64:   "BIGINT",
		Uint8:   "SMALLINT",
		Uint16:  "INTEGER",
		Uint32:  "BIGINT",
		Float32: "REAL",
		Float64: "DOUBLE PRECISION",
		String:  "TEXT",
	},
	accepts: map[Kind][]string{
		Int8:    {"INT2", "SMALLINT"},
		Int16:   {"INT2", "SMALLINT"},
		Int32:   {"INT4", "INTEGER", "INT"},
		Int64:   {"INT8", "BIGINT"},
		Uint8:   {"INT2", "SMALLINT"},
		Uint16:  {"INT4", "INTEGER", "INT"},
		Uint32:  {"INT8", "BIGINT"},
		Float32: {"FLOAT4", "REAL"},
		Float64: {"FLOAT8", "DOUBLE PRECISION"},
		String:  {"TEXT", "VARCHAR", "BPCHAR", "NAME", "CHARACTER VARYING"},
	},
}

// MySQL has a native column for every fixed-width kind. The driver reports
// unsigned columns with an "UNSIGNED " prefix.
var MySQL = &Dialect{
	name:    "mysql",
	drivers: []string{"mysql"},
	columns: map[Kind]string{
		Int8:    "TINYINT",
		Int16:   "SMALLINT",
		Int32:   "INT",
		Int64:   "BIGINT",
		Uint8:   "TINYINT UNSIGNED",
		Uint16:  "SMALLINT UNSIGNED",
		Uint32:  "INT UNSIGNED",
		Uint64:  "BIGINT UNSIGNED",
		Float32: "FLOAT",
		Float64: "DOUBLE",
		String:  "VARCHAR(255)",
	},
	accepts: map[Kind][]string{
		Int8:    {"TINYINT"},
		Int16:   {"SMALLINT"},
		Int32:   {"INT", "INTEGER"},
		Int64:   {"BIGINT"},
		Uint8:   {"UNSIGNED TINYINT", "TINYINT UNSIGNED"},
		Uint16:  {"UNSIGNED SMALLINT", "SMALLINT UNSIGNED"},
		Uint32:  {"UNSIGNED INT", "INT UNSIGNED"},
		Uint64:  {"UNSIGNED BIGINT", "BIGINT UNSIGNED"},
		Float32: {"FLOAT"},
		Float64: {"DOUBLE", "DOUBLE PRECISION", "REAL"},
		String:  {"VARCHAR", "CHAR", "TEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT"},
	},
}

type affinity uint8

const (
	affinityBlob affinity = iota
	affinityInteger
	affinityText
	affinityReal
	affinityNumeric
)

// sqliteAffinity applies SQLite's column affinity rules to a declared type.
func sqliteAffinity(t string) affinity {
	switch {
	case strings.Contains(t, "INT"):
		return affinityInteger
	case strings.Contains(t, "CHAR"), strings.Contains(t, "CLOB"), strings.Contains(t, "TEXT"):
		return affinityText
	case t == "", strings.Contains(t, "BLOB"):
		return affinityBlob
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"):
		return affinityReal
	}
	return affinityNumeric
}

func compatibleAffinity(k Kind, a affinity) bool {
	switch k {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return a == affinityInteger || a == affinityNumeric
	case Float32, Float64:
		return a == affinityReal || a == affinityNumeric || a == affinityInteger
	case String:
		return a == affinityText
	}
	return false
}
