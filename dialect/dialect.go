package dialect

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/roach88/tagid"
)

// ErrUnsupported is returned when a backend has no column type for a
// representation.
var ErrUnsupported = errors.New("unsupported representation")

// Dialect is the per-backend type descriptor.
type Dialect struct {
	name    string
	drivers []string
	columns map[Kind]string
	// accepts lists the normalized type names a column may report and still
	// decode into the Kind. Kinds without an entry fall back to affinity.
	accepts  map[Kind][]string
	affinity func(dbType string) affinity
}

// Name returns the backend name ("sqlite", "postgres", "mysql").
func (d *Dialect) Name() string { return d.name }

// Drivers returns the database/sql driver names served by d.
func (d *Dialect) Drivers() []string { return slices.Clone(d.drivers) }

// Supports reports whether k can be stored on this backend at all.
func (d *Dialect) Supports(k Kind) bool {
	_, ok := d.columns[k]
	return ok
}

// ColumnType returns the column type to declare for k.
func (d *Dialect) ColumnType(k Kind) (string, error) {
	col, ok := d.columns[k]
	if !ok {
		return "", fmt.Errorf("%w: %s on %s", ErrUnsupported, k, d.name)
	}
	return col, nil
}

// Compatible reports whether a column reporting dbType can be decoded into
// k. Type names are compared case-insensitively with any length or
// precision suffix removed, so "varchar(64)" matches "VARCHAR".
func (d *Dialect) Compatible(k Kind, dbType string) bool {
	if !d.Supports(k) {
		return false
	}
	t := normalize(dbType)
	if names, ok := d.accepts[k]; ok {
		return slices.Contains(names, t)
	}
	if d.affinity != nil {
		return compatibleAffinity(k, d.affinity(t))
	}
	return false
}

var sizeSuffix = regexp.MustCompile(`\s*\([^)]*\)`)

func normalize(dbType string) string {
	t := sizeSuffix.ReplaceAllString(dbType, "")
	return strings.Join(strings.Fields(strings.ToUpper(t)), " ")
}

// ColumnType returns d's column type for the representation R.
func ColumnType[R tagid.Repr](d *Dialect) (string, error) {
	return d.ColumnType(KindOf[R]())
}

// Compatible reports whether a column reporting dbType decodes into R.
func Compatible[R tagid.Repr](d *Dialect, dbType string) bool {
	return d.Compatible(KindOf[R](), dbType)
}

var dialects = []*Dialect{SQLite, Postgres, MySQL}

// ForDriver returns the Dialect for a registered database/sql driver name.
func ForDriver(driverName string) (*Dialect, error) {
	for _, d := range dialects {
		if slices.Contains(d.drivers, driverName) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no dialect for driver %q", driverName)
}

// ByName returns the Dialect whose Name is name.
func ByName(name string) (*Dialect, error) {
	for _, d := range dialects {
		if d.name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown dialect %q", name)
}
