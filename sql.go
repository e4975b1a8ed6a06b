package tagid

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
)

var (
	_ driver.Valuer = ID[struct{}, int64]{}
	_ sql.Scanner   = (*ID[struct{}, int64])(nil)
)

// Value binds the wrapped value as database/sql binds a bare R.
//
// A uint64 with the high bit set is returned as is, so drivers that accept
// a bare one (mysql) accept the ID too; drivers that do not still reject it
// as a non-Value type. Int128 and Uint128 are rejected: no backend stores
// them natively. The value is never copied; strings are immutable.
func (id ID[Tag, R]) Value() (driver.Value, error) {
	if u, ok := any(id.v).(uint64); ok && u >= 1<<63 {
		return u, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(id.v)
}

// Scan reads a column with the standard database/sql conversion into R.
// Conversion errors are returned unchanged. NULL is rejected as it is for a
// bare R; scan into sql.Null[ID[Tag, R]] for nullable columns.
func (id *ID[Tag, R]) Scan(src any) error {
	var n sql.Null[R]
	if err := n.Scan(src); err != nil {
		return err
	}
	if !n.Valid {
		return fmt.Errorf("converting NULL to %T is unsupported", id.v)
	}
	*id = New[Tag](n.V)
	return nil
}
