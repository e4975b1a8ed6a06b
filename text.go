package tagid

import (
	"fmt"
	"strconv"
)

// MarshalText encodes integers in base 10, floats in the shortest form that
// round-trips ('g', -1) and strings verbatim.
func (id ID[Tag, R]) MarshalText() ([]byte, error) {
	switch v := any(id.v).(type) {
	case int8:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint64:
		return strconv.AppendUint(nil, v, 10), nil
	case Int128:
		return v.MarshalText()
	case Uint128:
		return v.MarshalText()
	case float32:
		return strconv.AppendFloat(nil, float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
	case string:
		return []byte(v), nil
	}
	// Unreachable: Repr is a closed type set.
	return nil, fmt.Errorf("tagid: no text encoding for %T", id.v)
}

// UnmarshalText parses text with the strconv parser matching R's width.
// Parse failures are returned as *strconv.NumError.
func (id *ID[Tag, R]) UnmarshalText(text []byte) error {
	v, err := parseText[R](string(text))
	if err != nil {
		return err
	}
	*id = New[Tag](v)
	return nil
}

func parseText[R Repr](s string) (R, error) {
	var r R
	var err error
	switch p := any(&r).(type) {
	case *int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *Int128:
		*p, err = ParseInt128(s)
	case *Uint128:
		*p, err = ParseUint128(s)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case *string:
		*p = s
	}
	if err != nil {
		var zero R
		return zero, err
	}
	return r, nil
}
