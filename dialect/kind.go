package dialect

import (
	"fmt"

	"github.com/roach88/tagid"
)

// Kind identifies one of the closed set of tagid representations.
type Kind uint8

const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int128
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	Float32
	Float64
	String
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int128:  "int128",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint128: "uint128",
	Float32: "float32",
	Float64: "float64",
	String:  "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := Int8; k <= String; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a representation name ("int64", "string", ...) to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := Int8; k <= String; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("unknown representation %q", name)
}

// KindOf reports the Kind of the representation type R.
func KindOf[R tagid.Repr]() Kind {
	var r R
	switch any(r).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case tagid.Int128:
		return Int128
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case tagid.Uint128:
		return Uint128
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	}
	return Invalid
}
