package tagid

import "hash/maphash"

// Repr is the closed set of representation types an ID can wrap.
//
// int and uint are left out on purpose: their width depends on the platform.
type Repr interface {
	int8 | int16 | int32 | int64 | Int128 |
		uint8 | uint16 | uint32 | uint64 | Uint128 |
		float32 | float64 |
		string
}

// phantom carries Tag at the type level only. It is an empty struct for every
// Tag, so it occupies no memory and has alignment 1.
type phantom[Tag any] struct{}

// ID is a value of type R that identifies an entity of type Tag.
//
// IDs with different tags are distinct, non-convertible types. Two IDs with
// the same tag are equal (==) iff their values are equal.
type ID[Tag any, R Repr] struct {
	// The marker must stay first. A trailing zero-size field would be padded.
	_ phantom[Tag]
	v R
}

// New wraps v without checking it. The caller is responsible for v being a
// valid identifier for Tag.
func New[Tag any, R Repr](v R) ID[Tag, R] {
	return ID[Tag, R]{v: v}
}

// From converts a raw value into an ID. It is equivalent to New and exists to
// be passed around as a func(R) ID[Tag, R].
func From[Tag any, R Repr](v R) ID[Tag, R] {
	return New[Tag](v)
}

// Inner returns the wrapped value.
func (id ID[Tag, R]) Inner() R {
	return id.v
}

// Equal reports whether both IDs wrap equal values.
func (id ID[Tag, R]) Equal(other ID[Tag, R]) bool {
	return id.v == other.v
}

// Hash returns the same hash as maphash.Comparable(seed, id.Inner()).
func (id ID[Tag, R]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, id.v)
}
