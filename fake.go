package tagid

import (
	"encoding/binary"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// FakeSource draws the primitives a fake ID is built from.
// *gofakeit.Faker satisfies it.
type FakeSource interface {
	Int8() int8
	Int16() int16
	Int32() int32
	Int64() int64
	Uint8() uint8
	Uint16() uint16
	Uint32() uint32
	Uint64() uint64
	Float32() float32
	Float64() float64
}

var _ FakeSource = (*gofakeit.Faker)(nil)

// Fake draws a random ID from src for fixtures and tests. The zero value of
// R, and NaN, are never returned. Strings are UUIDv4 text whose bits come
// from src, so a seeded source yields the same IDs every run.
func Fake[Tag any, R Repr](src FakeSource) ID[Tag, R] {
	var zero R
	for {
		r := draw[R](src)
		// r != r only for NaN.
		if r == r && r != zero {
			return New[Tag](r)
		}
	}
}

// FakeSlice draws n IDs from src.
func FakeSlice[Tag any, R Repr](src FakeSource, n int) []ID[Tag, R] {
	out := make([]ID[Tag, R], n)
	for i := range out {
		out[i] = Fake[Tag, R](src)
	}
	return out
}

// Fake implements gofakeit.Fakeable, so Faker.Struct fills ID fields.
func (id *ID[Tag, R]) Fake(f *gofakeit.Faker) (any, error) {
	return Fake[Tag, R](f), nil
}

func draw[R Repr](src FakeSource) R {
	var r R
	switch p := any(&r).(type) {
	case *int8:
		*p = src.Int8()
	case *int16:
		*p = src.Int16()
	case *int32:
		*p = src.Int32()
	case *int64:
		*p = src.Int64()
	case *Int128:
		*p = Int128FromWords(int64(src.Uint64()), src.Uint64())
	case *uint8:
		*p = src.Uint8()
	case *uint16:
		*p = src.Uint16()
	case *uint32:
		*p = src.Uint32()
	case *uint64:
		*p = src.Uint64()
	case *Uint128:
		*p = Uint128FromWords(src.Uint64(), src.Uint64())
	case *float32:
		*p = src.Float32()
	case *float64:
		*p = src.Float64()
	case *string:
		u, _ := uuid.NewRandomFromReader(sourceReader{src})
		*p = u.String()
	}
	return r
}

// sourceReader adapts a FakeSource to io.Reader. It never fails.
type sourceReader struct{ src FakeSource }

func (r sourceReader) Read(b []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(b); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.src.Uint64())
		copy(b[i:], buf[:])
	}
	return len(b), nil
}
