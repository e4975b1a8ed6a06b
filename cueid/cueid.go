// Package cueid bridges tagid.ID values to and from CUE.
//
// An ID encodes as the bare CUE number or string of its representation.
// Decoding unifies the input with the predeclared CUE type of the
// representation (int8, uint64, int128, float32, string, ...) so out of
// range and wrongly typed inputs are reported by CUE itself.
//
// IDs nested in Go structs need no help from this package: CUE's own
// Encode and Decode go through the JSON bridge of tagid.ID.
package cueid

import (
	"fmt"
	"math"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/format"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/dialect"
)

// Encode converts id into a concrete CUE value. Values CUE cannot represent
// (NaN and infinities) yield a value whose Err is set.
func Encode[Tag any, R tagid.Repr](ctx *cue.Context, id tagid.ID[Tag, R]) cue.Value {
	switch v := any(id.Inner()).(type) {
	case tagid.Int128:
		return ctx.Encode(v.Big())
	case tagid.Uint128:
		return ctx.Encode(v.Big())
	case float32:
		if !finite(float64(v)) {
			return ctx.Encode(fmt.Errorf("cannot encode %v as a CUE number", v))
		}
		return ctx.Encode(v)
	case float64:
		if !finite(v) {
			return ctx.Encode(fmt.Errorf("cannot encode %v as a CUE number", v))
		}
		return ctx.Encode(v)
	default:
		return ctx.Encode(v)
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Schema returns the CUE constraint every encoded R satisfies.
func Schema[R tagid.Repr](ctx *cue.Context) cue.Value {
	return ctx.CompileString(dialect.KindOf[R]().String())
}

// Decode extracts an ID from a concrete CUE value.
func Decode[Tag any, R tagid.Repr](v cue.Value) (tagid.ID[Tag, R], error) {
	var zero tagid.ID[Tag, R]

	checked := v.Unify(Schema[R](v.Context()))
	if err := checked.Validate(cue.Concrete(true)); err != nil {
		return zero, err
	}

	var r R
	switch p := any(&r).(type) {
	case *tagid.Int128:
		b, err := checked.Int(nil)
		if err != nil {
			return zero, err
		}
		if *p, err = tagid.Int128FromBig(b); err != nil {
			return zero, err
		}
	case *tagid.Uint128:
		b, err := checked.Int(nil)
		if err != nil {
			return zero, err
		}
		if *p, err = tagid.Uint128FromBig(b); err != nil {
			return zero, err
		}
	case *float32:
		// Decode reports the narrowing of a decimal to float32 as rounding;
		// parse the number text at 32 bits instead. The schema bounds it.
		b, err := checked.MarshalJSON()
		if err != nil {
			return zero, err
		}
		f, err := strconv.ParseFloat(string(b), 32)
		if err != nil {
			return zero, err
		}
		*p = float32(f)
	default:
		if err := checked.Decode(&r); err != nil {
			return zero, err
		}
	}
	return tagid.New[Tag](r), nil
}

// Marshal renders id as CUE source text.
func Marshal[Tag any, R tagid.Repr](ctx *cue.Context, id tagid.ID[Tag, R]) ([]byte, error) {
	v := Encode(ctx, id)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return format.Node(v.Syntax())
}

// Unmarshal compiles src and decodes the result.
func Unmarshal[Tag any, R tagid.Repr](ctx *cue.Context, src []byte) (tagid.ID[Tag, R], error) {
	v := ctx.CompileBytes(src)
	if err := v.Err(); err != nil {
		return tagid.ID[Tag, R]{}, err
	}
	return Decode[Tag, R](v)
}
