package conformance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/format"
	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/yaml.v3"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/cueid"
)

// ErrSkipped marks a check that does not apply to the representation.
var ErrSkipped = errors.New("skipped")

// subject tags every ID the checks build.
type subject struct{}

// CheckJSON verifies that an ID encodes to the bare value's JSON and decodes
// back to itself.
func CheckJSON[R tagid.Repr](sample R) error {
	id := tagid.New[subject](sample)
	got, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	want, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("marshal bare: %w", err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("wire mismatch: id %s, bare %s", got, want)
	}

	var back tagid.ID[subject, R]
	if err := json.Unmarshal(got, &back); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return sameID(id, back)
}

// CheckYAML is CheckJSON for YAML.
func CheckYAML[R tagid.Repr](sample R) error {
	id := tagid.New[subject](sample)
	got, err := yaml.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	want, err := yaml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("marshal bare: %w", err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("wire mismatch: id %q, bare %q", got, want)
	}

	var back tagid.ID[subject, R]
	if err := yaml.Unmarshal(got, &back); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return sameID(id, back)
}

// CheckText verifies the text form equals fmt's rendering of the bare value
// and parses back.
func CheckText[R tagid.Repr](sample R) error {
	id := tagid.New[subject](sample)
	got, err := id.MarshalText()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if want := fmt.Sprint(sample); string(got) != want {
		return fmt.Errorf("wire mismatch: id %q, bare %q", got, want)
	}

	var back tagid.ID[subject, R]
	if err := back.UnmarshalText(got); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return sameID(id, back)
}

// CheckCUE verifies the CUE source of an ID equals that of the bare value
// and that both the source and the encoded value decode back.
func CheckCUE[R tagid.Repr](ctx *cue.Context, sample R) error {
	id := tagid.New[subject](sample)
	got, err := cueid.Marshal(ctx, id)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	var bare cue.Value
	switch v := any(sample).(type) {
	case tagid.Int128:
		bare = ctx.Encode(v.Big())
	case tagid.Uint128:
		bare = ctx.Encode(v.Big())
	default:
		bare = ctx.Encode(v)
	}
	want, err := format.Node(bare.Syntax())
	if err != nil {
		return fmt.Errorf("format bare: %w", err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("wire mismatch: id %s, bare %s", got, want)
	}

	back, err := cueid.Unmarshal[subject, R](ctx, got)
	if err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := sameID(id, back); err != nil {
		return err
	}

	decoded, err := cueid.Decode[subject, R](cueid.Encode(ctx, id))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return sameID(id, decoded)
}

// CheckFake draws n IDs twice from sources seeded with seed and verifies the
// draws agree and contain no zero value.
func CheckFake[R tagid.Repr](seed uint64, n int) error {
	a := tagid.FakeSlice[subject, R](gofakeit.New(seed), n)
	b := tagid.FakeSlice[subject, R](gofakeit.New(seed), n)

	var zero tagid.ID[subject, R]
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("draw %d not reproducible: %v != %v", i, a[i], b[i])
		}
		if a[i] == zero {
			return fmt.Errorf("draw %d is the zero value", i)
		}
	}
	return nil
}

func sameID[R tagid.Repr](want, got tagid.ID[subject, R]) error {
	if want != got {
		return fmt.Errorf("round trip: got %v, want %v", got, want)
	}
	return nil
}
