package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/yaml.v3"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/cueid"
	"github.com/roach88/tagid/dialect"
)

// arg tags identifiers taken from the command line.
type arg struct{}

// reprOps binds the generic command bodies to one representation.
type reprOps struct {
	encode func(ctx *cue.Context, text string) (Encoding, error)
	fake   func(f *gofakeit.Faker, n int) (values any, lines []string, err error)
}

var reprs = map[dialect.Kind]reprOps{
	dialect.Int8:    opsFor[int8](),
	dialect.Int16:   opsFor[int16](),
	dialect.Int32:   opsFor[int32](),
	dialect.Int64:   opsFor[int64](),
	dialect.Int128:  opsFor[tagid.Int128](),
	dialect.Uint8:   opsFor[uint8](),
	dialect.Uint16:  opsFor[uint16](),
	dialect.Uint32:  opsFor[uint32](),
	dialect.Uint64:  opsFor[uint64](),
	dialect.Uint128: opsFor[tagid.Uint128](),
	dialect.Float32: opsFor[float32](),
	dialect.Float64: opsFor[float64](),
	dialect.String:  opsFor[string](),
}

func opsFor[R tagid.Repr]() reprOps {
	return reprOps{encode: encodeAs[R], fake: fakeAs[R]}
}

// lookupRepr resolves a representation name such as "int64".
func lookupRepr(name string) (dialect.Kind, reprOps, error) {
	k, err := dialect.ParseKind(name)
	if err != nil {
		return dialect.Invalid, reprOps{}, err
	}
	return k, reprs[k], nil
}

// Encoding is one value rendered through every serialization bridge.
type Encoding struct {
	Repr string `json:"repr"`
	Text string `json:"text"`
	JSON string `json:"json"`
	YAML string `json:"yaml"`
	CUE  string `json:"cue"`
}

func (e Encoding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "repr  %s\n", e.Repr)
	fmt.Fprintf(&b, "text  %s\n", e.Text)
	fmt.Fprintf(&b, "json  %s\n", e.JSON)
	fmt.Fprintf(&b, "yaml  %s\n", e.YAML)
	fmt.Fprintf(&b, "cue   %s", e.CUE)
	return b.String()
}

func encodeAs[R tagid.Repr](ctx *cue.Context, text string) (Encoding, error) {
	var id tagid.ID[arg, R]
	if err := id.UnmarshalText([]byte(text)); err != nil {
		return Encoding{}, err
	}

	enc := Encoding{Repr: dialect.KindOf[R]().String()}
	t, err := id.MarshalText()
	if err != nil {
		return Encoding{}, fmt.Errorf("text: %w", err)
	}
	enc.Text = string(t)

	j, err := json.Marshal(id)
	if err != nil {
		return Encoding{}, fmt.Errorf("json: %w", err)
	}
	enc.JSON = string(j)

	y, err := yaml.Marshal(id)
	if err != nil {
		return Encoding{}, fmt.Errorf("yaml: %w", err)
	}
	enc.YAML = strings.TrimSuffix(string(y), "\n")

	c, err := cueid.Marshal(ctx, id)
	if err != nil {
		return Encoding{}, fmt.Errorf("cue: %w", err)
	}
	enc.CUE = strings.TrimSpace(string(c))
	return enc, nil
}

// fakeAs draws n identifiers. values is the []ID itself for JSON output;
// lines holds the text form of each.
func fakeAs[R tagid.Repr](f *gofakeit.Faker, n int) (any, []string, error) {
	ids := tagid.FakeSlice[arg, R](f, n)
	lines := make([]string, 0, n)
	for _, id := range ids {
		text, err := id.MarshalText()
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, string(text))
	}
	return ids, lines, nil
}
