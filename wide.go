package tagid

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	bigTwo64  = new(big.Int).Lsh(big.NewInt(1), 64)
	bigTwo128 = new(big.Int).Lsh(big.NewInt(1), 128)
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	maxUint64 = new(big.Int).SetUint64(^uint64(0))
)

// Int128 is a signed 128-bit integer in two's complement.
// The zero value is 0. Int128 values are comparable.
type Int128 struct {
	hi int64
	lo uint64
}

// Uint128 is an unsigned 128-bit integer.
// The zero value is 0. Uint128 values are comparable.
type Uint128 struct {
	hi uint64
	lo uint64
}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// Uint128From64 zero-extends v.
func Uint128From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// Int128FromWords assembles a value from its high and low 64-bit words.
func Int128FromWords(hi int64, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Uint128FromWords assembles a value from its high and low 64-bit words.
func Uint128FromWords(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// Words returns the high and low 64-bit words of x.
func (x Int128) Words() (hi int64, lo uint64) { return x.hi, x.lo }

// Words returns the high and low 64-bit words of x.
func (x Uint128) Words() (hi, lo uint64) { return x.hi, x.lo }

// Int128FromBig converts b, failing if it is out of range.
func Int128FromBig(b *big.Int) (Int128, error) {
	if b.Cmp(minInt128) < 0 || b.Cmp(maxInt128) > 0 {
		return Int128{}, fmt.Errorf("tagid: %s overflows int128", b)
	}
	u := new(big.Int).Set(b)
	if u.Sign() < 0 {
		u.Add(u, bigTwo128)
	}
	lo := new(big.Int).And(u, maxUint64).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()
	return Int128{hi: int64(hi), lo: lo}, nil
}

// Uint128FromBig converts b, failing if it is negative or out of range.
func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 || b.Cmp(bigTwo128) >= 0 {
		return Uint128{}, fmt.Errorf("tagid: %s overflows uint128", b)
	}
	lo := new(big.Int).And(b, maxUint64).Uint64()
	hi := new(big.Int).Rsh(b, 64).Uint64()
	return Uint128{hi: hi, lo: lo}, nil
}

// ParseInt128 parses a base-10 signed integer.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, &strconv.NumError{Func: "ParseInt128", Num: s, Err: strconv.ErrSyntax}
	}
	x, err := Int128FromBig(b)
	if err != nil {
		return Int128{}, &strconv.NumError{Func: "ParseInt128", Num: s, Err: strconv.ErrRange}
	}
	return x, nil
}

// ParseUint128 parses a base-10 unsigned integer.
func ParseUint128(s string) (Uint128, error) {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		return Uint128{}, &strconv.NumError{Func: "ParseUint128", Num: s, Err: strconv.ErrSyntax}
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, &strconv.NumError{Func: "ParseUint128", Num: s, Err: strconv.ErrSyntax}
	}
	x, err := Uint128FromBig(b)
	if err != nil {
		return Uint128{}, &strconv.NumError{Func: "ParseUint128", Num: s, Err: strconv.ErrRange}
	}
	return x, nil
}

// Big returns x as a new big.Int.
func (x Int128) Big() *big.Int {
	b := new(big.Int).SetInt64(x.hi)
	b.Mul(b, bigTwo64)
	return b.Add(b, new(big.Int).SetUint64(x.lo))
}

// Big returns x as a new big.Int.
func (x Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(x.hi)
	b.Mul(b, bigTwo64)
	return b.Add(b, new(big.Int).SetUint64(x.lo))
}

func (x Int128) String() string  { return x.Big().String() }
func (x Uint128) String() string { return x.Big().String() }

// Format supports the integer verbs of big.Int (b, o, O, d, x, X, v, s).
func (x Int128) Format(f fmt.State, verb rune) { x.Big().Format(f, verb) }

// Format supports the integer verbs of big.Int (b, o, O, d, x, X, v, s).
func (x Uint128) Format(f fmt.State, verb rune) { x.Big().Format(f, verb) }

// MarshalJSON encodes x as a bare JSON number.
func (x Int128) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// MarshalJSON encodes x as a bare JSON number.
func (x Uint128) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalJSON accepts a JSON integer. null leaves x unchanged.
func (x *Int128) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if !isJSONNumber(s) {
		return &json.UnmarshalTypeError{Value: jsonKind(s), Type: reflect.TypeFor[Int128]()}
	}
	v, err := ParseInt128(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + s, Type: reflect.TypeFor[Int128]()}
	}
	*x = v
	return nil
}

// UnmarshalJSON accepts a JSON integer. null leaves x unchanged.
func (x *Uint128) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if !isJSONNumber(s) {
		return &json.UnmarshalTypeError{Value: jsonKind(s), Type: reflect.TypeFor[Uint128]()}
	}
	v, err := ParseUint128(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + s, Type: reflect.TypeFor[Uint128]()}
	}
	*x = v
	return nil
}

func (x Int128) MarshalText() ([]byte, error)  { return []byte(x.String()), nil }
func (x Uint128) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

func (x *Int128) UnmarshalText(text []byte) error {
	v, err := ParseInt128(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x *Uint128) UnmarshalText(text []byte) error {
	v, err := ParseUint128(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalYAML encodes x as a plain decimal scalar with no explicit tag.
func (x Int128) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: x.String()}, nil
}

// MarshalYAML encodes x as a plain decimal scalar with no explicit tag.
func (x Uint128) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: x.String()}, nil
}

// UnmarshalYAML accepts an integer scalar in any base yaml.v3 accepts for
// int64 (0x, 0o, 0b prefixes and _ separators). yaml.v3 resolves integers
// beyond 64 bits as !!float, so both tags are let through.
func (x *Int128) UnmarshalYAML(node *yaml.Node) error {
	b, ok := yamlInt(node)
	if !ok {
		return yamlTypeError(node, "tagid.Int128")
	}
	v, err := Int128FromBig(b)
	if err != nil {
		return yamlTypeError(node, "tagid.Int128")
	}
	*x = v
	return nil
}

// UnmarshalYAML accepts an integer scalar, see Int128.UnmarshalYAML.
func (x *Uint128) UnmarshalYAML(node *yaml.Node) error {
	b, ok := yamlInt(node)
	if !ok {
		return yamlTypeError(node, "tagid.Uint128")
	}
	v, err := Uint128FromBig(b)
	if err != nil {
		return yamlTypeError(node, "tagid.Uint128")
	}
	*x = v
	return nil
}

func yamlInt(node *yaml.Node) (*big.Int, bool) {
	if !isYAMLNumber(node) {
		return nil, false
	}
	return new(big.Int).SetString(strings.ReplaceAll(node.Value, "_", ""), 0)
}

func isJSONNumber(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// jsonKind names a JSON token the way encoding/json does in type errors.
func jsonKind(s string) string {
	if s == "" {
		return "empty"
	}
	switch s[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case '[':
		return "array"
	case '{':
		return "object"
	}
	return "number " + s
}

func isYAMLNumber(node *yaml.Node) bool {
	if node.Kind != yaml.ScalarNode {
		return false
	}
	tag := node.ShortTag()
	return tag == "!!int" || tag == "!!float"
}

func yamlTypeError(node *yaml.Node, into string) error {
	return &yaml.TypeError{Errors: []string{
		fmt.Sprintf("line %d: cannot unmarshal %s `%s` into %s", node.Line, node.ShortTag(), node.Value, into),
	}}
}
