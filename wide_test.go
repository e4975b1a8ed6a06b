package tagid

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInt128(t *testing.T, s string) Int128 {
	t.Helper()
	x, err := ParseInt128(s)
	require.NoError(t, err)
	return x
}

func mustUint128(t *testing.T, s string) Uint128 {
	t.Helper()
	x, err := ParseUint128(s)
	require.NoError(t, err)
	return x
}

func TestInt128From64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		x := Int128From64(v)
		assert.Zero(t, big.NewInt(v).Cmp(x.Big()))
		assert.Equal(t, strconv.FormatInt(v, 10), x.String())
	}
}

func TestUint128From64(t *testing.T) {
	x := Uint128From64(math.MaxUint64)
	assert.Equal(t, strconv.FormatUint(math.MaxUint64, 10), x.String())
}

func TestInt128BigRoundTrip(t *testing.T) {
	inputs := []string{
		"0",
		"-1",
		"18446744073709551616",
		"-18446744073709551616",
		"170141183460469231731687303715884105727",
		"-170141183460469231731687303715884105728",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			x := mustInt128(t, in)
			assert.Equal(t, in, x.String())

			b, _ := new(big.Int).SetString(in, 10)
			y, err := Int128FromBig(b)
			require.NoError(t, err)
			assert.Equal(t, x, y)
		})
	}
}

func TestInt128CanonicalForm(t *testing.T) {
	// The same number reached two ways must compare equal.
	assert.True(t, Int128From64(-1) == mustInt128(t, "-1"))
	assert.True(t, Int128From64(math.MinInt64) == mustInt128(t, "-9223372036854775808"))
	assert.True(t, Uint128From64(7) == mustUint128(t, "7"))
}

func TestParseInt128Errors(t *testing.T) {
	var numErr *strconv.NumError

	_, err := ParseInt128("170141183460469231731687303715884105728")
	require.ErrorAs(t, err, &numErr)
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseInt128("1.5")
	require.ErrorAs(t, err, &numErr)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ParseInt128("")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParseUint128Errors(t *testing.T) {
	_, err := ParseUint128("340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseUint128("-0")
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ParseUint128("+1")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestFromBigRange(t *testing.T) {
	_, err := Uint128FromBig(big.NewInt(-1))
	assert.Error(t, err)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 127)
	_, err = Int128FromBig(tooBig)
	assert.Error(t, err)

	x, err := Uint128FromBig(tooBig)
	require.NoError(t, err)
	assert.Zero(t, tooBig.Cmp(x.Big()))
}

func TestInt128JSON(t *testing.T) {
	data, err := json.Marshal(mustInt128(t, "-170141183460469231731687303715884105728"))
	require.NoError(t, err)
	assert.Equal(t, "-170141183460469231731687303715884105728", string(data))

	var x Int128
	err = json.Unmarshal([]byte(`"1"`), &x)
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "string", typeErr.Value)
	assert.Equal(t, "tagid.Int128", typeErr.Type.String())

	err = json.Unmarshal([]byte(`1.5`), &x)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "number 1.5", typeErr.Value)

	var u Uint128
	err = json.Unmarshal([]byte(`-1`), &u)
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "tagid.Uint128", typeErr.Type.String())
}

func TestWords(t *testing.T) {
	x := Int128FromWords(-1, math.MaxUint64)
	assert.Equal(t, Int128From64(-1), x)
	hi, lo := x.Words()
	assert.Equal(t, int64(-1), hi)
	assert.Equal(t, uint64(math.MaxUint64), lo)

	u := Uint128FromWords(1, 0)
	assert.Equal(t, "18446744073709551616", u.String())
	uhi, ulo := u.Words()
	assert.Equal(t, uint64(1), uhi)
	assert.Zero(t, ulo)
}
