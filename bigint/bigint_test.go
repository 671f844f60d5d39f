package bigint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIntRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64, 1 << 40, -(1 << 40)}
	for _, c := range cases {
		got, err := FromInt64(c).Int64()
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestInt64Overflow(t *testing.T) {
	maxI := FromInt64(math.MaxInt64)
	sum := Add(maxI, FromInt64(1))
	_, err := sum.Int64()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAddCommutative(t *testing.T) {
	a, b := FromInt64(123456789), FromInt64(-987654321)
	assert.Equal(t, Add(a, b).String(), Add(b, a).String())
}

func TestAddOpposite(t *testing.T) {
	a := FromInt64(999999)
	zero := Add(a, a.Neg())
	assert.Equal(t, "0", zero.String())
}

func TestSubtractSelf(t *testing.T) {
	a := FromInt64(7)
	assert.Equal(t, "0", Sub(a, a).String())
}

func TestMultiplyIdentities(t *testing.T) {
	a := FromInt64(123456789)
	assert.Equal(t, a.String(), Mul(a, FromInt64(1)).String())
	assert.Equal(t, "0", Mul(a, FromInt64(0)).String())
}

func TestMulLarge(t *testing.T) {
	// 1<<40 * 1<<40 == 1<<80, far beyond int64: Mul must still produce the
	// exact decimal value, and converting it back to int64 must overflow.
	a := FromInt64(1 << 40)
	got := Mul(a, a)
	want := "1208925819614629174706176" // 2^80
	assert.Equal(t, want, got.String())
	_, err := got.Int64()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDivTruncatesTowardZero(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 3},
		{-7, 2, -3},
		{7, -2, -3},
		{-7, -2, 3},
		{0, 5, 0},
	}
	for _, c := range cases {
		got, err := Div(FromInt64(c.a), FromInt64(c.b))
		require.NoError(t, err)
		gi, err := got.Int64()
		require.NoError(t, err)
		assert.Equal(t, c.want, gi)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := Div(FromInt64(1), FromInt64(0))
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Cmp(FromInt64(1), FromInt64(2)))
	assert.Equal(t, 1, Cmp(FromInt64(2), FromInt64(1)))
	assert.Equal(t, 0, Cmp(FromInt64(5), FromInt64(5)))
	assert.Equal(t, -1, Cmp(FromInt64(-1), FromInt64(1)))
}

func TestStringRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64}
	for _, c := range cases {
		s := FromInt64(c).String()
		parsed := fromDecimalString(t, s)
		got, err := parsed.Int64()
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

// fromDecimalString parses a decimal string produced by String back into an
// Int using repeated multiply-by-ten-and-add, the inverse of the
// divide-by-ten algorithm String uses.
func fromDecimalString(t *testing.T, s string) *Int {
	t.Helper()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	acc := FromInt64(0)
	ten := FromInt64(10)
	for _, ch := range s {
		require.True(t, ch >= '0' && ch <= '9')
		acc = Add(Mul(acc, ten), FromInt64(int64(ch-'0')))
	}
	if neg {
		acc = acc.Neg()
	}
	return acc
}

func TestCheckDetectsViolations(t *testing.T) {
	assert.NoError(t, FromInt64(0).Check())
	assert.NoError(t, FromInt64(12345).Check())

	bad := &Int{sign: 2, limbs: []uint32{1}}
	assert.ErrorIs(t, bad.Check(), ErrInvalidSize)

	bad = &Int{sign: 1, limbs: []uint32{1 << 31}}
	assert.ErrorIs(t, bad.Check(), ErrInvalidDigits)

	bad = &Int{sign: 1, limbs: []uint32{5, 0}}
	assert.ErrorIs(t, bad.Check(), ErrLeadingZeros)
}

func TestCopyIsIndependent(t *testing.T) {
	a := FromInt64(123)
	b := a.Copy()
	b.limbs[0]++
	assert.NotEqual(t, a.String(), b.String())
}
