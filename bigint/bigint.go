package bigint

import (
	"math"
	"math/bits"
)

// limbBits is the width of a single digit; one bit is kept spare in the
// 32-bit word for carry propagation during addition (spec.md §9).
const limbBits = 31

// limbMask isolates the 31 value bits of a limb.
const limbMask = (1 << limbBits) - 1

// Int is an arbitrary-precision signed integer.
//
// sign is -1, 0, or +1; limbs holds the magnitude, least significant limb
// first, with no leading zero limb. A zero value has sign 0 and nil limbs.
type Int struct {
	sign  int
	limbs []uint32
}

// FromInt64 builds an Int representing i.
//
// math.MinInt64 is handled by negating as an unsigned magnitude first
// (spec.md §4.7's edge case), avoiding signed overflow on -i.
func FromInt64(i int64) *Int {
	if i == 0 {
		return &Int{}
	}
	sign := 1
	var mag uint64
	if i < 0 {
		sign = -1
		if i == math.MinInt64 {
			mag = uint64(math.MaxInt64) + 1
		} else {
			mag = uint64(-i)
		}
	} else {
		mag = uint64(i)
	}
	return &Int{sign: sign, limbs: limbsFromUint64(mag)}
}

func limbsFromUint64(mag uint64) []uint32 {
	var limbs []uint32
	for mag > 0 {
		limbs = append(limbs, uint32(mag&limbMask))
		mag >>= limbBits
	}
	return limbs
}

// Int64 converts the Int back to a fixed-size integer.
//
// Returns ErrOverflow if the value does not fit in an int64.
func (a *Int) Int64() (int64, error) {
	if a.sign == 0 {
		return 0, nil
	}
	var mag uint64
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if mag > (math.MaxUint64 >> limbBits) {
			return 0, ErrOverflow
		}
		mag = mag<<limbBits | uint64(a.limbs[i])
	}
	if a.sign > 0 {
		if mag > math.MaxInt64 {
			return 0, ErrOverflow
		}
		return int64(mag), nil
	}
	if mag > uint64(math.MaxInt64)+1 {
		return 0, ErrOverflow
	}
	if mag == uint64(math.MaxInt64)+1 {
		return math.MinInt64, nil
	}
	return -int64(mag), nil
}

// Copy returns a new Int with the same value as a.
func (a *Int) Copy() *Int {
	if a.sign == 0 {
		return &Int{}
	}
	limbs := make([]uint32, len(a.limbs))
	copy(limbs, a.limbs)
	return &Int{sign: a.sign, limbs: limbs}
}

// Neg returns the additive inverse of a.
func (a *Int) Neg() *Int {
	if a.sign == 0 {
		return &Int{}
	}
	return &Int{sign: -a.sign, limbs: append([]uint32(nil), a.limbs...)}
}

// Add returns a + b.
func Add(a, b *Int) *Int {
	if a.sign == 0 {
		return b.Copy()
	}
	if b.sign == 0 {
		return a.Copy()
	}
	if a.sign == b.sign {
		return &Int{sign: a.sign, limbs: addMag(a.limbs, b.limbs)}
	}
	switch cmpMag(a.limbs, b.limbs) {
	case 0:
		return &Int{}
	case 1:
		return &Int{sign: a.sign, limbs: subMag(a.limbs, b.limbs)}
	default:
		return &Int{sign: b.sign, limbs: subMag(b.limbs, a.limbs)}
	}
}

// Sub returns a - b.
func Sub(a, b *Int) *Int {
	return Add(a, b.Neg())
}

// Mul returns a * b.
func Mul(a, b *Int) *Int {
	if a.sign == 0 || b.sign == 0 {
		return &Int{}
	}
	return &Int{sign: a.sign * b.sign, limbs: mulMag(a.limbs, b.limbs)}
}

// Div returns a / b, truncating toward zero.
//
// Returns ErrDivByZero if b is zero.
func Div(a, b *Int) (*Int, error) {
	if b.sign == 0 {
		return nil, ErrDivByZero
	}
	if a.sign == 0 {
		return &Int{}, nil
	}
	quot := divMag(a.limbs, b.limbs)
	if len(quot) == 0 {
		return &Int{}, nil
	}
	return &Int{sign: a.sign * b.sign, limbs: quot}, nil
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func Cmp(a, b *Int) int {
	if a.sign != b.sign {
		if a.sign < b.sign {
			return -1
		}
		return 1
	}
	if a.sign == 0 {
		return 0
	}
	c := cmpMag(a.limbs, b.limbs)
	return c * a.sign
}

// String converts the Int to a decimal, null-terminator-free string, with a
// leading '-' for negative values and no leading zeros (except "0" itself).
func (a *Int) String() string {
	if a.sign == 0 {
		return "0"
	}
	digits := make([]byte, 0, len(a.limbs)*10+1)
	m := append([]uint32(nil), a.limbs...)
	for len(m) > 0 {
		var rem uint32
		m, rem = divMagBy10(m)
		digits = append(digits, byte('0'+rem))
	}
	if a.sign < 0 {
		digits = append(digits, '-')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Check diagnoses representation invariant violations for debugging:
// invalid sign/size combinations, out-of-range limbs, and leading zero
// limbs (spec.md §4.7).
func (a *Int) Check() error {
	if a.sign != -1 && a.sign != 0 && a.sign != 1 {
		return ErrInvalidSize
	}
	if a.sign == 0 && len(a.limbs) != 0 {
		return ErrInvalidSize
	}
	if a.sign != 0 && len(a.limbs) == 0 {
		return ErrInvalidSize
	}
	for _, l := range a.limbs {
		if l > limbMask {
			return ErrInvalidDigits
		}
	}
	if len(a.limbs) > 0 && a.limbs[len(a.limbs)-1] == 0 {
		return ErrLeadingZeros
	}
	return nil
}

// --- unsigned magnitude helpers (limbs, little-endian, 31-bit digits) ---

func trim(x []uint32) []uint32 {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

func addMag(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	for i := range a {
		s := a[i] + carry
		if i < len(b) {
			s += b[i]
		}
		out[i] = s & limbMask
		carry = s >> limbBits
	}
	out[len(a)] = carry
	return trim(out)
}

// subMag returns a - b assuming a >= b in magnitude.
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i := range a {
		d := int64(a[i]) - borrow
		if i < len(b) {
			d -= int64(b[i])
		}
		if d < 0 {
			d += 1 << limbBits
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return trim(out)
}

func cmpMag(a, b []uint32) int {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func mulMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			p := uint64(ai)*uint64(bj) + uint64(out[i+j]) + carry
			out[i+j] = uint32(p & limbMask)
			carry = p >> limbBits
		}
		k := i + len(b)
		for carry > 0 {
			p := uint64(out[k]) + carry
			out[k] = uint32(p & limbMask)
			carry = p >> limbBits
			k++
		}
	}
	return trim(out)
}

func bitLen(x []uint32) int {
	x = trim(x)
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*limbBits + bits.Len32(x[len(x)-1])
}

func getBit(x []uint32, i int) uint32 {
	limbIdx := i / limbBits
	if limbIdx >= len(x) {
		return 0
	}
	return (x[limbIdx] >> uint(i%limbBits)) & 1
}

// shiftLeft1 returns x*2 + bit, keeping each limb within 31 bits.
func shiftLeft1(x []uint32, bit uint32) []uint32 {
	out := make([]uint32, len(x), len(x)+1)
	carry := bit
	for i, v := range x {
		out[i] = (v<<1|carry)&limbMask
		carry = v >> (limbBits - 1)
	}
	if carry > 0 {
		out = append(out, carry)
	}
	return trim(out)
}

// divMag computes floor(a/b) for the unsigned magnitudes via bit-at-a-time
// restoring long division.
func divMag(a, b []uint32) []uint32 {
	if cmpMag(a, b) < 0 {
		return nil
	}
	var rem, quot []uint32
	for i := bitLen(a) - 1; i >= 0; i-- {
		rem = shiftLeft1(rem, getBit(a, i))
		if cmpMag(rem, b) >= 0 {
			rem = subMag(rem, b)
			quot = shiftLeft1(quot, 1)
		} else {
			quot = shiftLeft1(quot, 0)
		}
	}
	return trim(quot)
}

// divMagBy10 divides the magnitude by ten, returning the quotient and the
// remainder digit; used by String.
func divMagBy10(x []uint32) ([]uint32, uint32) {
	out := make([]uint32, len(x))
	var carry uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := carry<<limbBits | uint64(x[i])
		out[i] = uint32(cur / 10)
		carry = cur % 10
	}
	return trim(out), uint32(carry)
}
