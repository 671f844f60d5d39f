package bigint

import "errors"

var (
	// ErrOverflow is returned by Int64 when the value does not fit in an int64.
	ErrOverflow = errors.New("bigint: value overflows int64")

	// ErrDivByZero is returned by Div when the divisor is zero.
	ErrDivByZero = errors.New("bigint: division by zero")

	// ErrInvalidSize is returned by Check when sign and limb count disagree.
	ErrInvalidSize = errors.New("bigint: invalid size/sign combination")

	// ErrInvalidDigits is returned by Check when a limb is outside [0, 2^31).
	ErrInvalidDigits = errors.New("bigint: limb out of range")

	// ErrLeadingZeros is returned by Check when the most significant limb is zero.
	ErrLeadingZeros = errors.New("bigint: leading zero limb")
)
