package mbf

import "errors"

// Sentinel errors returned by the numeric kernels. internal/floaterr
// classifies these into the three BASIC error conditions spec.md §4.D
// names; nothing outside this package and floaterr should need to
// inspect them directly.
var (
	// ErrOverflow means a result's magnitude exceeds what its type can
	// represent (Integer range, or Single/Double's pos_max).
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero means a division or modulo had a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain means a host math function was asked for an undefined
	// result, e.g. SQR of a negative number.
	ErrDomain = errors.New("illegal function call")
)
