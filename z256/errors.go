package z256

import "errors"

// Error taxonomy for decode and inversion failures.
var (
	// ErrInvalidEncoding signals a malformed octet or hex string: wrong
	// leading byte, odd hex length, or non-hex characters.
	ErrInvalidEncoding = errors.New("sm9z256: invalid encoding")

	// ErrNotCanonical signals a decoded scalar or field element that is
	// >= its modulus.
	ErrNotCanonical = errors.New("sm9z256: value not canonical (>= modulus)")

	// ErrNotOnCurve signals a decoded point that fails its curve equation.
	ErrNotOnCurve = errors.New("sm9z256: point not on curve")

	// ErrDegenerateInput signals an inversion attempt on a zero value.
	ErrDegenerateInput = errors.New("sm9z256: inversion of zero element")

	// ErrInsufficientEntropy signals that the caller-supplied randomness
	// source failed or was exhausted before a valid sample was produced.
	ErrInsufficientEntropy = errors.New("sm9z256: insufficient entropy")
)
