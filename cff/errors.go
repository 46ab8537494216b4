package cff

import "errors"

// Sentinel errors returned by the cff package.
var (
	// ErrInvalidShape indicates d < 1, t < 1, or n < 1 at allocation time.
	ErrInvalidShape = errors.New("cff: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0,t) / [0,n),
	// or, from Verify, a column count above 2^20 that it refuses to
	// enumerate.
	ErrOutOfRange = errors.New("cff: index out of range")

	// ErrInvalidValue indicates a matrix cell value other than 0 or 1.
	ErrInvalidValue = errors.New("cff: matrix value must be 0 or 1")

	// ErrReduceNTooLarge indicates ReduceN was called with n' > current n.
	ErrReduceNTooLarge = errors.New("cff: reduce_n requires n' <= n")

	// ErrNilMatrix indicates a nil *CFF receiver was used.
	ErrNilMatrix = errors.New("cff: nil receiver")
)
