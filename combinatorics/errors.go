package combinatorics

import "errors"

// Sentinel errors returned by the combinatorics package.
var (
	// ErrInvalidArgument indicates a negative or otherwise nonsensical
	// input to a counting function (e.g. a negative tuple length).
	ErrInvalidArgument = errors.New("combinatorics: invalid argument")

	// ErrOverflow indicates that a result could not be represented without
	// wraparound. No function in this package returns it: Choose detects
	// overflow during Pascal's-triangle accumulation and reports it by
	// returning 0, and IPow does not guard against it (callers bound its
	// use to small, known-safe exponents).
	ErrOverflow = errors.New("combinatorics: overflow")
)
