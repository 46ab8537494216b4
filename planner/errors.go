package planner

import "errors"

// Sentinel errors returned by the planner package.
var (
	// ErrInvalidShape indicates d_max, t_max, or n_max was non-positive.
	ErrInvalidShape = errors.New("planner: invalid shape")

	// ErrOutOfRange indicates a query's d or t fell outside the table's
	// populated bounds.
	ErrOutOfRange = errors.New("planner: index out of range")

	// ErrUnrealisable indicates a recipe could not be materialised (a
	// child construction failed), matching spec.md's "alloc-failure
	// propagates as none" rule.
	ErrUnrealisable = errors.New("planner: recipe could not be materialised")

	// ErrNotFound indicates get_by_n found no row with n >= the
	// requested value.
	ErrNotFound = errors.New("planner: no row satisfies the requested n")
)
