package construct

import "errors"

// Sentinel errors returned by the construct package.
var (
	// ErrInvalidParams indicates a construction's integer parameters fell
	// outside the domain the algorithm is defined for.
	ErrInvalidParams = errors.New("construct: invalid parameters")

	// ErrMismatchedD indicates a recursive combiner was given children
	// whose d parameters are incompatible with the combiner's contract.
	ErrMismatchedD = errors.New("construct: mismatched d between operands")

	// ErrNilOperand indicates a recursive combiner was given a nil child.
	ErrNilOperand = errors.New("construct: nil operand")
)
