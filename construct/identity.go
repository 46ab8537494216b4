package construct

import "github.com/mdemczyk/cfftables/cff"

// Identity returns the trivial d-CFF(n,n): the n x n identity matrix.
// Every column has exactly one 1, so for any d+1 columns each has a row
// (its own diagonal position) where it alone is 1. Requires d < n.
func Identity(d, n int) (*cff.CFF, error) {
	if d < 1 || n < 1 || d >= n {
		return nil, ErrInvalidParams
	}

	result, err := cff.Alloc(d, n, int64(n))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := result.Set(i, int64(i), 1); err != nil {
			return nil, err
		}
	}

	return result, nil
}
