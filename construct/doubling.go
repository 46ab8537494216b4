package construct

import (
	"github.com/mdemczyk/cfftables/cff"
	"github.com/mdemczyk/cfftables/combinatorics"
)

// Doubling returns a 2-CFF(x.T()+s+1+(1 if s even), 2*x.N()) from a
// 2-CFF x and a row count s (s is chosen by the planner as the smallest
// value with C(s, floor(s/2)) > x.N(), guaranteeing enough distinct
// balanced subsets below to cover every column of x).
//
// The result places two side-by-side copies of x on top, s "balanced"
// middle rows whose left half holds the first x.N() ceil(s/2)-subsets of
// [0,s) as characteristic vectors and whose right half holds their
// complements, and a parity block at the bottom: one row (odd s) or two
// rows (even s) distinguishing the left half from the right.
func Doubling(x *cff.CFF, s int) (*cff.CFF, error) {
	if x == nil {
		return nil, ErrNilOperand
	}
	if s < 1 {
		return nil, ErrInvalidParams
	}

	parityRows := 2
	if s%2 == 1 {
		parityRows = 1
	}

	result, err := cff.Alloc(2, x.T()+s+parityRows, x.N()*2)
	if err != nil {
		return nil, err
	}

	if err := copyBlock(result, x, 0, 0); err != nil {
		return nil, err
	}
	if err := copyBlock(result, x, 0, x.N()); err != nil {
		return nil, err
	}

	half := (s + 1) / 2 // ceil(s/2)
	subset := make([]int, half)
	for i := range subset {
		subset[i] = i
	}

	for col := int64(0); col < x.N(); col++ {
		inSubset := make([]bool, s)
		for _, r := range subset {
			inSubset[r] = true
		}
		for r := 0; r < s; r++ {
			left, right := 0, 1
			if inSubset[r] {
				left, right = 1, 0
			}
			if err := result.Set(x.T()+r, col, left); err != nil {
				return nil, err
			}
			if err := result.Set(x.T()+r, col+x.N(), right); err != nil {
				return nil, err
			}
		}
		if col+1 < x.N() {
			if !combinatorics.KSubsetLexSuccessor(s, half, subset) {
				break
			}
		}
	}

	if err := setDoublingParityRows(result, x.T()+s, parityRows, x.N()); err != nil {
		return nil, err
	}

	return result, nil
}

// setDoublingParityRows fills the parity block at the bottom of a
// doubling result: one row of (left=0, right=1) for odd s, or two rows
// ((left=1,right=0),(left=0,right=1)) for even s.
func setDoublingParityRows(result *cff.CFF, rowStart int, parityRows int, n int64) error {
	if parityRows == 1 {
		for c := int64(0); c < n; c++ {
			if err := result.Set(rowStart, c, 0); err != nil {
				return err
			}
			if err := result.Set(rowStart, c+n, 1); err != nil {
				return err
			}
		}

		return nil
	}

	for c := int64(0); c < n; c++ {
		if err := result.Set(rowStart, c, 1); err != nil {
			return err
		}
		if err := result.Set(rowStart+1, c, 0); err != nil {
			return err
		}
		if err := result.Set(rowStart, c+n, 0); err != nil {
			return err
		}
		if err := result.Set(rowStart+1, c+n, 1); err != nil {
			return err
		}
	}

	return nil
}
