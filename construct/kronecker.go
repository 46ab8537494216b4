package construct

import "github.com/mdemczyk/cfftables/cff"

// Kronecker returns a d-CFF(t_L*t_R, n_L*n_R): the Kronecker (tensor)
// product of left and right, which must share the same d. Cell
// (t1*left.T()+s, n1*left.N()+n2) is 1 iff right[t1][n1] == 1 and
// left[s][n2] == 1.
func Kronecker(left, right *cff.CFF) (*cff.CFF, error) {
	if left == nil || right == nil {
		return nil, ErrNilOperand
	}
	if left.D() != right.D() {
		return nil, ErrMismatchedD
	}

	result, err := cff.Alloc(left.D(), left.T()*right.T(), left.N()*right.N())
	if err != nil {
		return nil, err
	}

	if err := placeKroneckerBlock(result, left, right, 0, right.N()); err != nil {
		return nil, err
	}

	return result, nil
}

// placeKroneckerBlock writes the Kronecker product of left and right
// into dst, with every row shifted down by rowOffset, reading only
// right's first rightCols columns (Kronecker passes right.N() itself;
// OptimizedKronecker passes bottom.N(), since its outer operand is
// only required to have at least that many columns). Shared by
// Kronecker and OptimizedKronecker.
func placeKroneckerBlock(dst, left, right *cff.CFF, rowOffset int, rightCols int64) error {
	for n1 := int64(0); n1 < rightCols; n1++ {
		for t1 := 0; t1 < right.T(); t1++ {
			v, err := right.Get(t1, n1)
			if err != nil {
				return err
			}
			if v != 1 {
				continue
			}
			for n2 := int64(0); n2 < left.N(); n2++ {
				for s := 0; s < left.T(); s++ {
					lv, err := left.Get(s, n2)
					if err != nil {
						return err
					}
					if lv != 1 {
						continue
					}
					if err := dst.Set(rowOffset+t1*left.T()+s, n1*left.N()+n2, 1); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}
