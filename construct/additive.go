package construct

import "github.com/mdemczyk/cfftables/cff"

// Additive returns a d-CFF(t_L+t_R, n_L+n_R) by stacking left and right
// block-diagonally: left occupies rows [0,t_L) and columns [0,n_L),
// right occupies rows [t_L,t_L+t_R) and columns [n_L,n_L+n_R). Both
// operands must share the same d.
func Additive(left, right *cff.CFF) (*cff.CFF, error) {
	if left == nil || right == nil {
		return nil, ErrNilOperand
	}
	if left.D() != right.D() {
		return nil, ErrMismatchedD
	}

	result, err := cff.Alloc(left.D(), left.T()+right.T(), left.N()+right.N())
	if err != nil {
		return nil, err
	}

	if err := copyBlock(result, left, 0, 0); err != nil {
		return nil, err
	}
	if err := copyBlock(result, right, left.T(), left.N()); err != nil {
		return nil, err
	}

	return result, nil
}

// copyBlock copies src's 1-cells into dst, offset by rowOffset rows and
// colOffset columns.
func copyBlock(dst, src *cff.CFF, rowOffset int, colOffset int64) error {
	for r := 0; r < src.T(); r++ {
		for c := int64(0); c < src.N(); c++ {
			v, err := src.Get(r, c)
			if err != nil {
				return err
			}
			if v == 1 {
				if err := dst.Set(r+rowOffset, c+colOffset, 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
