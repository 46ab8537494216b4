package construct

import "github.com/mdemczyk/cfftables/cff"

// OptimizedKronecker returns a d-CFF(s*t_I + t_B, n_I*n_B) given:
//   - outer:  a (d-1)-CFF(s, n_B) or more — only its first n_B columns
//     are read
//   - inner:  a d-CFF(t_I, n_I)
//   - bottom: a d-CFF(t_B, n_B)
//
// The top block is the Kronecker product of outer and inner, laid out
// across n_B column-blocks of width n_I, reading only outer's first
// bottom.N() columns (outer.N() is only required to be >= bottom.N(),
// not equal to it — two independently-planned tables essentially never
// land on the exact same n at any row); the bottom block repeats each
// column of bottom n_I times. Requires inner.D() == bottom.D(),
// outer.D()+1 == inner.D(), and outer.N() >= bottom.N().
func OptimizedKronecker(outer, inner, bottom *cff.CFF) (*cff.CFF, error) {
	if outer == nil || inner == nil || bottom == nil {
		return nil, ErrNilOperand
	}
	if inner.D() != bottom.D() {
		return nil, ErrMismatchedD
	}
	if outer.D()+1 != inner.D() {
		return nil, ErrMismatchedD
	}
	if outer.N() < bottom.N() {
		return nil, ErrInvalidParams
	}

	result, err := cff.Alloc(inner.D(), outer.T()*inner.T()+bottom.T(), bottom.N()*inner.N())
	if err != nil {
		return nil, err
	}

	if err := placeKroneckerBlock(result, inner, outer, 0, bottom.N()); err != nil {
		return nil, err
	}

	rowsAbove := inner.T() * outer.T()
	for r := 0; r < bottom.T(); r++ {
		for c := int64(0); c < bottom.N(); c++ {
			v, err := bottom.Get(r, c)
			if err != nil {
				return nil, err
			}
			if v != 1 {
				continue
			}
			for repeat := int64(0); repeat < inner.N(); repeat++ {
				if err := result.Set(rowsAbove+r, c*inner.N()+repeat, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return result, nil
}
