package construct

import "github.com/mdemczyk/cfftables/cff"

// ExtByOne returns a d-CFF(t_X+1, n_X+1): x's Additive combination with
// the trivial d-CFF(1,1) (a single row, single column, cell set to 1).
func ExtByOne(x *cff.CFF) (*cff.CFF, error) {
	if x == nil {
		return nil, ErrNilOperand
	}

	unit, err := cff.Alloc(x.D(), 1, 1)
	if err != nil {
		return nil, err
	}
	if err := unit.Set(0, 0, 1); err != nil {
		return nil, err
	}

	return Additive(x, unit)
}
