package construct

import (
	"github.com/mdemczyk/cfftables/cff"
	"github.com/mdemczyk/cfftables/combinatorics"
	"github.com/mdemczyk/cfftables/ffield"
)

// ReedSolomon returns a floor((m-1)/(k-1))-CFF(q*m, q^k) over F_{p^a}
// (q = p^a), one column per degree-<k polynomial over F_q. Column for
// polynomial P is the codeword (c_{k-1}, P(0), P(1), ..., P(m-2)), where
// c_{k-1} = coeffs[k-1] is P's leading coefficient (its value "at
// infinity"); the cell at row ℓ*q + codeword[ℓ] is 1 for ℓ in [0, m).
// The evaluation points 0..m-2 must be field elements, so m <= q+1;
// larger m returns ErrInvalidParams.
//
// k-1 must be positive (k >= 2); callers computing d for a degenerate
// k=1 should use ShortReedSolomon's division-by-zero guard instead, or
// treat the result as undefined, matching the reference implementation.
func ReedSolomon(p, a, k, m int) (*cff.CFF, error) {
	if k < 2 || m < 1 {
		return nil, ErrInvalidParams
	}

	field, err := ffield.New(p, a)
	if err != nil {
		return nil, err
	}
	q := field.Q
	if m > q+1 {
		return nil, ErrInvalidParams
	}

	d := (m - 1) / (k - 1)
	t := q * m
	n := combinatorics.IPow(q, k)
	if d < 1 || t < 1 || n < 1 {
		return nil, ErrInvalidParams
	}

	result, err := cff.Alloc(d, t, int64(n))
	if err != nil {
		return nil, err
	}

	coeffs := make([]int, k)
	for col := 0; ; col++ {
		if err := setReedSolomonColumn(result, field, coeffs, m, col); err != nil {
			return nil, err
		}
		if !combinatorics.KTupleLexSuccessor(q, k, coeffs) {
			break
		}
	}

	return result, nil
}

// setReedSolomonColumn sets the 1-positions for a single Reed-Solomon
// codeword column: letter 0 is coeffs[len(coeffs)-1] (the leading
// coefficient); letters 1..m-1 are P(0), P(1), ..., P(m-2).
func setReedSolomonColumn(result *cff.CFF, field *ffield.Field, coeffs []int, m, col int) error {
	q := field.Q
	if err := result.Set(coeffs[len(coeffs)-1], int64(col), 1); err != nil {
		return err
	}
	for letter := 1; letter < m; letter++ {
		value, err := field.HornerEval(coeffs, letter-1)
		if err != nil {
			return err
		}
		if err := result.Set(letter*q+value, int64(col), 1); err != nil {
			return err
		}
	}

	return nil
}
