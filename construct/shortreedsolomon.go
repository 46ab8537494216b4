package construct

import (
	"github.com/mdemczyk/cfftables/cff"
	"github.com/mdemczyk/cfftables/combinatorics"
	"github.com/mdemczyk/cfftables/ffield"
)

// ShortReedSolomon returns the shortened Reed-Solomon variant: only
// codewords whose first s letters evaluate to zero are kept, and those
// first s positions are dropped from the emitted column, yielding a
// (q*(m-s))-row, q^(k-s)-column matrix. Letters are laid out as in
// ReedSolomon (leading coefficient first, then P(0), ..., P(m-2)), so m
// must be at most q+1; larger m returns ErrInvalidParams.
//
// s == 0 degenerates to the unshortened ReedSolomon(p,a,k,m). The
// derived d uses the same division-by-zero guard as the construction
// this was ported from: when the denominator (short_m - (short_m -
// short_k + 1)) is zero, d falls back to 1 rather than computing a
// division by zero. Callers that need a trustworthy d should verify the
// returned CFF rather than trust this value blindly.
func ShortReedSolomon(p, a, k, m, s int) (*cff.CFF, error) {
	if s == 0 {
		return ReedSolomon(p, a, k, m)
	}
	if k < 1 || m < 1 || s < 1 || s >= k || s >= m {
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

	shortM := m - s
	shortK := k - s

	denom := shortM - (shortM - shortK + 1)
	d := 1
	if denom != 0 {
		d = (shortM - 1) / denom
	}

	t := q * shortM
	n := combinatorics.IPow(q, shortK)
	if d < 1 || t < 1 || n < 1 {
		return nil, ErrInvalidParams
	}

	result, err := cff.Alloc(d, t, int64(n))
	if err != nil {
		return nil, err
	}

	coeffs := make([]int, k)
	codeword := make([]int, m)
	col := 0
	for {
		keep, err := fillShortenedCodeword(field, coeffs, codeword, m, s)
		if err != nil {
			return nil, err
		}
		if keep {
			for i := s; i < m; i++ {
				if err := result.Set((i-s)*q+codeword[i], int64(col), 1); err != nil {
					return nil, err
				}
			}
			col++
		}
		if !combinatorics.KTupleLexSuccessor(q, k, coeffs) {
			break
		}
	}

	return result, nil
}

// fillShortenedCodeword evaluates the full m-letter codeword for coeffs
// (leading coefficient, then P(0), ..., P(m-2)) and reports whether its
// first s letters are all zero.
func fillShortenedCodeword(field *ffield.Field, coeffs, codeword []int, m, s int) (bool, error) {
	codeword[0] = coeffs[len(coeffs)-1]
	for x := 0; x < m-1; x++ {
		value, err := field.HornerEval(coeffs, x)
		if err != nil {
			return false, err
		}
		codeword[x+1] = value
	}

	for i := 0; i < s; i++ {
		if codeword[i] != 0 {
			return false, nil
		}
	}

	return true, nil
}
