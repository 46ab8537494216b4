package construct

import (
	"github.com/mdemczyk/cfftables/cff"
	"github.com/mdemczyk/cfftables/combinatorics"
)

// Sperner returns a 1-CFF(t*, n) where t* = min{s : C(s, floor(s/2)) >= n}.
// Columns are the first n (lexicographically) floor(t*/2)-subsets of
// {0,...,t*-1}; column c's 1-positions are the members of its subset.
func Sperner(n int) (*cff.CFF, error) {
	if n < 1 {
		return nil, ErrInvalidParams
	}

	t := 0
	for combinatorics.Choose(t, t/2) < int64(n) {
		t++
	}

	result, err := cff.Alloc(1, t, int64(n))
	if err != nil {
		return nil, err
	}

	half := t / 2
	subset := make([]int, half)
	for i := range subset {
		subset[i] = i
	}

	for col := 0; col < n; col++ {
		for _, row := range subset {
			if err := result.Set(row, int64(col), 1); err != nil {
				return nil, err
			}
		}
		if col+1 < n {
			if !combinatorics.KSubsetLexSuccessor(t, half, subset) {
				break
			}
		}
	}

	return result, nil
}
