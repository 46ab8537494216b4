package cff

import "github.com/mdemczyk/cfftables/combinatorics"

// Verify reports whether c is genuinely a d-CFF(t,n): for every subset of
// d+1 distinct columns, every column in the subset has a "private
// witness" row — a row that is 1 at that column and 0 at every other
// column in the subset.
//
// This enumerates (d+1)-subsets of the n columns in lexicographic order
// via combinatorics.KSubsetLexSuccessor and, for each, scans all t rows
// once, attributing each row with exactly one 1 among the subset's
// columns as that column's witness. It is exponential in n and is meant
// as an offline diagnostic, not something called from hot construction
// paths.
func (c *CFF) Verify() (bool, error) {
	if c == nil {
		return false, ErrNilMatrix
	}
	if c.d+1 > int(c.n) {
		return false, nil
	}
	if c.n > 1<<20 {
		// Enumerating C(n, d+1) subsets is infeasible at this scale; refuse
		// rather than spin forever.
		return false, ErrOutOfRange
	}

	k := c.d + 1
	n := int(c.n)

	subset := make([]int, k)
	for i := 0; i < k; i++ {
		subset[i] = i
	}

	for {
		ok, err := c.subsetFullyWitnessed(subset)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if !combinatorics.KSubsetLexSuccessor(n, k, subset) {
			break
		}
	}

	return true, nil
}

// subsetFullyWitnessed reports whether every column in subset has a
// private witness row: a row whose restriction to subset has weight
// exactly 1, with the lone 1 at that column.
func (c *CFF) subsetFullyWitnessed(subset []int) (bool, error) {
	k := len(subset)
	found := make([]bool, k)
	remaining := k

	for r := 0; r < c.t && remaining > 0; r++ {
		sum := 0
		last := -1
		for i, col := range subset {
			v, err := c.Get(r, int64(col))
			if err != nil {
				return false, err
			}
			if v == 1 {
				sum++
				last = i
			}
		}
		if sum == 1 && !found[last] {
			found[last] = true
			remaining--
		}
	}

	return remaining == 0, nil
}
