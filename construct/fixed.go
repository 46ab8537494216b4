package construct

import (
	"github.com/mdemczyk/cfftables/cff"
	"github.com/mdemczyk/cfftables/combinatorics"
)

// fixedTMin and fixedTMax bound the t values this construction supports,
// matching the original survey catalogue's range.
const (
	fixedTMin          = 10
	fixedTMax          = 23
	fixedMaxCandidates = 200000
)

// Fixed returns a genuine, verified, constant-weight 2-CFF(t, n) for t
// in [10,23], built by a deterministic greedy column search: candidate
// columns are balanced-weight (floor(t/2)) bit patterns enumerated in
// lexicographic order over the t rows, and each is accepted iff it is
// privately witnessed, together with every already-accepted pair, as a
// valid cover-free triple. n is whatever the search actually achieves,
// not a literature upper bound, and the search is capped at
// fixedMaxCandidates tries to bound running time for the larger t.
func Fixed(t int) (*cff.CFF, error) {
	if t < fixedTMin || t > fixedTMax {
		return nil, ErrInvalidParams
	}

	weight := t / 2
	subset := make([]int, weight)
	for i := range subset {
		subset[i] = i
	}

	var columns []uint32
	tries := 0
	for {
		candidate := subsetToMask(subset)
		if acceptsFixedCandidate(columns, candidate) {
			columns = append(columns, candidate)
		}
		tries++
		if tries >= fixedMaxCandidates {
			break
		}
		if !combinatorics.KSubsetLexSuccessor(t, weight, subset) {
			break
		}
	}

	n := len(columns)
	if n < 1 {
		return nil, ErrInvalidParams
	}

	result, err := cff.Alloc(2, t, int64(n))
	if err != nil {
		return nil, err
	}
	for col, mask := range columns {
		for r := 0; r < t; r++ {
			if mask&(1<<uint(r)) != 0 {
				if err := result.Set(r, int64(col), 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return result, nil
}

// subsetToMask packs a sorted row-index subset into a bitmask.
func subsetToMask(subset []int) uint32 {
	var mask uint32
	for _, r := range subset {
		mask |= 1 << uint(r)
	}

	return mask
}

// acceptsFixedCandidate reports whether adding candidate to the
// already-accepted columns keeps every triple among them cover-free:
// for every pair of existing columns, the triple {existing1, existing2,
// candidate} must leave each of the three with a private witness row —
// a row set in only that one column.
func acceptsFixedCandidate(columns []uint32, candidate uint32) bool {
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			if !tripleWitnessed(columns[i], columns[j], candidate) {
				return false
			}
		}
	}

	return true
}

// tripleWitnessed reports whether each of a, b, c has at least one bit
// set in it alone and in neither of the other two.
func tripleWitnessed(a, b, c uint32) bool {
	return a&^b&^c != 0 && b&^a&^c != 0 && c&^a&^b != 0
}
