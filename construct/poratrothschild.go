package construct

import (
	"math"

	"github.com/mdemczyk/cfftables/cff"
	"github.com/mdemczyk/cfftables/combinatorics"
	"github.com/mdemczyk/cfftables/ffield"
)

// PoratRothschild returns an (r-1)-CFF(m*q, q^k) built by the
// Porat-Rothschild greedy derandomized code over F_{p^a} (q = p^a). The
// construction is defined for 2r <= q < 4r but, matching the algorithm
// it is grounded on, does not itself enforce that bound — parameters
// outside it still run to completion and produce a matrix, just not
// necessarily one with the advertised distance.
//
// The generator matrix G is built one column j (of k) at a time, for
// each of the m rows, by picking the field element v that minimizes the
// expected number of partial codewords landing short of the target
// minimum distance D = floor(((r-1)/r) * m) — a greedy potential
// function over all q^k partially-extended codewords.
func PoratRothschild(p, a, k, r, m int) (*cff.CFF, error) {
	if k < 1 || r < 2 || m < 1 {
		return nil, ErrInvalidParams
	}

	field, err := ffield.New(p, a)
	if err != nil {
		return nil, err
	}
	q := field.Q

	delta := float64(r-1) / float64(r)
	qToK := combinatorics.IPow(q, k)
	targetDistance := int(math.Floor(delta * float64(m)))

	code, err := buildPoratCode(field, k, m, qToK, targetDistance)
	if err != nil {
		return nil, err
	}

	result, err := cff.Alloc(r-1, m*q, int64(qToK))
	if err != nil {
		return nil, err
	}
	for colIndex := 0; colIndex < qToK; colIndex++ {
		for position := 0; position < m; position++ {
			letter := code[position][colIndex]
			if err := result.Set(position*q+letter, int64(colIndex), 1); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// PoratEntropy computes the q-ary entropy-like function used by the
// planner to derive a starting m from k and r: ((r-1)/r) *
// log_q((q-1)r/(r-1)) + (1/r) * log_q(r).
func PoratEntropy(q, r float64) float64 {
	return ((r-1)/r)*(math.Log((q-1)*r/(r-1))/math.Log(q)) +
		(1/r)*(math.Log(r)/math.Log(q))
}

// buildPoratCode runs the greedy column-by-column generator matrix
// construction and returns the full m x q^k code matrix.
func buildPoratCode(field *ffield.Field, k, m, qToK, targetDistance int) ([][]int, error) {
	code := make([][]int, m)
	for i := range code {
		code[i] = make([]int, qToK)
	}

	// leadingZeros[l] tracks how many of the m letters of codeword l are
	// fixed to zero so far.
	leadingZeros := make([]int, qToK)
	leadingZeros[0] = m

	y, err := reverseLexTuples(field.Q, k, qToK)
	if err != nil {
		return nil, err
	}

	generator := make([][]int, m)
	for i := range generator {
		generator[i] = make([]int, k)
	}

	q := field.Q
	for i := 1; i <= m; i++ {
		for j := 1; j <= k; j++ {
			v := greedyPickLetter(field, code, leadingZeros, y, i, j, m, targetDistance)
			generator[i-1][j-1] = v

			lo := combinatorics.IPow(q, j-1)
			hi := combinatorics.IPow(q, j)
			for l := lo; l < hi; l++ {
				prior := code[i-1][l%lo]
				value := field.Add[field.Mul[v][y[l][j-1]]][prior]
				if value == 0 {
					leadingZeros[l]++
				}
				code[i-1][l] = value
			}
		}
	}

	return code, nil
}

// greedyPickLetter chooses the field element v that minimizes the
// expected shortfall against targetDistance for codewords currently
// being extended at generator position (i,j).
func greedyPickLetter(field *ffield.Field, code [][]int, leadingZeros []int, y [][]int, i, j, m, targetDistance int) int {
	q := field.Q
	weight := make([]float64, q)

	lo := combinatorics.IPow(q, j-1)
	hi := combinatorics.IPow(q, j)
	for l := lo; l < hi; l++ {
		c := i - leadingZeros[l]
		v := field.Mul[code[i-1][l%lo]][field.AddInv[field.MulInv[y[l][j-1]]]]
		shortfall := targetDistance - c
		if shortfall < 0 {
			continue
		}
		binom := float64(combinatorics.Choose(m-i, shortfall))
		pTerm := math.Pow(1.0-1.0/float64(q), float64(shortfall))
		qTerm := math.Pow(1.0/float64(q), float64(m-i-shortfall))
		weight[v] -= binom * pTerm * qTerm
	}

	best := 0
	bestWeight := weight[0]
	for b := 1; b < q; b++ {
		if weight[b] > bestWeight {
			best = b
			bestWeight = weight[b]
		}
	}

	return best
}

// reverseLexTuples enumerates all q^k k-tuples over {0,...,q-1} in
// reverse-lexicographic order (least significant digit varies fastest
// toward the low-index side), matching the y[] table the greedy
// selection step indexes into.
func reverseLexTuples(q, k, count int) ([][]int, error) {
	if q < 1 || k < 1 {
		return nil, ErrInvalidParams
	}

	y := make([][]int, count)
	buf := make([]int, k)
	for h := 0; h < count; h++ {
		y[h] = append([]int(nil), buf...)
		nextReverseLexTuple(q, k, buf)
	}

	return y, nil
}

// nextReverseLexTuple advances buf to its successor under the
// generator's reverse index order: scan from index 0 upward,
// incrementing the first position below q-1 and zeroing every position
// to its left.
func nextReverseLexTuple(q, k int, buf []int) bool {
	for i := 0; i < k; i++ {
		if buf[i] < q-1 {
			buf[i]++
			for x := i - 1; x >= 0; x-- {
				buf[x] = 0
			}

			return true
		}
	}

	return false
}
