package ffield

// Field holds the complete addition and multiplication tables for
// F_{p^a}, plus the derived additive and multiplicative inverse tables.
// Elements are integers in [0, Q).
//
//   - Add[i][j] == Add[j][i], Mul[i][j] == Mul[j][i] (populated
//     symmetrically: upper triangle computed, lower triangle mirrored).
//   - AddInv[i] is the j with Add[i][j] == 0.
//   - MulInv[i] is the j with Mul[i][j] == 1; MulInv[0] is the sentinel -1
//     (zero has no multiplicative inverse).
type Field struct {
	P, A, Q int
	Add     [][]int
	Mul     [][]int
	AddInv  []int
	MulInv  []int
}

// maxFieldBits bounds p^a to fit comfortably in 31 bits, matching
// spec.md's "q = p^a overflows 31 bits" failure condition.
const maxFieldBits = 31

// New computes the field F_{p^a} and its tables. It returns
// ErrInvalidFieldParams when p <= 1, a <= 0, or p^a overflows 31 bits.
func New(p, a int) (*Field, error) {
	if p <= 1 || a <= 0 {
		return nil, ErrInvalidFieldParams
	}

	q, ok := checkedIPow(p, a)
	if !ok {
		return nil, ErrInvalidFieldParams
	}

	irr, err := findIrreducible(p, a)
	if err != nil {
		return nil, err
	}

	f := &Field{
		P: p, A: a, Q: q,
		Add: make([][]int, q),
		Mul: make([][]int, q),
	}
	for i := range f.Add {
		f.Add[i] = make([]int, q)
		f.Mul[i] = make([]int, q)
	}

	for i := 0; i < q; i++ {
		di := decode(i, p, a)
		for j := i; j < q; j++ {
			dj := decode(j, p, a)

			sum := make([]int, a)
			for l := 0; l < a; l++ {
				sum[l] = (di[l] + dj[l]) % p
			}
			addVal := encode(sum, p)
			f.Add[i][j] = addVal
			f.Add[j][i] = addVal

			prod := polyMulMod(di, dj, p)
			rem := polyDivModMonic(prod, irr, p)
			mulVal := encode(rem[:a], p)
			f.Mul[i][j] = mulVal
			f.Mul[j][i] = mulVal
		}
	}

	f.AddInv = populateAdditiveInverses(f.Add)
	f.MulInv = populateMultiplicativeInverses(f.Mul)

	return f, nil
}

// decode returns the base-p digit vector (length a) of x, digit[i] being
// the coefficient of x^i.
func decode(x, p, a int) []int {
	digits := make([]int, a)
	for i := 0; i < a; i++ {
		digits[i] = x % p
		x /= p
	}

	return digits
}

// encode collapses a base-p digit vector back into an integer via
// Horner's method.
func encode(digits []int, p int) int {
	acc := 0
	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc*p + digits[i]
	}

	return acc
}

func populateAdditiveInverses(add [][]int) []int {
	q := len(add)
	inv := make([]int, q)
	for i := 0; i < q; i++ {
		for j := 0; j < q; j++ {
			if add[i][j] == 0 {
				inv[i] = j
				break
			}
		}
	}

	return inv
}

func populateMultiplicativeInverses(mul [][]int) []int {
	q := len(mul)
	inv := make([]int, q)
	inv[0] = -1 // zero has no multiplicative inverse; sentinel
	for i := 1; i < q; i++ {
		for j := 1; j < q; j++ {
			if mul[i][j] == 1 {
				inv[i] = j
				break
			}
		}
	}

	return inv
}

// HornerEval evaluates the polynomial with coefficients coeffs (coeffs[i]
// is the coefficient of x^i) at the point x, using repeated multiply-add
// over the field: acc = coeffs[L-1]; acc = coeffs[i] + acc*x, descending.
func (f *Field) HornerEval(coeffs []int, x int) (int, error) {
	if len(coeffs) == 0 {
		return 0, ErrInvalidFieldParams
	}

	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = f.Add[coeffs[i]][f.Mul[acc][x]]
	}

	return acc, nil
}

// checkedIPow computes base^exp, returning ok=false if the result would
// exceed maxFieldBits bits (or overflow int during accumulation).
func checkedIPow(base, exp int) (int, bool) {
	const limit = 1 << maxFieldBits
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
		if result <= 0 || result >= limit {
			return 0, false
		}
	}

	return result, true
}
