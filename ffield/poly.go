package ffield

// Polynomials over F_p are represented as coefficient slices indexed by
// degree, coeffs[i] being the coefficient of x^i, reduced mod p. Slices
// may carry trailing zero coefficients; degree() strips them logically.

func degree(coeffs []int) int {
	for d := len(coeffs) - 1; d > 0; d-- {
		if coeffs[d] != 0 {
			return d
		}
	}

	return 0
}

// polyMulMod multiplies two polynomials mod p, returning the full
// (unreduced) product.
func polyMulMod(a, b []int, p int) []int {
	out := make([]int, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] = (out[i+j] + av*bv) % p
		}
	}

	return out
}

// polyDivModMonic divides num by a monic divisor den (both mod p),
// returning the remainder only, which is all the field-reduction path
// needs.
func polyDivModMonic(num, den []int, p int) []int {
	rem := append([]int(nil), num...)
	denDeg := degree(den)
	for degree(rem) >= denDeg && hasNonZero(rem) {
		remDeg := degree(rem)
		if remDeg < denDeg {
			break
		}
		coeff := rem[remDeg]
		if coeff == 0 {
			break
		}
		shift := remDeg - denDeg
		for i := 0; i <= denDeg; i++ {
			rem[i+shift] = ((rem[i+shift] - coeff*den[i]) % p + p) % p
		}
	}

	return rem
}

func hasNonZero(coeffs []int) bool {
	for _, c := range coeffs {
		if c != 0 {
			return true
		}
	}

	return false
}

// isIrreducible reports whether the monic polynomial f of degree a is
// irreducible over F_p, decided by brute-force trial division against
// every monic polynomial of degree 1..a/2 — correct, if quadratic in q,
// and entirely adequate for the small field sizes this module builds
// tables for.
func isIrreducible(f []int, p int) bool {
	a := degree(f)
	for d := 1; d <= a/2; d++ {
		if hasFactorOfDegree(f, p, d) {
			return false
		}
	}

	return true
}

// hasFactorOfDegree reports whether any monic polynomial of degree d
// divides f exactly (remainder 0).
func hasFactorOfDegree(f []int, p, d int) bool {
	// candidate has d free low-order coefficients plus an implicit
	// leading 1 at degree d.
	candidate := make([]int, d+1)
	candidate[d] = 1
	total := ipowLocal(p, d)
	for idx := 0; idx < total; idx++ {
		n := idx
		for i := 0; i < d; i++ {
			candidate[i] = n % p
			n /= p
		}
		if degree(candidate) != d {
			continue // candidate degenerated to lower degree, skip
		}
		rem := polyDivModMonic(f, candidate, p)
		if !hasNonZero(rem) {
			return true
		}
	}

	return false
}

// ipowLocal is a tiny unexported integer power helper kept local to avoid
// importing combinatorics for a single multiplication loop used only
// during field construction.
func ipowLocal(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}

// findIrreducible returns the lexicographically first monic polynomial of
// degree a over F_p (by increasing low-order coefficient value) that is
// irreducible.
func findIrreducible(p, a int) ([]int, error) {
	if a == 1 {
		// x is always irreducible of degree 1; field is plain Z_p and
		// no reduction is ever performed against it.
		return []int{0, 1}, nil
	}

	candidate := make([]int, a+1)
	candidate[a] = 1
	total := ipowLocal(p, a)
	for idx := 0; idx < total; idx++ {
		n := idx
		for i := 0; i < a; i++ {
			candidate[i] = n % p
			n /= p
		}
		if isIrreducible(candidate, p) {
			out := append([]int(nil), candidate...)

			return out, nil
		}
	}

	return nil, ErrNoIrreduciblePolynomial
}
