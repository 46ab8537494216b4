package combinatorics

// Choose returns C(n,k), the number of k-element subsets of an n-element
// set, computed by accumulating Pascal's triangle row by row.
//
// Choose returns 0 for invalid input (n < 0, k < 0, or n < k) and also
// returns 0 if the accumulation overflows int64 — overflow is detected the
// same way the reference implementation detects it: a row addition that
// decreases either operand has wrapped around.
//
// Complexity: O(n*k) time, O(k) space.
func Choose(n, k int) int64 {
	if n < 0 || k < 0 || n < k {
		return 0
	}

	// Symmetry optimisation: C(n,k) == C(n,n-k), keep the smaller side.
	if n-k < k {
		k = n - k
	}
	if n < 2 || k == 0 {
		return 1
	}

	// Build Pascal's triangle in place, one row of width k+1 at a time:
	// after processing i rows, row[j] holds C(i,j) for every j <= k.
	row := make([]int64, k+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		upper := i
		if upper > k {
			upper = k
		}
		for j := upper; j >= 1; j-- {
			sum := row[j] + row[j-1]
			if sum < row[j] || sum < row[j-1] {
				return 0 // overflow in the running sum
			}
			row[j] = sum
		}
	}

	return row[k]
}

// IPow returns base raised to the non-negative integer power exp.
// IPow(b, 0) == 1 for any b. Callers are expected to bound exp to values
// that cannot overflow int for the base in question — IPow performs no
// overflow detection of its own, matching the reference implementation.
func IPow(base, exp int) int {
	if exp <= 0 {
		return 1
	}
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}

// PrimeSieve returns a boolean slice of length n where isPrime[i] is true
// iff i is prime, computed via the Sieve of Eratosthenes in O(n log log n).
// For n <= 0 it returns an empty slice.
func PrimeSieve(n int) []bool {
	if n <= 0 {
		return []bool{}
	}

	isPrime := make([]bool, n)
	for i := range isPrime {
		isPrime[i] = true
	}
	if n > 0 {
		isPrime[0] = false
	}
	if n > 1 {
		isPrime[1] = false
	}

	for p := 2; p*p < n; p++ {
		if isPrime[p] {
			for i := p * p; i < n; i += p {
				isPrime[i] = false
			}
		}
	}

	return isPrime
}

// KSubsetLexSuccessor replaces buf, an increasing k-element subset of
// {0,...,n-1} stored in ascending order, with its lexicographic successor
// in place. It returns false (leaving buf unchanged) when buf already held
// the final subset {n-k,...,n-1}.
//
// Scans from the rightmost position backward, increments the first
// position whose value can still grow, and resets every position to its
// right to consecutive values starting just above it.
func KSubsetLexSuccessor(n, k int, buf []int) bool {
	for i := k - 1; i >= 0; i-- {
		if buf[i] != n-k+i {
			buf[i]++
			for x := i + 1; x < k; x++ {
				buf[x] = buf[i] + (x - i)
			}

			return true
		}
	}

	return false
}

// KTupleLexSuccessor replaces buf, a k-tuple of digits in {0,...,n-1},
// with its lexicographic successor in place (odometer-style counting). It
// returns false (leaving buf unchanged) when buf already held the final
// tuple {n-1,...,n-1}.
func KTupleLexSuccessor(n, k int, buf []int) bool {
	for i := k - 1; i >= 0; i-- {
		if buf[i] < n-1 {
			buf[i]++
			for x := i + 1; x < k; x++ {
				buf[x] = 0
			}

			return true
		}
	}

	return false
}
