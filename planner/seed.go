package planner

import (
	"math"

	"github.com/mdemczyk/cfftables/combinatorics"
	"github.com/mdemczyk/cfftables/construct"
	"github.com/mdemczyk/cfftables/ffield"
)

// Seeders are direct constructions: each allocates no children, so
// unlike combiners they can run exactly once per table, before the
// fixed-point loop, rather than on every pass. The search bounds below
// (seedMaxPrime, seedMaxFieldExp, seedMaxK) keep the field/parameter
// sweep finite; they are generous enough to reach every literal
// scenario spec.md documents (e.g. Reed-Solomon(5,1,2,4)) without
// degenerating into an unbounded search.
const (
	seedMaxPrime    = 47
	seedMaxFieldExp = 3
	seedMaxK        = 6

	fixedSurveyTMin = 10
	fixedSurveyTMax = 23
)

// seedPrimes returns every prime in [2,seedMaxPrime], the field
// characteristics the Reed-Solomon/Porat-Rothschild seeders try.
func seedPrimes() []int {
	sieve := combinatorics.PrimeSieve(seedMaxPrime + 1)
	var primes []int
	for i, isPrime := range sieve {
		if isPrime {
			primes = append(primes, i)
		}
	}

	return primes
}

// seedFixed applies the hard-coded small-parameter survey catalogue.
// Unconditional per spec.md §9 design note 4: fixed CFFs are dominated
// only by better-known constructions whose recipes supersede them via
// Table.updateRow's strict-improvement guard, so there is no need to
// gate this on anything.
func seedFixed(table *Table) {
	for t := fixedSurveyTMin; t <= fixedSurveyTMax; t++ {
		if t > table.numRows {
			break
		}
		result, err := construct.Fixed(t)
		if err != nil {
			continue
		}
		table.updateRow(t, result.N(), Recipe{Kind: RecipeFixed, V: t})
	}
}

// seedSTS applies the Steiner-triple-system seeder for every v in
// [1,t_max] with v ≡ 1 or 3 (mod 6); d=2 only.
func seedSTS(table *Table) {
	for v := 1; v <= table.numRows; v++ {
		if v%6 != 1 && v%6 != 3 {
			continue
		}
		result, err := construct.STS(v)
		if err != nil {
			continue
		}
		table.updateRow(v, result.N(), Recipe{Kind: RecipeSTS, V: v})
	}
}

// seedReedSolomon tries every (p,a,k,m) combination within the search
// bounds and proposes a row wherever the construction's derived d
// matches the table being seeded.
func seedReedSolomon(table *Table, d int) {
	for _, p := range seedPrimes() {
		for a := 1; a <= seedMaxFieldExp; a++ {
			if combinatorics.IPow(p, a) > table.numRows {
				break
			}
			field, err := ffield.New(p, a)
			if err != nil {
				continue
			}
			q := field.Q
			for k := 2; k <= seedMaxK; k++ {
				for m := k; m <= q+1; m++ {
					t := q * m
					if t > table.numRows {
						break
					}
					if (m-1)/(k-1) != d {
						continue
					}
					n := combinatorics.IPow(q, k)
					if n < 1 {
						continue
					}
					table.updateRow(t, int64(n), Recipe{Kind: RecipeReedSolomon, P: p, A: a, K: k, M: m})
				}
			}
		}
	}
}

// seedShortReedSolomon mirrors seedReedSolomon, additionally sweeping
// the shortening parameter s in [1,k-1].
func seedShortReedSolomon(table *Table, d int) {
	for _, p := range seedPrimes() {
		for a := 1; a <= seedMaxFieldExp; a++ {
			if combinatorics.IPow(p, a) > table.numRows {
				break
			}
			field, err := ffield.New(p, a)
			if err != nil {
				continue
			}
			q := field.Q
			for k := 2; k <= seedMaxK; k++ {
				for s := 1; s < k; s++ {
					for m := k; m <= q+1; m++ {
						shortM := m - s
						shortK := k - s
						if shortK < 1 {
							continue
						}
						t := q * shortM
						if t > table.numRows {
							break
						}

						denom := shortM - (shortM - shortK + 1)
						srsD := 1
						if denom != 0 {
							srsD = (shortM - 1) / denom
						}
						if srsD != d {
							continue
						}

						n := combinatorics.IPow(q, shortK)
						if n < 1 {
							continue
						}
						table.updateRow(t, int64(n), Recipe{Kind: RecipeShortReedSolomon, P: p, A: a, K: k, M: m, S: s})
					}
				}
			}
		}
	}
}

// seedPoratRothschild tries r = d+1 (the only r yielding this table's
// d) against every field within the search bounds satisfying the
// construction's 2r <= q < 4r domain, starting m at
// ceil(k/(1-construct.PoratEntropy(q,r))) — the smallest codeword
// length the q-ary entropy bound permits for a rate-k/m code — and
// sweeping upward.
func seedPoratRothschild(table *Table, d int) {
	r := d + 1
	if r < 2 {
		return
	}

	for _, p := range seedPrimes() {
		for a := 1; a <= seedMaxFieldExp; a++ {
			if combinatorics.IPow(p, a) > table.numRows {
				break
			}
			field, err := ffield.New(p, a)
			if err != nil {
				continue
			}
			q := field.Q
			if q < 2*r || q >= 4*r {
				continue
			}

			entropy := construct.PoratEntropy(float64(q), float64(r))
			for k := 1; k <= seedMaxK; k++ {
				mStart := 1
				if entropy < 1 {
					mStart = int(math.Ceil(float64(k) / (1 - entropy)))
					if mStart < 1 {
						mStart = 1
					}
				}

				for m := mStart; ; m++ {
					t := m * q
					if t > table.numRows {
						break
					}
					n := combinatorics.IPow(q, k)
					if n < 1 {
						continue
					}
					table.updateRow(t, int64(n), Recipe{Kind: RecipePoratRothschild, P: p, A: a, K: k, R: r, M: m})
				}
			}
		}
	}
}
