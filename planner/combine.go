package planner

import "github.com/mdemczyk/cfftables/combinatorics"

// planTable builds the table for a single d, assuming every table for
// d' < d has already been planned (doubling and optimised Kronecker
// read the d=1 and d-1 tables respectively).
func (ctx *Context) planTable(d int) {
	table := ctx.tables[d]

	if d == 1 {
		planD1(table)
		return
	}

	if d == 2 {
		seedFixed(table)
		seedSTS(table)
	}
	seedReedSolomon(table, d)
	seedShortReedSolomon(table, d)
	seedPoratRothschild(table, d)

	for {
		table.dirty = false

		if d == 2 {
			ctx.applyDoublingSeeder(table)
		}
		applyExtendByOneFiller(table)
		ctx.applyPairCombinations(d, table)

		table.numLoops++
		if !table.dirty {
			break
		}
	}
}

// planD1 fills the d=1 table directly: a Sperner system on t points is
// always an optimal 1-CFF, so there is no fixed-point loop to run.
// Table.updateRow's strict-improvement guard naturally leaves small t
// (where Sperner doesn't beat the initial Identity row) untouched.
func planD1(table *Table) {
	for t := 1; t <= table.numRows; t++ {
		n := combinatorics.Choose(t, t/2)
		if n < 1 {
			continue
		}
		table.updateRow(t, n, Recipe{Kind: RecipeSperner, T: int(n)})
	}
}

// applyDoublingSeeder proposes, for every row t of a d=2 table, the
// Doubling(t,s) row at t+s+1+(1 if s even): s is found by searching
// the d=1 table (whose row n at t=s is exactly C(s, floor(s/2)), by
// the Sperner identity) for the smallest s with n_s > n_t, rather than
// recomputing the binomial coefficient directly — reusing the table
// lookup is what keeps doubling from reaching back into the
// combinatorial kernel on every pass.
func (ctx *Context) applyDoublingSeeder(table *Table) {
	d1 := ctx.tables[1]

	for t := 1; t <= table.numRows; t++ {
		n := table.rows[t].n
		s, ok := d1.searchTForN(n + 1)
		if !ok {
			continue
		}

		parityRows := 2
		if s%2 == 1 {
			parityRows = 1
		}
		tNew := t + s + parityRows
		if tNew > table.numRows {
			continue
		}

		table.updateRow(tNew, n*2, Recipe{Kind: RecipeDoubling, T: t, S: s})
	}
}

// applyExtendByOneFiller proposes, for every row t >= d+1, that row
// t+1 hold n_t+1 via ExtByOne(t).
func applyExtendByOneFiller(table *Table) {
	for t := table.d + 1; t <= table.numRows; t++ {
		n := table.rows[t].n
		tNew := t + 1
		if tNew > table.numRows {
			continue
		}
		table.updateRow(tNew, n+1, Recipe{Kind: RecipeExtByOne, T: t})
	}
}

// applyPairCombinations proposes Additive and Kronecker rows for every
// unordered pair (t1,t2), then (for d >= 2) optimised-Kronecker rows
// in both child/outer orderings.
func (ctx *Context) applyPairCombinations(d int, table *Table) {
	for t1 := 1; t1 <= table.numRows; t1++ {
		n1 := table.rows[t1].n

		for t2 := t1; t2 <= table.numRows; t2++ {
			n2 := table.rows[t2].n

			if tNew := t1 + t2; tNew <= table.numRows {
				table.updateRow(tNew, n1+n2, Recipe{Kind: RecipeAdditive, TLeft: t1, TRight: t2})
			}

			if tNew := t1 * t2; tNew >= 1 && tNew <= table.numRows {
				nNew := saturatingMul(n1, n2, table.nMax)
				table.updateRow(tNew, nNew, Recipe{Kind: RecipeKronecker, TLeft: t1, TRight: t2})
			}
		}
	}

	if d >= 2 {
		ctx.applyOptKronPairs(d, table)
	}
}

// applyOptKronPairs proposes OptKron(outer,inner,bottom) rows: outer
// ranges over the d-1 table, inner and bottom independently over this
// table, so both of the "two orderings" spec.md calls for (inner=t1,
// bottom=t2 and inner=t2, bottom=t1) are covered by the same loop. The
// outer row is chosen by searchTForN — the smallest s with n_outer >=
// n_bottom, the same "sufficiency, not equality" lookup
// applyDoublingSeeder already uses against the d=1 table — since two
// independently-grown tables essentially never land on the exact same
// n at any row; OptimizedKronecker itself only reads outer's first
// n_bottom columns (see construct.OptimizedKronecker), so n_outer >=
// n_bottom is all the combination needs.
func (ctx *Context) applyOptKronPairs(d int, table *Table) {
	outer := ctx.tables[d-1]
	if outer == nil {
		return
	}

	for tBottom := 1; tBottom <= table.numRows; tBottom++ {
		nBottom := table.rows[tBottom].n

		s, ok := outer.searchTForN(nBottom)
		if !ok {
			continue
		}

		for tInner := 1; tInner <= table.numRows; tInner++ {
			nInner := table.rows[tInner].n

			tNew := s*tInner + tBottom
			if tNew < 1 || tNew > table.numRows {
				continue
			}

			nNew := saturatingMul(nInner, nBottom, table.nMax)
			table.updateRow(tNew, nNew, Recipe{
				Kind:    RecipeOptKronecker,
				TInner:  tInner,
				TBottom: tBottom,
				SOuter:  s,
			})
		}
	}
}

// saturatingMul returns a*b clamped to ceiling, avoiding an int64
// overflow wraparound for the huge products Kronecker-family combiners
// can propose; Table.updateRow performs the real saturation-to-n_max
// clamp once the value is known not to have wrapped.
func saturatingMul(a, b, ceiling int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > ceiling/b {
		return ceiling
	}

	return a * b
}
