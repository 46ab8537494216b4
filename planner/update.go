package planner

// updateRow applies the planner's sole write path: propose that row t
// should hold n-value nNew via recipe. The proposal is accepted only if
// all three guards pass:
//  1. t is within the table's current row range.
//  2. the row is not already saturated (n == nMax freezes it).
//  3. nNew strictly improves on the row's current n.
//
// On acceptance, n is clamped to nMax if nNew meets or exceeds it, and
// — because no larger t could yield more than the same clamped value,
// and would be dominated by extend-by-one — the table is truncated to
// numRows = t. recipe is stored unconditionally on acceptance and dirty
// is set so the planning loop runs another pass.
func (table *Table) updateRow(t int, nNew int64, recipe Recipe) {
	if t < 1 || t > table.numRows {
		return
	}
	row := &table.rows[t]
	if row.n == table.nMax {
		return
	}
	if nNew <= row.n {
		return
	}

	if nNew >= table.nMax {
		row.n = table.nMax
		table.numRows = t
	} else {
		row.n = nNew
	}
	row.recipe = recipe
	table.dirty = true
}
