package planner

// Table holds the best-known recipes for a single d, one row per t from
// 1 to numRows (row 0 is allocated but unused, matching the 1-indexed
// convention the rest of this package uses for t).
type Table struct {
	d        int
	numRows  int
	nMax     int64
	rows     []Row
	dirty    bool
	numLoops int
}

// newTable allocates a Table for the given d with capacity for t in
// [0, tMax], every row initialised to (n=t, recipe=Identity(t)) per
// spec.md's table-construction precondition (row 0 stays at its zero
// value and is never read through the public API).
func newTable(d int, tMax int, nMax int64) *Table {
	table := &Table{
		d:       d,
		numRows: tMax,
		nMax:    nMax,
		rows:    make([]Row, tMax+1),
	}
	for t := 1; t <= tMax; t++ {
		table.rows[t] = Row{
			n:      int64(t),
			recipe: Recipe{Kind: RecipeIdentity, T: t},
		}
	}

	return table
}

// D returns the table's d.
func (table *Table) D() int {
	return table.d
}

// NumRows returns the number of populated rows (t ranges over
// [1, NumRows]).
func (table *Table) NumRows() int {
	return table.numRows
}

// NMax returns the saturation ceiling this table was built with.
func (table *Table) NMax() int64 {
	return table.nMax
}

// Row returns a read-only view of row t (n and recipe, without
// materialising a CFF). The second return value is false if t is out of
// [1, NumRows].
func (table *Table) Row(t int) (Row, bool) {
	if t < 1 || t > table.numRows {
		return Row{}, false
	}

	return table.rows[t], true
}

// NumPlanningLoops returns the number of fixed-point iterations the
// planner took to converge this table (always 0 for d=1, which skips
// the loop entirely).
func (table *Table) NumPlanningLoops() int {
	return table.numLoops
}
