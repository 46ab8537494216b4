package planner

import "github.com/mdemczyk/cfftables/cff"

// Row is one table entry: the best-known column count n for a given t,
// the recipe that achieves it, and a materialisation-scoped cache slot.
type Row struct {
	n      int64
	recipe Recipe

	// cachedCFF is populated only during the scope of a single realise
	// call (see materialize.go) and is nil otherwise.
	cachedCFF *cff.CFF
}

// N returns the row's best-known column count.
func (row Row) N() int64 {
	return row.n
}

// Recipe returns the row's current recipe.
func (row Row) Recipe() Recipe {
	return row.recipe
}
