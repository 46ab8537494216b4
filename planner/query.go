package planner

import "github.com/mdemczyk/cfftables/cff"

// GetByT materialises the CFF planned for (d,t): the recipe the
// planning pass recorded as the best-known construction for exactly t
// rows. Returns ErrOutOfRange if d or t falls outside the populated
// table bounds, or ErrUnrealisable if a recipe in the tree failed to
// construct (propagated from the construct package).
func (ctx *Context) GetByT(d, t int) (*cff.CFF, error) {
	if ctx == nil || d < 1 || d > ctx.dMax {
		return nil, ErrOutOfRange
	}
	table := ctx.tables[d]
	if t < 1 || t > table.numRows {
		return nil, ErrOutOfRange
	}

	return ctx.realise(d, t)
}

// GetByN binary-searches table d for the smallest t whose planned n
// meets or exceeds n, then materialises that row. The returned CFF may
// have more columns than requested (result.N() >= n); callers wanting
// exactly n may call cff.CFF.ReduceN on the result. Returns
// ErrNotFound if even the largest planned row falls short of n.
func (ctx *Context) GetByN(d int, n int64) (*cff.CFF, error) {
	if ctx == nil || d < 1 || d > ctx.dMax {
		return nil, ErrOutOfRange
	}
	table := ctx.tables[d]
	t, ok := table.searchTForN(n)
	if !ok {
		return nil, ErrNotFound
	}

	return ctx.realise(d, t)
}
