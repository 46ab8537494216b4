package planner

// Context is the root object: an ordered array of per-d tables sharing
// a common t_max/n_max. Its lifetime covers every query the caller
// intends to issue against it. A Context is not safe for concurrent
// use — each concurrent caller must own its own Context, matching
// spec.md's single-threaded, synchronous concurrency model.
type Context struct {
	dMax   int
	tMax   int
	nMax   int64
	tables []*Table // 1-indexed; tables[0] is unused
}

// Create builds a Context by planning every table from d=1 to d_max in
// order: t_max is first clamped to n_max (a row can never usefully
// exceed the saturation ceiling), then each table is seeded and run to
// a fixed point before the next d begins — later tables depend on
// earlier ones (doubling and optimised Kronecker read the d-1 table),
// so the increasing-d order is load-bearing, not incidental.
func Create(dMax, tMax int, nMax int64) (*Context, error) {
	if dMax < 1 || tMax < 1 || nMax < 1 {
		return nil, ErrInvalidShape
	}
	if int64(tMax) > nMax {
		tMax = int(nMax)
	}

	ctx := &Context{
		dMax:   dMax,
		tMax:   tMax,
		nMax:   nMax,
		tables: make([]*Table, dMax+1),
	}
	for d := 1; d <= dMax; d++ {
		ctx.tables[d] = newTable(d, tMax, nMax)
	}
	for d := 1; d <= dMax; d++ {
		ctx.planTable(d)
	}

	return ctx, nil
}

// DMax returns the largest d this Context was built with.
func (ctx *Context) DMax() int {
	if ctx == nil {
		return 0
	}

	return ctx.dMax
}

// TMax returns the (possibly n_max-clamped) t_max this Context was
// built with.
func (ctx *Context) TMax() int {
	if ctx == nil {
		return 0
	}

	return ctx.tMax
}

// NMax returns the saturation ceiling this Context was built with.
func (ctx *Context) NMax() int64 {
	if ctx == nil {
		return 0
	}

	return ctx.nMax
}

// Table returns the planned table for d, or nil if d is out of
// [1,d_max].
func (ctx *Context) Table(d int) *Table {
	if ctx == nil || d < 1 || d > ctx.dMax {
		return nil
	}

	return ctx.tables[d]
}
