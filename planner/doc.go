// Package planner implements the dynamic-programming table of
// best-known CFF recipes and the lazy materialiser that turns a
// recipe into a concrete *cff.CFF.
//
// A Context owns one Table per d in [1,d_max]. Table construction runs
// a fixed-point loop per d: seeders (direct constructions) propose new
// rows once, then combiners (doubling, extend-by-one, additive,
// Kronecker, optimised Kronecker) repeatedly propose derived rows from
// already-known rows until a full pass leaves nothing improved. d=1 is
// special-cased — a Sperner system is always optimal, so its table is
// filled directly with no loop.
//
// Recipes are plain tagged values (see Recipe); the planner never
// stores a materialised CFF except transiently, as an intra-request
// memo during Context.GetByT/GetByN, cleared before the call returns.
// This keeps the knot the source C implementation had between planner
// and combiner (mutual recursion through function pointers) broken:
// the planner only ever reads and writes Row.n/Row.recipe, and
// materialise.go is the sole place a Recipe is interpreted into calls
// against the construct package.
package planner
