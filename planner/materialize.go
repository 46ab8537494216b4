package planner

import (
	"fmt"

	"github.com/mdemczyk/cfftables/cff"
	"github.com/mdemczyk/cfftables/construct"
)

// cacheKey identifies one table cell visited during a single
// materialisation request.
type cacheKey struct {
	d, t int
}

// realise is the entry point for turning a planned (d,t) cell into a
// concrete CFF: it walks the recipe tree rooted at (d,t), memoising
// every visited cell's materialised CFF in that row's cachedCFF slot
// for the duration of this call (so recipes that share a child, e.g.
// two Kronecker rows both built from the same small seed, only build
// that child once), and frees every slot — including the root's —
// before returning. Memoisation is intra-request only: a second call
// to realise recomputes from scratch, matching spec.md's "no
// persistent caching across requests".
func (ctx *Context) realise(d, t int) (*cff.CFF, error) {
	var visited []cacheKey
	result, err := ctx.realiseNode(d, t, &visited)

	for _, key := range visited {
		ctx.tables[key.d].rows[key.t].cachedCFF = nil
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}

// realiseNode materialises a single (d,t) cell, returning its cached
// CFF if this request has already visited it, and otherwise
// dispatching to materialiseRecipe and recording the visit.
func (ctx *Context) realiseNode(d, t int, visited *[]cacheKey) (*cff.CFF, error) {
	if d < 1 || d > ctx.dMax {
		return nil, ErrOutOfRange
	}
	table := ctx.tables[d]
	if t < 1 || t > table.numRows {
		return nil, ErrOutOfRange
	}

	row := &table.rows[t]
	if row.cachedCFF != nil {
		return row.cachedCFF, nil
	}

	result, err := ctx.materialiseRecipe(d, t, row.recipe, visited)
	if err != nil {
		return nil, fmt.Errorf("planner: realise(d=%d,t=%d): %w: %v", d, t, ErrUnrealisable, err)
	}

	row.cachedCFF = result
	*visited = append(*visited, cacheKey{d: d, t: t})

	return result, nil
}

// materialiseRecipe interprets a single Recipe value: direct
// constructions build straight from their integer parameters; the
// recursive combiners first realise their children (in a different
// table only for OptKron, whose outer child is read from the d-1 table;
// Doubling's child comes from the d=2 table it belongs to) and then call
// the matching construct package combiner.
// This is the sole place any Recipe is interpreted — see doc.go.
func (ctx *Context) materialiseRecipe(d, t int, recipe Recipe, visited *[]cacheKey) (*cff.CFF, error) {
	switch recipe.Kind {
	case RecipeIdentity:
		return construct.Identity(d, recipe.T)
	case RecipeSperner:
		return construct.Sperner(recipe.T)
	case RecipeSTS:
		return construct.STS(recipe.V)
	case RecipePoratRothschild:
		return construct.PoratRothschild(recipe.P, recipe.A, recipe.K, recipe.R, recipe.M)
	case RecipeReedSolomon:
		return construct.ReedSolomon(recipe.P, recipe.A, recipe.K, recipe.M)
	case RecipeShortReedSolomon:
		return construct.ShortReedSolomon(recipe.P, recipe.A, recipe.K, recipe.M, recipe.S)
	case RecipeFixed:
		return construct.Fixed(recipe.V)

	case RecipeExtByOne:
		child, err := ctx.realiseNode(d, recipe.T, visited)
		if err != nil {
			return nil, err
		}

		return construct.ExtByOne(child)

	case RecipeAdditive:
		left, err := ctx.realiseNode(d, recipe.TLeft, visited)
		if err != nil {
			return nil, err
		}
		right, err := ctx.realiseNode(d, recipe.TRight, visited)
		if err != nil {
			return nil, err
		}

		return construct.Additive(left, right)

	case RecipeDoubling:
		child, err := ctx.realiseNode(2, recipe.T, visited)
		if err != nil {
			return nil, err
		}

		return construct.Doubling(child, recipe.S)

	case RecipeKronecker:
		left, err := ctx.realiseNode(d, recipe.TLeft, visited)
		if err != nil {
			return nil, err
		}
		right, err := ctx.realiseNode(d, recipe.TRight, visited)
		if err != nil {
			return nil, err
		}

		return construct.Kronecker(left, right)

	case RecipeOptKronecker:
		outer, err := ctx.realiseNode(d-1, recipe.SOuter, visited)
		if err != nil {
			return nil, err
		}
		inner, err := ctx.realiseNode(d, recipe.TInner, visited)
		if err != nil {
			return nil, err
		}
		bottom, err := ctx.realiseNode(d, recipe.TBottom, visited)
		if err != nil {
			return nil, err
		}

		return construct.OptimizedKronecker(outer, inner, bottom)

	default:
		return nil, ErrUnrealisable
	}
}
