package planner

import "fmt"

// RecipeKind tags which construction a Recipe invokes at materialisation
// time. The zero value, RecipeIdentity, is also the initial recipe every
// table row starts with.
type RecipeKind int

const (
	RecipeIdentity RecipeKind = iota
	RecipeSperner
	RecipeSTS
	RecipePoratRothschild
	RecipeReedSolomon
	RecipeShortReedSolomon
	RecipeFixed
	RecipeExtByOne
	RecipeAdditive
	RecipeDoubling
	RecipeKronecker
	RecipeOptKronecker
)

// Recipe is a tagged, integer-payload description of how to build a
// single table cell's CFF: either a direct construction from scalar
// parameters, or a recursive combination of one or two children already
// present (possibly at a different t, or in the d-1 table). Recipes are
// plain values — comparable, serialisable in spirit — with no
// function-pointer dispatch; Context.materialiseRecipe (in
// materialize.go) is the sole place that interprets them.
type Recipe struct {
	Kind RecipeKind

	// Direct-construction scalar parameters. T is the sole argument for
	// Identity and Sperner, in both cases the value passed as the
	// construction's "n" parameter (for Identity that happens to equal
	// the row's own t, since Identity(d,n) yields t=n).
	T                int
	V                int // STS(v), Fixed(v)
	P, A, K, M, R, S int // field/RS/ShortRS/PR parameters

	// Recursive-combination child references: table row indices, not
	// construction arguments. ExtByOne and Doubling reuse T for their
	// single child's t (Doubling's child is always read from the d=2
	// table). TLeft/TRight/TInner/TBottom index the *same* d's table;
	// SOuter indexes the d-1 table.
	TLeft, TRight   int
	TInner, TBottom int
	SOuter          int
}

// ShortName returns the construction's short label, matching the
// vocabulary of the system's persisted-report grammar.
func (r Recipe) ShortName() string {
	switch r.Kind {
	case RecipeIdentity:
		return "ID"
	case RecipeSperner:
		return "Sperner"
	case RecipeSTS:
		return "STS"
	case RecipePoratRothschild:
		return "Porat and Rothschild"
	case RecipeReedSolomon:
		return "Reed-Solomon"
	case RecipeShortReedSolomon:
		return "Shortened Reed-Solomon"
	case RecipeFixed:
		return "Constant-weight binary code"
	case RecipeExtByOne:
		return "Extension by one"
	case RecipeAdditive:
		return "Additive"
	case RecipeDoubling:
		return "Doubling"
	case RecipeKronecker:
		return "Kronecker"
	case RecipeOptKronecker:
		return "Optimized Kronecker"
	default:
		return "Unknown"
	}
}

// LongName returns the construction's fully-parameterised label,
// following the grammar:
//
//	ID(t) | Sp(n) | STS(v) | PR(p;a;k;r) | RS(p^a;k;m) | SRS(p;a;k;m;s) |
//	Survey CFF t | Extension by one of t' | Add(t1;t2) | Dbl(t';s) |
//	Kr(t1;t2) | OKr(t_I;t_B;s)
func (r Recipe) LongName() string {
	switch r.Kind {
	case RecipeIdentity:
		return fmt.Sprintf("ID(%d)", r.T)
	case RecipeSperner:
		return fmt.Sprintf("Sp(%d)", r.T)
	case RecipeSTS:
		return fmt.Sprintf("STS(%d)", r.V)
	case RecipePoratRothschild:
		return fmt.Sprintf("PR(%d;%d;%d;%d)", r.P, r.A, r.K, r.R)
	case RecipeReedSolomon:
		return fmt.Sprintf("RS(%d^%d;%d;%d)", r.P, r.A, r.K, r.M)
	case RecipeShortReedSolomon:
		return fmt.Sprintf("SRS(%d;%d;%d;%d;%d)", r.P, r.A, r.K, r.M, r.S)
	case RecipeFixed:
		return fmt.Sprintf("Survey CFF %d", r.V)
	case RecipeExtByOne:
		return fmt.Sprintf("Extension by one of %d", r.T)
	case RecipeAdditive:
		return fmt.Sprintf("Add(%d;%d)", r.TLeft, r.TRight)
	case RecipeDoubling:
		return fmt.Sprintf("Dbl(%d;%d)", r.T, r.S)
	case RecipeKronecker:
		return fmt.Sprintf("Kr(%d;%d)", r.TLeft, r.TRight)
	case RecipeOptKronecker:
		return fmt.Sprintf("OKr(%d;%d;%d)", r.TInner, r.TBottom, r.SOuter)
	default:
		return "Unknown"
	}
}
