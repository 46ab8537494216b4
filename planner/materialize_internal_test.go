package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRealise_ClearsCacheAfterRequest(t *testing.T) {
	t.Parallel()

	ctx, err := Create(2, 40, 2000)
	require.NoError(t, err)

	result, err := ctx.GetByT(2, 22)
	require.NoError(t, err)
	require.NotNil(t, result)

	for d := 1; d <= ctx.dMax; d++ {
		table := ctx.tables[d]
		for tt := 1; tt <= table.numRows; tt++ {
			require.Nil(t, table.rows[tt].cachedCFF, "d=%d t=%d cache not cleared", d, tt)
		}
	}
}

func TestRealise_SharedChildRecipeBuildsValidCFF(t *testing.T) {
	t.Parallel()

	ctx, err := Create(2, 40, 2000)
	require.NoError(t, err)

	table := ctx.Table(2)
	row18, ok := table.Row(18)
	require.True(t, ok)

	// Force a recipe that shares a child with itself (Additive(9,9))
	// regardless of what the fixed point converged to, to exercise the
	// shared-child memoisation path deterministically.
	table.rows[9].recipe = Recipe{Kind: RecipeSTS, V: 9}
	table.rows[9].n = 12
	table.rows[18].recipe = Recipe{Kind: RecipeAdditive, TLeft: 9, TRight: 9}
	table.rows[18].n = 24
	_ = row18

	result, err := ctx.GetByT(2, 18)
	require.NoError(t, err)
	require.Equal(t, 18, result.T())
	require.Equal(t, int64(24), result.N())

	ok2, err := result.Verify()
	require.NoError(t, err)
	require.True(t, ok2)
}
