package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestApplyOptKronPairs_SufficiencyNotEquality exercises
// applyOptKronPairs against a hand-built d=1/d=2 table pair where the
// bottom row's n has no exact match anywhere in the outer table, only
// a larger one — the case the original cff_table_add_pair_constructed_cffs
// handles via a "smallest row with n >= target" search. An equality
// gate would skip this combination entirely.
func TestApplyOptKronPairs_SufficiencyNotEquality(t *testing.T) {
	t.Parallel()

	outer := newTable(1, 4, 1000)
	outer.rows[1].n = 1
	outer.rows[2].n = 3
	outer.rows[3].n = 5
	outer.rows[4].n = 7

	table := newTable(2, 6, 1000)
	table.rows[1].n = 2 // will serve as the inner operand, n=2
	table.rows[2].n = 4 // will serve as the bottom operand, n=4

	ctx := &Context{
		dMax:   2,
		tMax:   6,
		nMax:   1000,
		tables: []*Table{nil, outer, table},
	}

	table.dirty = false
	ctx.applyOptKronPairs(2, table)

	require.True(t, table.dirty)

	row, ok := table.Row(5)
	require.True(t, ok)
	require.Equal(t, RecipeOptKronecker, row.Recipe().Kind)
	require.Equal(t, int64(8), row.N()) // nInner(2) * nBottom(4)

	recipe := row.Recipe()
	require.Equal(t, 1, recipe.TInner)
	require.Equal(t, 2, recipe.TBottom)
	require.Equal(t, 3, recipe.SOuter) // smallest outer row with n >= 4 is row 3 (n=5), not an exact match

	outerRow, ok := outer.Row(recipe.SOuter)
	require.True(t, ok)
	require.Greater(t, outerRow.N(), table.rows[recipe.TBottom].n)
}
