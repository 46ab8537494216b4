package construct_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/construct"
	"github.com/stretchr/testify/require"
)

func TestOptimizedKronecker_Shape(t *testing.T) {
	t.Parallel()

	outer, err := construct.Sperner(3) // 1-CFF(3,3)
	require.NoError(t, err)
	inner, err := construct.Identity(2, 4) // 2-CFF(4,4)
	require.NoError(t, err)
	bottom, err := construct.Identity(2, 3) // 2-CFF(3,3)
	require.NoError(t, err)

	product, err := construct.OptimizedKronecker(outer, inner, bottom)
	require.NoError(t, err)
	require.Equal(t, 2, product.D())
	require.Equal(t, outer.T()*inner.T()+bottom.T(), product.T())
	require.Equal(t, bottom.N()*inner.N(), product.N())
}

func TestOptimizedKronecker_OuterWiderThanBottom(t *testing.T) {
	t.Parallel()

	outer, err := construct.Sperner(5) // 1-CFF(4,5)
	require.NoError(t, err)
	inner, err := construct.Identity(2, 4) // 2-CFF(4,4)
	require.NoError(t, err)
	bottom, err := construct.Identity(2, 3) // 2-CFF(3,3)
	require.NoError(t, err)
	require.Greater(t, outer.N(), bottom.N())

	product, err := construct.OptimizedKronecker(outer, inner, bottom)
	require.NoError(t, err)
	require.Equal(t, 2, product.D())
	require.Equal(t, outer.T()*inner.T()+bottom.T(), product.T())
	require.Equal(t, bottom.N()*inner.N(), product.N())

	ok, err := product.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOptimizedKronecker_OuterNarrowerThanBottomRejected(t *testing.T) {
	t.Parallel()

	outer, err := construct.Sperner(3) // 1-CFF(3,3)
	require.NoError(t, err)
	inner, err := construct.Identity(2, 4) // 2-CFF(4,4)
	require.NoError(t, err)
	bottom, err := construct.Identity(2, 5) // 2-CFF(5,5)
	require.NoError(t, err)

	_, err = construct.OptimizedKronecker(outer, inner, bottom)
	require.ErrorIs(t, err, construct.ErrInvalidParams)
}

func TestOptimizedKronecker_RequiresDMinusOneOuter(t *testing.T) {
	t.Parallel()

	outer, err := construct.Identity(2, 3)
	require.NoError(t, err)
	inner, err := construct.Identity(2, 4)
	require.NoError(t, err)
	bottom, err := construct.Identity(2, 3)
	require.NoError(t, err)

	_, err = construct.OptimizedKronecker(outer, inner, bottom)
	require.ErrorIs(t, err, construct.ErrMismatchedD)
}
