package construct_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/combinatorics"
	"github.com/mdemczyk/cfftables/construct"
	"github.com/stretchr/testify/require"
)

func TestDoubling_Shape(t *testing.T) {
	t.Parallel()

	x, err := construct.STS(9)
	require.NoError(t, err)

	s := 0
	for combinatorics.Choose(s, s/2) <= x.N() {
		s++
	}
	require.Equal(t, 6, s)

	doubled, err := construct.Doubling(x, s)
	require.NoError(t, err)
	require.Equal(t, 2, doubled.D())
	require.Equal(t, x.T()+s+2, doubled.T()) // s even -> 2 parity rows
	require.Equal(t, x.N()*2, doubled.N())

	ok, err := doubled.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDoubling_NilOperand(t *testing.T) {
	t.Parallel()

	_, err := construct.Doubling(nil, 4)
	require.ErrorIs(t, err, construct.ErrNilOperand)
}
