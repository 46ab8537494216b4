package construct_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/construct"
	"github.com/stretchr/testify/require"
)

func TestSTS_Nine(t *testing.T) {
	t.Parallel()

	c, err := construct.STS(9)
	require.NoError(t, err)
	require.Equal(t, 2, c.D())
	require.Equal(t, 9, c.T())
	require.Equal(t, int64(12), c.N())

	ok, err := c.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSTS_Thirteen(t *testing.T) {
	t.Parallel()

	c, err := construct.STS(13)
	require.NoError(t, err)
	require.Equal(t, 2, c.D())
	require.Equal(t, 13, c.T())
	require.Equal(t, int64(26), c.N())

	ok, err := c.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSTS_InvalidOrder(t *testing.T) {
	t.Parallel()

	_, err := construct.STS(14)
	require.ErrorIs(t, err, construct.ErrInvalidParams)
}
