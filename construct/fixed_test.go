package construct_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/construct"
	"github.com/stretchr/testify/require"
)

func TestFixed_ProducesVerifiedCFF(t *testing.T) {
	t.Parallel()

	c, err := construct.Fixed(10)
	require.NoError(t, err)
	require.Equal(t, 2, c.D())
	require.Equal(t, 10, c.T())
	require.Greater(t, c.N(), int64(0))

	ok, err := c.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFixed_OutOfRange(t *testing.T) {
	t.Parallel()

	_, err := construct.Fixed(9)
	require.ErrorIs(t, err, construct.ErrInvalidParams)

	_, err = construct.Fixed(24)
	require.ErrorIs(t, err, construct.ErrInvalidParams)
}
