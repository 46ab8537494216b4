package construct_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/construct"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	c, err := construct.Identity(2, 5)
	require.NoError(t, err)
	require.Equal(t, 2, c.D())
	require.Equal(t, 5, c.T())
	require.Equal(t, int64(5), c.N())

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v, err := c.Get(i, int64(j))
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1, v)
			} else {
				require.Equal(t, 0, v)
			}
		}
	}
}

func TestIdentity_RequiresDLessThanN(t *testing.T) {
	t.Parallel()

	_, err := construct.Identity(10, 10)
	require.ErrorIs(t, err, construct.ErrInvalidParams)
}
