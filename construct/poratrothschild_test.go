package construct_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/construct"
	"github.com/stretchr/testify/require"
)

func TestPoratRothschild_Shape(t *testing.T) {
	t.Parallel()

	// r=2, q=4=p^a with p=2,a=2 (2r <= q < 4r: 4 <= 4 < 8).
	c, err := construct.PoratRothschild(2, 2, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 1, c.D()) // r-1
	require.Equal(t, 3*4, c.T())
	require.Equal(t, int64(4), c.N())
}

func TestPoratRothschild_InvalidParams(t *testing.T) {
	t.Parallel()

	_, err := construct.PoratRothschild(2, 2, 1, 1, 3)
	require.ErrorIs(t, err, construct.ErrInvalidParams)
}

// TestPoratEntropy_MatchesHandComputedValue pins PoratEntropy(q,r) to
// a value computed independently from spec.md §4.D's H_q(delta)
// formula (delta=(r-1)/r), so planner/seed.go's mStart derivation
// (ceil(k/(1-PoratEntropy(q,r)))) is built on a known-correct entropy
// value rather than on PoratEntropy's own behavior alone.
func TestPoratEntropy_MatchesHandComputedValue(t *testing.T) {
	t.Parallel()

	// q=7, r=3: Hq = (2/3)*log_7(9) + (1/3)*log_7(3) ≈ 0.9410.
	got := construct.PoratEntropy(7, 3)
	require.InDelta(t, 0.9410, got, 0.0005)
	require.Less(t, got, 1.0)
}
