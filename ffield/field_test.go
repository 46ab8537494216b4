package ffield_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/ffield"
	"github.com/stretchr/testify/require"
)

func TestNew_PrimeField(t *testing.T) {
	t.Parallel()

	f, err := ffield.New(5, 1)
	require.NoError(t, err)
	require.Equal(t, 5, f.Q)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			require.Equal(t, (i+j)%5, f.Add[i][j], "Add[%d][%d]", i, j)
			require.Equal(t, (i*j)%5, f.Mul[i][j], "Mul[%d][%d]", i, j)
		}
	}
}

func TestNew_ExtensionField(t *testing.T) {
	t.Parallel()

	f, err := ffield.New(2, 2)
	require.NoError(t, err)
	require.Equal(t, 4, f.Q)

	// F_4 is a field: every nonzero element has a multiplicative inverse
	// and the tables are symmetric with 0/1 as additive/multiplicative
	// identities.
	for i := 0; i < f.Q; i++ {
		require.Equal(t, i, f.Add[i][0], "0 is additive identity")
		require.Equal(t, 0, f.Add[i][f.AddInv[i]])
		if i == 0 {
			require.Equal(t, -1, f.MulInv[i])
			continue
		}
		require.Equal(t, i, f.Mul[i][1], "1 is multiplicative identity")
		require.Equal(t, 1, f.Mul[i][f.MulInv[i]])
	}
	for i := 0; i < f.Q; i++ {
		for j := 0; j < f.Q; j++ {
			require.Equal(t, f.Add[i][j], f.Add[j][i])
			require.Equal(t, f.Mul[i][j], f.Mul[j][i])
		}
	}
}

func TestNew_InvalidParams(t *testing.T) {
	t.Parallel()

	_, err := ffield.New(1, 1)
	require.ErrorIs(t, err, ffield.ErrInvalidFieldParams)

	_, err = ffield.New(5, 0)
	require.ErrorIs(t, err, ffield.ErrInvalidFieldParams)

	_, err = ffield.New(2, 31)
	require.ErrorIs(t, err, ffield.ErrInvalidFieldParams)
}

func TestHornerEval(t *testing.T) {
	t.Parallel()

	// Over F_5: P(x) = 2 + 3x + x^2, evaluated at x=2: 2 + 6 + 4 = 12 = 2 mod 5.
	f, err := ffield.New(5, 1)
	require.NoError(t, err)

	got, err := f.HornerEval([]int{2, 3, 1}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, got)
}
