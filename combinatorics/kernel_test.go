package combinatorics_test

import (
	"testing"

	"github.com/mdemczyk/cfftables/combinatorics"
	"github.com/stretchr/testify/require"
)

func TestChoose_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, k int
		want int64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{10, 3, 120},
		{23, 11, 1352078},
		{6, 3, 20},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, combinatorics.Choose(tc.n, tc.k), "Choose(%d,%d)", tc.n, tc.k)
	}
}

func TestChoose_InvalidInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(0), combinatorics.Choose(-1, 2))
	require.Equal(t, int64(0), combinatorics.Choose(2, -1))
	require.Equal(t, int64(0), combinatorics.Choose(2, 5))
}

func TestChoose_Overflow(t *testing.T) {
	t.Parallel()

	// C(1000, 500) vastly exceeds int64 range.
	require.Equal(t, int64(0), combinatorics.Choose(1000, 500))
}

func TestIPow(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, combinatorics.IPow(7, 0))
	require.Equal(t, 7, combinatorics.IPow(7, 1))
	require.Equal(t, 49, combinatorics.IPow(7, 2))
	require.Equal(t, 8, combinatorics.IPow(2, 3))
}

func TestPrimeSieve(t *testing.T) {
	t.Parallel()

	isPrime := combinatorics.PrimeSieve(20)
	want := map[int]bool{
		2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true,
	}
	for i, p := range isPrime {
		require.Equal(t, want[i], p, "prime(%d)", i)
	}
}

func TestKSubsetLexSuccessor(t *testing.T) {
	t.Parallel()

	// All 2-subsets of {0,1,2,3} in lexicographic order.
	buf := []int{0, 1}
	var got [][]int
	for {
		got = append(got, append([]int(nil), buf...))
		if !combinatorics.KSubsetLexSuccessor(4, 2, buf) {
			break
		}
	}
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	require.Equal(t, want, got)
}

func TestKTupleLexSuccessor(t *testing.T) {
	t.Parallel()

	buf := []int{0, 0}
	var got [][]int
	for {
		got = append(got, append([]int(nil), buf...))
		if !combinatorics.KTupleLexSuccessor(2, 2, buf) {
			break
		}
	}
	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	require.Equal(t, want, got)
}
