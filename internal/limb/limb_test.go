package limb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b, carryIn   uint64
		wantSum, wantCy uint64
	}{
		{1, 2, 0, 3, 0},
		{math.MaxUint64, 1, 0, 0, 1},
		{math.MaxUint64, math.MaxUint64, 1, math.MaxUint64, 1},
		{0, 0, 1, 1, 0},
	}
	for _, c := range cases {
		sum, cy := Add(c.a, c.b, c.carryIn)
		require.Equal(t, c.wantSum, sum)
		require.Equal(t, c.wantCy, cy)
	}
}

func TestSub(t *testing.T) {
	cases := []struct {
		a, b, borrowIn    uint64
		wantDiff, wantBor uint64
	}{
		{5, 3, 0, 2, 0},
		{0, 1, 0, math.MaxUint64, 1},
		{0, 0, 1, math.MaxUint64, 1},
	}
	for _, c := range cases {
		d, bo := Sub(c.a, c.b, c.borrowIn)
		require.Equal(t, c.wantDiff, d)
		require.Equal(t, c.wantBor, bo)
	}
}

func TestMul(t *testing.T) {
	lo, hi := Mul(math.MaxUint64, math.MaxUint64)
	require.Equal(t, uint64(1), lo)
	require.Equal(t, uint64(math.MaxUint64-1), hi)

	lo, hi = Mul(2, 3)
	require.Equal(t, uint64(6), lo)
	require.Equal(t, uint64(0), hi)
}

func TestLeadingZeros(t *testing.T) {
	require.Equal(t, 64, LeadingZeros(0))
	require.Equal(t, 63, LeadingZeros(1))
	require.Equal(t, 0, LeadingZeros(math.MaxUint64))
	require.Equal(t, 32, LeadingZeros(1<<31))
}
