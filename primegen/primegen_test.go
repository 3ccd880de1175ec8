package primegen

import (
	"testing"

	"github.com/bastionzero/primal/numtheory"
	"github.com/stretchr/testify/require"
)

func TestRandomIsOddAndRightSize(t *testing.T) {
	for i := 0; i < 5; i++ {
		p := RandomWithWitnesses(4, 128, 10)
		require.True(t, p.IsEven() == false)
		require.LessOrEqual(t, p.BitLen(), 128)
		require.True(t, numtheory.IsProbablyPrime(p, 30))
	}
}

func TestSmallPrimeTableLength(t *testing.T) {
	require.Equal(t, 999, len(smallPrimes)) // first 1000 primes, minus 2
	require.Equal(t, uint64(3), smallPrimes[0])
	require.Equal(t, uint64(7919), smallPrimes[len(smallPrimes)-1])
}
