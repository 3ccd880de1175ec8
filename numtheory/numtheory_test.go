package numtheory

import (
	"testing"

	"github.com/bastionzero/primal/biguint"
	"github.com/stretchr/testify/require"
)

const width = 2 // 128 bits, plenty for small-value unit tests

func mk(v uint64) *biguint.BigUint {
	z := biguint.New(width)
	z.SetUint64(v)
	return z
}

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want uint64 }{
		{48, 18, 6},
		{17, 5, 1},
		{0, 7, 7},
		{270, 192, 6},
	}
	for _, c := range cases {
		got := GCD(mk(c.a), mk(c.b))
		require.Equal(t, c.want, got.Limbs()[0], "gcd(%d,%d)", c.a, c.b)
	}
}

func TestLCMTimesGCDEqualsProduct(t *testing.T) {
	pairs := [][2]uint64{{4, 6}, {21, 6}, {17, 13}, {0, 5}}
	for _, p := range pairs {
		a, b := mk(p[0]), mk(p[1])
		g := GCD(a, b)
		l := LCM(a, b)

		if a.IsZero() || b.IsZero() {
			require.True(t, l.IsZero())
			continue
		}
		lhs := biguint.New(width)
		lhs.Mul(l, g)
		rhs := biguint.New(width)
		rhs.Mul(a, b)
		require.Equal(t, 0, lhs.Cmp(rhs))
	}
}

func TestExtendedEuclidBezoutIdentity(t *testing.T) {
	pairs := [][2]uint64{{35, 15}, {101, 13}, {240, 46}, {17, 5}}
	for _, p := range pairs {
		a, b := mk(p[0]), mk(p[1])
		res := ExtendedEuclid(a, b)

		as := biguint.New(width)
		as.Mul(a, res.S)
		bt := biguint.New(width)
		bt.Mul(b, res.T)

		var lhs *biguint.BigUint
		if res.SignS > 0 && res.SignT > 0 {
			lhs = biguint.New(width)
			lhs.Add(as, bt)
		} else if res.SignS > 0 && res.SignT < 0 {
			lhs = biguint.New(width)
			lhs.Sub(as, bt)
		} else if res.SignS < 0 && res.SignT > 0 {
			lhs = biguint.New(width)
			lhs.Sub(bt, as)
		} else {
			continue // both negative cannot satisfy a positive gcd for positive a,b
		}
		require.Equal(t, 0, lhs.Cmp(res.R), "a=%d b=%d", p[0], p[1])
	}
}

func TestModInverse(t *testing.T) {
	inv := ModInverse(mk(3), mk(11))
	z := biguint.New(width)
	z.MulMod(inv, mk(3), mk(11))
	require.Equal(t, uint64(1), z.Limbs()[0])

	// gcd(2, 4) = 2, no inverse -> sentinel zero
	none := ModInverse(mk(2), mk(4))
	require.True(t, none.IsZero())
}

func TestJacobiKnownValues(t *testing.T) {
	cases := []struct {
		a, n uint64
		want int
	}{
		{1, 1, 1},
		{15, 17, 1},
		{2, 3, -1},
		{30, 59, -1},
		{5, 21, 1},
	}
	for _, c := range cases {
		got := Jacobi(mk(c.a), mk(c.n))
		require.Equal(t, c.want, got, "jacobi(%d,%d)", c.a, c.n)
	}
}

func TestIsProbablyPrimeSmallPrimesAndComposites(t *testing.T) {
	primes := []uint64{3, 5, 7, 11, 13, 101, 7919}
	for _, p := range primes {
		require.True(t, IsProbablyPrime(mk(p), 20), "%d should be prime", p)
	}

	composites := []uint64{9, 15, 21, 221, 341} // 341 is a base-2 Fermat pseudoprime
	for _, c := range composites {
		require.False(t, IsProbablyPrime(mk(c), 20), "%d should be composite", c)
	}
}
