package ecc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/bastionzero/primal/biguint"
)

var bigUintComparer = cmp.Comparer(func(a, b *biguint.BigUint) bool {
	return a.Cmp(b) == 0
})

func pointsEqual(a, b *Point) bool {
	if a.Infinity != b.Infinity {
		return false
	}
	if a.Infinity {
		return true
	}
	return cmp.Equal(a.X, b.X, bigUintComparer) && cmp.Equal(a.Y, b.Y, bigUintComparer)
}

func TestSecp256k1GeneratorIsOnCurve(t *testing.T) {
	c := Secp256k1()
	require.True(t, c.IsOnCurve(c.BasePoint()))
}

func TestDoubleMatchesAddToSelf(t *testing.T) {
	c := Secp256k1()
	g := c.BasePoint()

	doubled, err := c.Double(g)
	require.NoError(t, err)

	summed, err := c.Sum(g, g)
	require.NoError(t, err)

	require.True(t, pointsEqual(doubled, summed))
	require.True(t, c.IsOnCurve(doubled))
}

func TestAddIdentityIsNoop(t *testing.T) {
	c := Secp256k1()
	g := c.BasePoint()

	sum, err := c.Sum(g, c.Infinity())
	require.NoError(t, err)
	require.True(t, pointsEqual(sum, g))
}

func TestPointPlusInverseIsInfinity(t *testing.T) {
	c := Secp256k1()
	g := c.BasePoint()

	neg, err := c.Inverse(g)
	require.NoError(t, err)

	sum, err := c.Sum(g, neg)
	require.NoError(t, err)
	require.True(t, sum.Infinity)
}

func TestScalarMulByTwoMatchesDouble(t *testing.T) {
	c := Secp256k1()
	g := c.BasePoint()

	two := biguint.New(c.Width)
	two.SetUint64(2)

	viaScalar, err := c.ScalarMul(g, two)
	require.NoError(t, err)

	viaDouble, err := c.Double(g)
	require.NoError(t, err)

	require.True(t, pointsEqual(viaScalar, viaDouble))
}

func TestScalarMulByCurveOrderIsInfinity(t *testing.T) {
	c := Secp256k1()
	g := c.BasePoint()

	result, err := c.ScalarMul(g, c.N)
	require.NoError(t, err)
	require.True(t, result.Infinity)
}

func TestScalarMulByZeroIsInfinity(t *testing.T) {
	c := Secp256k1()
	g := c.BasePoint()

	zero := biguint.New(c.Width)
	result, err := c.ScalarMul(g, zero)
	require.NoError(t, err)
	require.True(t, result.Infinity)
}

func TestMismatchedExpressionRejected(t *testing.T) {
	c := Secp256k1()
	bad := &Point{
		Curve: &Curve{Expression: Montgomery, Width: c.Width},
		Coord: Affine,
		X:     biguint.New(c.Width),
		Y:     biguint.New(c.Width),
	}
	_, err := c.Sum(c.BasePoint(), bad)
	require.ErrorIs(t, err, ErrCurveUnsupportedExpression)
}
