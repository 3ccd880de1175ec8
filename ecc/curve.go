// Package ecc implements the boundary-only elliptic-curve surface named in
// spec.md §4.8: domain-parameter records for short-Weierstrass curves and
// point arithmetic (sum, double, inverse, scalar multiplication) over
// affine coordinates. Only affine short-Weierstrass is fully specified;
// other coordinate systems and curve expressions are named but rejected at
// the boundary, matching the source's own scope.
//
// Field and scalar arithmetic is built entirely on this module's own
// biguint package rather than a dedicated field-element type (contrast
// ModChain-secp256k1's fieldVal, which this package is grounded on for
// naming and domain-parameter shape): the curves this package targets fit
// comfortably in a fixed 256-bit BigUint width, and reusing the existing
// modular arithmetic keeps the boundary consistent with the rest of the
// module instead of introducing a second bignum representation.
package ecc

import (
	"encoding/hex"

	"github.com/bastionzero/primal/biguint"
)

// Expression identifies the algebraic form of a curve's defining equation.
type Expression int

const (
	ShortWeierstrass Expression = iota
	Montgomery
	TwistedEdwards
)

// CoordinateSystem identifies how a point's coordinates are represented.
type CoordinateSystem int

const (
	Affine CoordinateSystem = iota
	Jacobian
	Compressed
)

// Curve is a short-Weierstrass domain-parameter record: y^2 = x^3 + ax + b
// over the field Z/pZ, with base point (Gx, Gy) of order N.
type Curve struct {
	Expression Expression
	Width      int

	P *biguint.BigUint
	A *biguint.BigUint
	B *biguint.BigUint

	Gx *biguint.BigUint
	Gy *biguint.BigUint
	N  *biguint.BigUint
}

func hexToBigUint(width int, s string) *biguint.BigUint {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("ecc: invalid hex constant: " + err.Error())
	}
	z := biguint.New(width)
	full := make([]byte, 8*width)
	copy(full[len(full)-len(b):], b)
	if _, err := z.SetBytesBE(full); err != nil {
		panic(err)
	}
	return z
}

// Secp256k1 returns the domain parameters for the secp256k1 curve
// (y^2 = x^3 + 7 over F_p), per SEC 2 §2.4.1.
func Secp256k1() *Curve {
	const width = 4 // 256 bits = 4 * 64-bit limbs

	c := &Curve{
		Expression: ShortWeierstrass,
		Width:      width,
		P:          hexToBigUint(width, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		A:          biguint.New(width),
		B:          biguint.New(width),
		Gx:         hexToBigUint(width, "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Gy:         hexToBigUint(width, "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		N:          hexToBigUint(width, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
	}
	c.B.SetUint64(7)
	return c
}

// BasePoint returns the curve's generator as an affine Point.
func (c *Curve) BasePoint() *Point {
	return &Point{Curve: c, Coord: Affine, X: c.Gx.Clone(), Y: c.Gy.Clone()}
}
