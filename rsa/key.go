package rsa

import (
	"fmt"

	"github.com/bastionzero/primal/biguint"
	"github.com/bastionzero/primal/numtheory"
	"github.com/bastionzero/primal/primegen"
)

// PublicExponent is the fixed public exponent this package always uses,
// per spec.md §4.7.
const PublicExponent = 65537

// PublicKey is the pair (N, E). N is a BigUint of width bitSize/64; E is
// held as a uint64.
type PublicKey struct {
	N       *biguint.BigUint
	E       uint64
	BitSize int
}

// PrivateKey is the private exponent D, together with the matching public
// key and key bit-size.
type PrivateKey struct {
	PublicKey
	D *biguint.BigUint
}

// GenerateKey draws a fresh RSA key pair of the given bit size (a multiple
// of 64), following spec.md §4.7:
//
//  1. draw random primes p, q of bit size bitSize/2
//  2. n <- p*q
//  3. lambda(n) <- lcm(p-1, q-1)
//  4. e <- 65537
//  5. d <- e^-1 mod lambda(n)
//
// Per the REDESIGN FLAGS in spec.md §9, gcd(e, lambda(n)) == 1 is checked
// explicitly before computing d; on failure the prime draw is retried
// rather than only being discovered via ModInverse's sentinel zero return.
func GenerateKey(bitSize int) (*PrivateKey, error) {
	if bitSize <= 0 || bitSize%64 != 0 {
		return nil, fmt.Errorf("rsa: bit size must be a positive multiple of 64, got %d", bitSize)
	}
	width := bitSize / 64
	halfBits := bitSize / 2

	e := biguint.New(width)
	e.SetUint64(PublicExponent)

	for {
		p := primegen.Random(width, halfBits)
		q := primegen.Random(width, halfBits)
		if p.Cmp(q) == 0 {
			continue
		}

		n := biguint.New(width)
		n.Mul(p, q)

		one := biguint.New(width)
		one.SetUint64(1)
		pMinus1 := biguint.New(width)
		pMinus1.Sub(p, one)
		qMinus1 := biguint.New(width)
		qMinus1.Sub(q, one)

		lambda := numtheory.LCM(pMinus1, qMinus1)

		g := numtheory.GCD(e, lambda)
		gOne := biguint.New(width)
		gOne.SetUint64(1)
		if g.Cmp(gOne) != 0 {
			continue // e not coprime to lambda(n); redraw p, q
		}

		d := numtheory.ModInverse(e, lambda)
		if d.IsZero() {
			continue // defensive: ModInverse's own sentinel for gcd != 1
		}

		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: PublicExponent, BitSize: bitSize},
			D:         d,
		}, nil
	}
}

// k returns the byte length of the modulus, ceil(bits(n)/8).
func (pub *PublicKey) k() int {
	return (pub.N.BitLen() + 7) / 8
}
