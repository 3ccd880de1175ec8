package numtheory

import (
	"github.com/bastionzero/primal/bigrand"
	"github.com/bastionzero/primal/biguint"
)

// DefaultWitnesses is the Solovay–Strassen witness count this module
// targets, per spec.md §4.4's design target of 100 rounds.
const DefaultWitnesses = 100

// IsProbablyPrime runs the Solovay–Strassen test on odd candidate p for the
// given number of witness rounds. For each witness, a uniform random a in
// (0, p-1] is drawn (redrawing, without counting against the witness
// budget, any a that is 0 or >= p); the witness accepts iff
// (jacobi(a,p) == 1 and a^((p-1)/2) mod p == 1) or
// (jacobi(a,p) == -1 and a^((p-1)/2) mod p == p-1). A single failing
// witness proves p composite; p is declared probably prime only once every
// witness has accepted.
func IsProbablyPrime(p *biguint.BigUint, witnesses int) bool {
	width := p.Width()
	one := unit(width)
	two := biguint.New(width)
	two.SetUint64(2)

	if p.Cmp(two) < 0 {
		return false
	}
	if p.Cmp(two) == 0 {
		return true
	}
	if p.IsEven() {
		return false
	}

	pMinus1 := biguint.New(width)
	pMinus1.Sub(p, one)
	halfExp := biguint.Div(pMinus1, two)

	bits := p.BitLen()

	for w := 0; w < witnesses; w++ {
		a := drawWitness(width, bits, p)

		j := Jacobi(a, p)
		x := biguint.New(width)
		x.PowMod(a, halfExp, p)

		switch j {
		case 1:
			if x.Cmp(one) != 0 {
				return false
			}
		case -1:
			if x.Cmp(pMinus1) != 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// drawWitness draws a uniform random a with bit length at most bits(p),
// redrawing (without counting) any a that is 0 or >= p.
func drawWitness(width, bits int, p *biguint.BigUint) *biguint.BigUint {
	for {
		a := bigrand.BigUintWithMaxBits(width, bits)
		if a.IsZero() {
			continue
		}
		if a.Cmp(p) >= 0 {
			continue
		}
		return a
	}
}
