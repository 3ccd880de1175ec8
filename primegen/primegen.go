// Package primegen generates random probable primes: draw a random
// candidate of the requested bit width, force it odd, trial-divide it
// against the first ~1000 small primes, and fall back to Solovay–Strassen
// when trial division is inconclusive, redrawing on composite.
package primegen

import (
	"github.com/bastionzero/primal/bigrand"
	"github.com/bastionzero/primal/biguint"
	"github.com/bastionzero/primal/numtheory"
)

// Random draws a random probable prime of the given bit width using
// numtheory.DefaultWitnesses Solovay–Strassen rounds when trial division
// is inconclusive.
func Random(width, bits int) *biguint.BigUint {
	return RandomWithWitnesses(width, bits, numtheory.DefaultWitnesses)
}

// RandomWithWitnesses is Random with an explicit Solovay–Strassen witness
// count, for callers who want to trade confidence for speed (e.g. tests).
func RandomWithWitnesses(width, bits, witnesses int) *biguint.BigUint {
	for {
		candidate := bigrand.BigUintWithMaxBits(width, bits)
		if candidate.BitLen() == 0 {
			continue // degenerate all-zero draw before forcing the low bit
		}
		candidate.SetBit(0, 1) // force odd
		if isPrime(candidate, witnesses) {
			return candidate
		}
	}
}

// isPrime first trial-divides p against the small-prime table: if p is at
// or below a trial divisor, p is prime by construction; a zero remainder
// against any divisor marks it composite; otherwise it falls through to
// Solovay–Strassen.
func isPrime(p *biguint.BigUint, witnesses int) bool {
	width := p.Width()
	for _, sp := range smallPrimes {
		divisor := biguint.New(width)
		divisor.SetUint64(sp)

		if p.Cmp(divisor) <= 0 {
			return true
		}
		if biguint.Mod(p, divisor).IsZero() {
			return false
		}
	}
	return numtheory.IsProbablyPrime(p, witnesses)
}
