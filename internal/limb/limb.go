// Package limb implements the single-word primitives BigUint is built from:
// overflow-checked add, sub and mul on a 64-bit limb, plus a leading-zero
// count. These are the only operations in the module permitted to lean on
// the compiler's own 128-bit-wide intrinsics; everything above this package
// composes limbs by hand instead of reaching for math/big.
package limb

import "math/bits"

// Add returns a+b+carryIn truncated to 64 bits, plus the carry out of the
// top bit (0 or 1).
func Add(a, b, carryIn uint64) (sum, carryOut uint64) {
	s, c := bits.Add64(a, b, carryIn)
	return s, c
}

// Sub returns a-b-borrowIn truncated to 64 bits, plus the borrow out of the
// top bit (0 or 1).
func Sub(a, b, borrowIn uint64) (diff, borrowOut uint64) {
	d, bOut := bits.Sub64(a, b, borrowIn)
	return d, bOut
}

// Mul returns the low and high 64-bit halves of a*b. Overflow of a plain
// 64-bit product is exactly hi != 0.
func Mul(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// LeadingZeros returns the number of leading zero bits in x, in [0, 64].
func LeadingZeros(x uint64) int {
	return bits.LeadingZeros64(x)
}
