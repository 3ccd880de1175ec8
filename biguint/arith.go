package biguint

import "github.com/bastionzero/primal/internal/limb"

// addLimbs ripples a+b with carry-in c0 across equal-length slices,
// returning the sum (same length as a) and the final carry out of the top
// limb.
func addLimbs(a, b []uint64, c0 uint64) ([]uint64, uint64) {
	out := make([]uint64, len(a))
	carry := c0
	for i := range a {
		out[i], carry = limb.Add(a[i], b[i], carry)
	}
	return out, carry
}

// subLimbs ripples a-b with borrow-in b0 across equal-length slices,
// returning the difference and the final borrow out of the top limb.
func subLimbs(a, b []uint64, b0 uint64) ([]uint64, uint64) {
	out := make([]uint64, len(a))
	borrow := b0
	for i := range a {
		out[i], borrow = limb.Sub(a[i], b[i], borrow)
	}
	return out, borrow
}

// mulLimbsWide computes the full, unreduced product of two equal-length
// operands into a result twice as wide, using the schoolbook O(N^2) scheme:
// for each (i, j) pair, widen-multiply into a 128-bit partial product and
// accumulate it into the output with two carry chains, one for the addition
// of the partial product and one for the carry produced by that addition.
func mulLimbsWide(a, b []uint64) []uint64 {
	n := len(a)
	out := make([]uint64, 2*n)
	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < n; j++ {
			lo, hi := limb.Mul(a[i], b[j])
			var c uint64
			lo, c = limb.Add(lo, out[i+j], 0)
			hi, _ = limb.Add(hi, 0, c)
			lo, c = limb.Add(lo, carry, 0)
			hi, _ = limb.Add(hi, 0, c)
			out[i+j] = lo
			carry = hi
		}
		// propagate the remaining carry through the rest of the output.
		k := i + n
		for carry != 0 && k < len(out) {
			out[k], carry = limb.Add(out[k], carry, 0)
			k++
		}
	}
	return out
}

// cmpLimbs compares equal-length slices from the most significant limb
// down, returning -1, 0 or +1.
func cmpLimbs(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func isZeroLimbs(a []uint64) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

func bitLenLimbs(a []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i*64 + (64 - limb.LeadingZeros(a[i]))
		}
	}
	return 0
}

// shlLimbs shifts a left by k bits within a fixed-width slice of the same
// length, discarding bits shifted out of the top. The intra-limb carry into
// the next limb uses a complementary 64-minus-shift; when the intra-limb
// shift is exactly zero, no carry propagation is performed, since the
// complementary right shift would then be by the full 64 bits and carry
// nothing.
func shlLimbs(a []uint64, k uint) []uint64 {
	n := len(a)
	out := make([]uint64, n)
	limbShift := int(k / 64)
	bitShift := k % 64
	if limbShift >= n {
		return out
	}
	for i := n - 1; i >= limbShift; i-- {
		src := i - limbShift
		v := a[src] << bitShift
		if bitShift != 0 && src > 0 {
			v |= a[src-1] >> (64 - bitShift)
		}
		out[i] = v
	}
	return out
}

// shrLimbs shifts a right by k bits within a fixed-width slice of the same
// length, zero-filling from the top.
func shrLimbs(a []uint64, k uint) []uint64 {
	n := len(a)
	out := make([]uint64, n)
	limbShift := int(k / 64)
	bitShift := k % 64
	if limbShift >= n {
		return out
	}
	for i := 0; i < n-limbShift; i++ {
		src := i + limbShift
		v := a[src] >> bitShift
		if bitShift != 0 && src+1 < n {
			v |= a[src+1] << (64 - bitShift)
		}
		out[i] = v
	}
	return out
}

// divModLimbs computes quotient and remainder of a/b over equal-length
// slices using schoolbook long division via bit-shifted subtraction: shift
// a copy of b left until it matches a's bit length, then walk the shift
// index down to zero, subtracting and setting the corresponding quotient
// bit whenever the (shifted) divisor fits. b must be nonzero.
func divModLimbs(a, b []uint64) (quot, rem []uint64) {
	if isZeroLimbs(b) {
		panic("biguint: division by zero")
	}
	n := len(a)
	quot = make([]uint64, n)
	rem = make([]uint64, n)
	copy(rem, a)

	aBits := bitLenLimbs(a)
	bBits := bitLenLimbs(b)
	if aBits < bBits {
		return quot, rem
	}

	shift := uint(aBits - bBits)
	shifted := shlLimbs(b, shift)
	for {
		if cmpLimbs(rem, shifted) >= 0 {
			rem, _ = subLimbs(rem, shifted, 0)
			bitIdx := int(shift)
			quot[bitIdx/64] |= 1 << uint(bitIdx%64)
		}
		if shift == 0 {
			break
		}
		shift--
		shifted = shrLimbs(shifted, 1)
	}
	return quot, rem
}

func bitwise(a, b []uint64, op func(x, y uint64) uint64) []uint64 {
	out := make([]uint64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out
}

// Add sets z = a+b mod 2^(64N) and reports whether a carry out of the top
// limb occurred (i.e. whether the true sum did not fit in N limbs).
func (z *BigUint) Add(a, b *BigUint) bool {
	sameWidth(a, b)
	sum, carry := addLimbs(a.limbs, b.limbs, 0)
	z.Set(&BigUint{limbs: sum})
	return carry != 0
}

// Sub sets z = a-b mod 2^(64N) and reports whether a borrow out of the top
// limb occurred (i.e. whether a < b).
func (z *BigUint) Sub(a, b *BigUint) bool {
	sameWidth(a, b)
	diff, borrow := subLimbs(a.limbs, b.limbs, 0)
	z.Set(&BigUint{limbs: diff})
	return borrow != 0
}

// Mul sets z to the low N limbs of a*b and reports whether the true
// product required more than N limbs to represent.
func (z *BigUint) Mul(a, b *BigUint) bool {
	sameWidth(a, b)
	n := len(a.limbs)
	full := mulLimbsWide(a.limbs, b.limbs)
	overflow := !isZeroLimbs(full[n:])
	z.Set(&BigUint{limbs: full[:n]})
	return overflow
}

// DivMod computes the quotient and remainder of a/b, satisfying
// a = quot*b + rem with 0 <= rem < b. b must be nonzero; dividing by zero
// is a fatal precondition violation and panics, matching the rest of the
// arithmetic core's treatment of unrecoverable preconditions.
func DivMod(a, b *BigUint) (quot, rem *BigUint) {
	sameWidth(a, b)
	q, r := divModLimbs(a.limbs, b.limbs)
	return &BigUint{limbs: q}, &BigUint{limbs: r}
}

// Div returns the quotient of a/b.
func Div(a, b *BigUint) *BigUint {
	q, _ := DivMod(a, b)
	return q
}

// Mod returns the remainder of a/b.
func Mod(a, b *BigUint) *BigUint {
	_, r := DivMod(a, b)
	return r
}

// Shl sets z = a<<k (truncated to z's width) and returns z.
func (z *BigUint) Shl(a *BigUint, k uint) *BigUint {
	if len(z.limbs) != len(a.limbs) {
		panic("biguint: operand width mismatch")
	}
	z.Set(&BigUint{limbs: shlLimbs(a.limbs, k)})
	return z
}

// Shr sets z = a>>k and returns z.
func (z *BigUint) Shr(a *BigUint, k uint) *BigUint {
	if len(z.limbs) != len(a.limbs) {
		panic("biguint: operand width mismatch")
	}
	z.Set(&BigUint{limbs: shrLimbs(a.limbs, k)})
	return z
}

// And sets z = a&b.
func (z *BigUint) And(a, b *BigUint) *BigUint {
	sameWidth(a, b)
	z.Set(&BigUint{limbs: bitwise(a.limbs, b.limbs, func(x, y uint64) uint64 { return x & y })})
	return z
}

// Or sets z = a|b.
func (z *BigUint) Or(a, b *BigUint) *BigUint {
	sameWidth(a, b)
	z.Set(&BigUint{limbs: bitwise(a.limbs, b.limbs, func(x, y uint64) uint64 { return x | y })})
	return z
}

// Xor sets z = a^b.
func (z *BigUint) Xor(a, b *BigUint) *BigUint {
	sameWidth(a, b)
	z.Set(&BigUint{limbs: bitwise(a.limbs, b.limbs, func(x, y uint64) uint64 { return x ^ y })})
	return z
}

// Not sets z = ^a (bitwise complement within z's width).
func (z *BigUint) Not(a *BigUint) *BigUint {
	if len(z.limbs) != len(a.limbs) {
		panic("biguint: operand width mismatch")
	}
	out := make([]uint64, len(a.limbs))
	for i, w := range a.limbs {
		out[i] = ^w
	}
	z.Set(&BigUint{limbs: out})
	return z
}
