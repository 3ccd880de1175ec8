package biguint

// widen returns a 2N-limb copy of x (N = len(x.limbs)), zero-extended.
func widen(x *BigUint) []uint64 {
	n := len(x.limbs)
	out := make([]uint64, 2*n)
	copy(out, x.limbs)
	return out
}

// narrow truncates a 2N-limb slice back down to its low N limbs.
func narrow(x []uint64, n int) *BigUint {
	return &BigUint{limbs: append([]uint64(nil), x[:n]...)}
}

// AddMod sets z = (a+b) mod m. The addition is performed in a 2N-wide
// temporary so a carry out of a+b is never lost before the reduction.
func (z *BigUint) AddMod(a, b, m *BigUint) *BigUint {
	sameWidth(a, b)
	sameWidth(a, m)
	n := len(a.limbs)
	sum, carry := addLimbs(a.limbs, b.limbs, 0)
	wide := make([]uint64, 2*n)
	copy(wide, sum)
	if carry != 0 {
		wide[n] = 1
	}
	_, rem := divModLimbs(wide, widen(m))
	z.Set(narrow(rem, n))
	return z
}

// SubMod sets z = (a-b) mod m. Per spec.md's redesign note, this never
// relies on fixed-width wraparound: when a >= b the result is computed
// directly; when a < b it is computed as m - ((b-a) mod m), which is the
// correct reduction of a negative value into [0, m).
func (z *BigUint) SubMod(a, b, m *BigUint) *BigUint {
	sameWidth(a, b)
	sameWidth(a, m)
	n := len(a.limbs)
	if cmpLimbs(a.limbs, b.limbs) >= 0 {
		diff, _ := subLimbs(a.limbs, b.limbs, 0)
		_, rem := divModLimbs(diff, m.limbs)
		z.Set(&BigUint{limbs: rem})
		return z
	}
	diff, _ := subLimbs(b.limbs, a.limbs, 0)
	_, rem := divModLimbs(diff, m.limbs)
	if isZeroLimbs(rem) {
		z.Set(&BigUint{limbs: make([]uint64, n)})
		return z
	}
	out, _ := subLimbs(m.limbs, rem, 0)
	z.Set(&BigUint{limbs: out})
	return z
}

// MulMod sets z = (a*b) mod m, computed by allocating a 2N-wide temporary,
// computing the full product into it, then reducing modulo m (also widened
// to 2N) and copying the low limbs back. This is the simplest correct
// scheme and the one this package uses throughout.
func (z *BigUint) MulMod(a, b, m *BigUint) *BigUint {
	sameWidth(a, b)
	sameWidth(a, m)
	z.Set(mulMod(a, b, m))
	return z
}

// squareMod returns (x*x) mod m as a fresh BigUint of the same width as x,
// via the same 2N-wide-temporary-then-reduce scheme as MulMod. Exponentiation
// uses this directly so that every squaring step, not just the final one,
// avoids losing bits before reduction.
func squareMod(x, m *BigUint) *BigUint {
	n := len(x.limbs)
	full := mulLimbsWide(x.limbs, x.limbs)
	_, rem := divModLimbs(full, widen(m))
	return narrow(rem, n)
}

func mulMod(a, b, m *BigUint) *BigUint {
	n := len(a.limbs)
	full := mulLimbsWide(a.limbs, b.limbs)
	_, rem := divModLimbs(full, widen(m))
	return narrow(rem, n)
}

func square(x *BigUint) *BigUint {
	n := len(x.limbs)
	full := mulLimbsWide(x.limbs, x.limbs)
	return narrow(full, n)
}

func mul(a, b *BigUint) *BigUint {
	n := len(a.limbs)
	full := mulLimbsWide(a.limbs, b.limbs)
	return narrow(full, n)
}

// Pow sets z = a^e (truncated to z's width, i.e. mod 2^(64N)), computed by
// exponentiation by squaring:
//
//	y <- 1, base <- a
//	while e > 1:
//	  if e even: base <- base*base, e <- e/2
//	  else:      y <- y*base, base <- base*base, e <- (e-1)/2
//	result <- base*y
func (z *BigUint) Pow(a, e *BigUint) *BigUint {
	sameWidth(a, e)
	n := len(a.limbs)
	if isZeroLimbs(e.limbs) {
		z.SetUint64(1)
		return z
	}

	eCopy := &BigUint{limbs: append([]uint64(nil), e.limbs...)}
	one := New(n)
	one.SetUint64(1)
	two := New(n)
	two.SetUint64(2)

	y := New(n)
	y.SetUint64(1)
	base := &BigUint{limbs: append([]uint64(nil), a.limbs...)}

	for eCopy.Cmp(one) > 0 {
		if eCopy.IsEven() {
			base = square(base)
			eCopy = Div(eCopy, two)
		} else {
			y = mul(y, base)
			base = square(base)
			sub := New(n)
			sub.Sub(eCopy, one)
			eCopy = Div(sub, two)
		}
	}
	z.Set(mul(base, y))
	return z
}

// PowMod sets z = a^e mod m, using the same squaring recurrence as Pow but
// reducing modulo m after every multiplication, with each squaring
// performed in a 2N-wide temporary before reduction so intermediate
// overflow never loses bits.
func (z *BigUint) PowMod(a, e, m *BigUint) *BigUint {
	sameWidth(a, e)
	sameWidth(a, m)
	n := len(a.limbs)
	if isZeroLimbs(e.limbs) {
		one := New(n)
		one.SetUint64(1)
		_, rem := divModLimbs(one.limbs, m.limbs)
		z.Set(&BigUint{limbs: rem})
		return z
	}

	eCopy := &BigUint{limbs: append([]uint64(nil), e.limbs...)}
	one := New(n)
	one.SetUint64(1)
	two := New(n)
	two.SetUint64(2)

	y := New(n)
	y.SetUint64(1)
	_, rem := divModLimbs(y.limbs, m.limbs)
	y = &BigUint{limbs: rem}

	_, aRem := divModLimbs(a.limbs, m.limbs)
	base := &BigUint{limbs: aRem}

	for eCopy.Cmp(one) > 0 {
		if eCopy.IsEven() {
			base = squareMod(base, m)
			eCopy = Div(eCopy, two)
		} else {
			y = mulMod(y, base, m)
			base = squareMod(base, m)
			sub := New(n)
			sub.Sub(eCopy, one)
			eCopy = Div(sub, two)
		}
	}
	z.Set(mulMod(base, y, m))
	return z
}
