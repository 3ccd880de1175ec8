// Package numtheory implements the number-theoretic routines RSA and prime
// generation are built on: GCD and LCM via Euclid's algorithm, the extended
// Euclidean algorithm with sign-tracked Bézout coefficients, modular
// inverse, the Jacobi symbol, and the Solovay–Strassen probabilistic
// primality test.
package numtheory

import "github.com/bastionzero/primal/biguint"

// GCD returns gcd(a, b) via the Euclidean algorithm: while b != 0,
// (a, b) <- (b, a mod b).
func GCD(a, b *biguint.BigUint) *biguint.BigUint {
	x := a.Clone()
	y := b.Clone()
	for !y.IsZero() {
		r := biguint.Mod(x, y)
		x, y = y, r
	}
	return x
}

// LCM returns lcm(a, b), or zero if either operand is zero. The
// intermediate product a*b is computed in a width double that of the
// operands so it cannot overflow before the division by gcd(a, b).
func LCM(a, b *biguint.BigUint) *biguint.BigUint {
	n := a.Width()
	if a.IsZero() || b.IsZero() {
		return biguint.New(n)
	}
	g := GCD(a, b)

	wide := n * 2
	aw := biguint.New(wide)
	aw.Set(a)
	bw := biguint.New(wide)
	bw.Set(b)
	gw := biguint.New(wide)
	gw.Set(g)

	prod := biguint.New(wide)
	prod.Mul(aw, bw)
	quot := biguint.Div(prod, gw)

	out := biguint.New(n)
	out.Set(quot)
	return out
}

// ExtendedEuclidResult is the triple (R, S, T) with sign flags for S and T
// satisfying a*S*SignS + b*T*SignT = R = gcd(a, b).
type ExtendedEuclidResult struct {
	R, S, T     *biguint.BigUint
	SignS, SignT int
}

// ExtendedEuclid runs the extended Euclidean algorithm, tracking
// (rPrev, rCur, sPrev, sCur, tPrev, tCur) with the standard update
// r <- rPrev - q*rCur (and likewise for s, t). Because BigUint is
// unsigned, negative intermediates are captured by letting the fixed-width
// subtraction wrap and recovering the true sign afterward: the sign of S is
// +1 if a*S === R (mod b) holds with the raw (unsigned) S, and -1
// otherwise (symmetrically for T against a). A coefficient found negative
// is negated out of its wrapped form, so S and T are returned as
// magnitudes. This is the module's substitute for a signed bignum type,
// per spec.md §9.
func ExtendedEuclid(a, b *biguint.BigUint) ExtendedEuclidResult {
	n := a.Width()

	rPrev, rCur := a.Clone(), b.Clone()
	sPrev, sCur := unit(n), zero(n)
	tPrev, tCur := zero(n), unit(n)

	for !rCur.IsZero() {
		q := biguint.Div(rPrev, rCur)

		rPrev, rCur = rCur, wrappingSub(rPrev, mulWrap(q, rCur))
		sPrev, sCur = sCur, wrappingSub(sPrev, mulWrap(q, sCur))
		tPrev, tCur = tCur, wrappingSub(tPrev, mulWrap(q, tCur))
	}

	signS := +1
	if !congruent(mulWrap(a, sPrev), rPrev, b) {
		signS = -1
		sPrev = wrappingSub(zero(n), sPrev)
	}
	signT := +1
	if !congruent(mulWrap(b, tPrev), rPrev, a) {
		signT = -1
		tPrev = wrappingSub(zero(n), tPrev)
	}

	return ExtendedEuclidResult{R: rPrev, S: sPrev, T: tPrev, SignS: signS, SignT: signT}
}

// ModInverse returns a^-1 mod n, or zero (a sentinel meaning "no inverse
// exists") if gcd(a, n) != 1.
func ModInverse(a, n *biguint.BigUint) *biguint.BigUint {
	width := a.Width()
	result := ExtendedEuclid(a, n)

	one := unit(width)
	if result.R.Cmp(one) != 0 {
		return zero(width)
	}

	s := result.S
	if result.SignS < 0 {
		s = biguint.New(width)
		s.SubMod(zero(width), result.S, n)
	}
	return biguint.Mod(s, n)
}

// Jacobi computes the Jacobi symbol (a/n) for odd positive n, per the
// standard recursive identities:
//
//	jacobi(a, n): n == 1 -> 1; r = a mod n; r == 0 -> 0; a == 1 -> 1
//	a even:  k = (n^2-1)/8; result = (-1)^k * jacobi(a/2, n)
//	a odd:   k = (a-1)(n-1)/4; result = (-1)^k * jacobi(n mod a, a)
func Jacobi(a, n *biguint.BigUint) int {
	width := a.Width()
	one := unit(width)
	two := biguint.New(width)
	two.SetUint64(2)

	// n == 1 is the base case the recursion bottoms out at: every a mod 1
	// is 0, so the general r == 0 -> 0 rule below would otherwise swallow
	// it, but the true Jacobi-symbol convention is (a|1) = 1 for all a.
	if n.Cmp(one) == 0 {
		return 1
	}

	aCur := biguint.Mod(a, n)
	nCur := n.Clone()

	if aCur.IsZero() {
		return 0
	}
	if aCur.Cmp(one) == 0 {
		return 1
	}

	if aCur.IsEven() {
		k := nSquaredMinusOneOverEight(nCur)
		half := biguint.Div(aCur, two)
		return signPow(k) * Jacobi(half, nCur)
	}

	k := aMinusOneTimesNMinusOneOverFour(aCur, nCur)
	rem := biguint.Mod(nCur, aCur)
	return signPow(k) * Jacobi(rem, aCur)
}

func nSquaredMinusOneOverEight(n *biguint.BigUint) uint64 {
	width := n.Width()
	wide := biguint.New(width * 2)
	wide.Set(n)
	sq := biguint.New(width * 2)
	sq.Mul(wide, wide)
	one := biguint.New(width * 2)
	one.SetUint64(1)
	numerator := biguint.New(width * 2)
	numerator.Sub(sq, one)
	eight := biguint.New(width * 2)
	eight.SetUint64(8)
	k := biguint.Div(numerator, eight)
	return lowUint64(k)
}

func aMinusOneTimesNMinusOneOverFour(a, n *biguint.BigUint) uint64 {
	width := a.Width()
	wide := width * 2
	one := biguint.New(wide)
	one.SetUint64(1)

	aw := biguint.New(wide)
	aw.Set(a)
	nw := biguint.New(wide)
	nw.Set(n)

	am1 := biguint.New(wide)
	am1.Sub(aw, one)
	nm1 := biguint.New(wide)
	nm1.Sub(nw, one)

	prod := biguint.New(wide)
	prod.Mul(am1, nm1)
	four := biguint.New(wide)
	four.SetUint64(4)
	k := biguint.Div(prod, four)
	return lowUint64(k)
}

func signPow(k uint64) int {
	if k%2 == 0 {
		return 1
	}
	return -1
}

func lowUint64(x *biguint.BigUint) uint64 {
	return x.Limbs()[0]
}

func zero(width int) *biguint.BigUint {
	return biguint.New(width)
}

func unit(width int) *biguint.BigUint {
	z := biguint.New(width)
	z.SetUint64(1)
	return z
}

// wrappingSub returns a-b, truncated (wrapped) to a's width, with no
// underflow check: extended Euclid's s/t tracks rely on this wraparound and
// recover the true sign afterward.
func wrappingSub(a, b *biguint.BigUint) *biguint.BigUint {
	z := biguint.New(a.Width())
	z.Sub(a, b)
	return z
}

// mulWrap returns a*b truncated (wrapped) to a's width.
func mulWrap(a, b *biguint.BigUint) *biguint.BigUint {
	z := biguint.New(a.Width())
	z.Mul(a, b)
	return z
}

// congruent reports whether a === b (mod m).
func congruent(a, b, m *biguint.BigUint) bool {
	return biguint.Mod(a, m).Cmp(biguint.Mod(b, m)) == 0
}
