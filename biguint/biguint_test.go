package biguint

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const testWidth = 4 // 256 bits

func randomBigUint(t *testing.T, width int) *BigUint {
	t.Helper()
	buf := make([]byte, 8*width)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	z := New(width)
	_, err = z.SetBytesBE(buf)
	require.NoError(t, err)
	return z
}

func TestAddSubRoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := randomBigUint(t, testWidth)
		b := New(testWidth)
		b.SetUint64(uint64(i + 1))

		sum := New(testWidth)
		overflow := sum.Add(a, b)
		if overflow {
			continue // (a+b) - b = a only holds without overflow
		}
		back := New(testWidth)
		back.Sub(sum, b)
		require.Equal(t, 0, back.Cmp(a))
	}
}

func TestMulOverflowFlag(t *testing.T) {
	a := New(1)
	a.SetUint64(1 << 40)
	b := New(1)
	b.SetUint64(1 << 30)
	z := New(1)
	overflow := z.Mul(a, b)
	require.True(t, overflow)

	a.SetUint64(2)
	b.SetUint64(3)
	overflow = z.Mul(a, b)
	require.False(t, overflow)
	require.Equal(t, uint64(6), z.limbs[0])
}

func TestDivModSatisfiesIdentity(t *testing.T) {
	for i := 1; i < 30; i++ {
		a := randomBigUint(t, testWidth)
		b := New(testWidth)
		b.SetUint64(uint64(i))

		q, r := DivMod(a, b)
		require.Equal(t, -1, r.Cmp(b))

		prod := New(testWidth)
		prod.Mul(q, b)
		sum := New(testWidth)
		sum.Add(prod, r)
		require.Equal(t, 0, sum.Cmp(a))
	}
}

func TestShiftRoundTrip(t *testing.T) {
	a := randomBigUint(t, testWidth)
	totalBits := uint(64 * testWidth)
	for k := uint(0); k < totalBits; k += 7 {
		shl := New(testWidth)
		shl.Shl(a, k)
		back := New(testWidth)
		back.Shr(shl, k)

		expect := a.Clone()
		for i := int(totalBits - k); i < int(totalBits); i++ {
			expect.SetBit(i, 0)
		}
		require.Equal(t, 0, back.Cmp(expect), "k=%d", k)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "9", "12345678901234567890", "340282366920938463463374607431768211455"}
	for _, c := range cases {
		z := New(testWidth)
		_, err := z.SetString(c)
		require.NoError(t, err)
		require.Equal(t, c, z.String())
	}
}

func TestByteRoundTrip(t *testing.T) {
	a := randomBigUint(t, testWidth)
	be := a.BytesBE()
	back := New(testWidth)
	_, err := back.SetBytesBE(be)
	require.NoError(t, err)
	require.Equal(t, 0, back.Cmp(a))

	le := a.BytesLE()
	back2 := New(testWidth)
	_, err = back2.SetBytesLE(le)
	require.NoError(t, err)
	require.Equal(t, 0, back2.Cmp(a))
}

func TestPowModMatchesDefinition(t *testing.T) {
	m := New(testWidth)
	_, err := m.SetString("1000000000000000000000000000057") // prime-ish modulus, doesn't need to be prime here
	require.NoError(t, err)

	a := New(testWidth)
	a.SetUint64(7)
	e := New(testWidth)
	e.SetUint64(1000)

	got := New(testWidth)
	got.PowMod(a, e, m)

	// cross-check by repeated MulMod
	want := New(testWidth)
	want.SetUint64(1)
	one := New(testWidth)
	one.SetUint64(1)
	i := New(testWidth)
	for i.Cmp(e) < 0 {
		want.MulMod(want, a, m)
		i.Add(i, one)
	}
	require.Equal(t, 0, want.Cmp(got))
}

func TestSubModNoUnderflowWraparound(t *testing.T) {
	m := New(1)
	m.SetUint64(13)
	a := New(1)
	a.SetUint64(3)
	b := New(1)
	b.SetUint64(10)

	z := New(1)
	z.SubMod(a, b, m)
	// (3 - 10) mod 13 = 6
	require.Equal(t, uint64(6), z.limbs[0])
}

func TestBitLenAndIsZero(t *testing.T) {
	z := New(2)
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.BitLen())

	z.SetUint64(1)
	require.Equal(t, 1, z.BitLen())

	z.SetUint64(1 << 10)
	require.Equal(t, 11, z.BitLen())
}

func TestGoStringDoesNotPanic(t *testing.T) {
	z := randomBigUint(t, testWidth)
	require.NotEmpty(t, z.GoString())
}
