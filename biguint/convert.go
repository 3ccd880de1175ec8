package biguint

import (
	"encoding/binary"
	"fmt"
)

// SetString parses a decimal string into z, accumulating
// out = out*10 + digit left to right with overflow discarded (i.e. modulo
// 2^(64*Width())), exactly as a fixed-width decimal parse must behave. It
// returns an error if s is empty or contains a non-digit byte.
func (z *BigUint) SetString(s string) (*BigUint, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("biguint: empty decimal string")
	}
	n := len(z.limbs)
	acc := make([]uint64, n)
	ten := make([]uint64, n)
	ten[0] = 10
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("biguint: invalid decimal digit %q", c)
		}
		full := mulLimbsWide(acc, ten)
		acc = full[:n]
		digit := make([]uint64, n)
		digit[0] = uint64(c - '0')
		sum, _ := addLimbs(acc, digit, 0)
		acc = sum
	}
	z.Set(&BigUint{limbs: acc})
	return z, nil
}

// String renders z in decimal via repeated divmod by 10.
func (z *BigUint) String() string {
	if z.IsZero() {
		return "0"
	}
	n := len(z.limbs)
	ten := New(n)
	ten.SetUint64(10)
	cur := z.Clone()
	digits := make([]byte, 0, n*20)
	for !cur.IsZero() {
		q, r := DivMod(cur, ten)
		digits = append(digits, byte('0')+byte(r.limbs[0]))
		cur = q
	}
	// digits were accumulated least-significant first; reverse.
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = d
	}
	return string(out)
}

// SetBytesBE sets z from a big-endian byte sequence of length 8*Width(),
// mirroring get-bytes so that from-bytes-big-endian then get-bytes
// reproduces the input.
func (z *BigUint) SetBytesBE(b []byte) (*BigUint, error) {
	n := len(z.limbs)
	if len(b) != 8*n {
		return nil, fmt.Errorf("biguint: big-endian input must be %d bytes, got %d", 8*n, len(b))
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		// limb i (little-endian limb index) is the i'th 8-byte group from
		// the END of the big-endian byte string.
		off := len(b) - 8*(i+1)
		out[i] = binary.BigEndian.Uint64(b[off : off+8])
	}
	z.Set(&BigUint{limbs: out})
	return z, nil
}

// SetBytesLE sets z from a little-endian byte sequence of length
// 8*Width().
func (z *BigUint) SetBytesLE(b []byte) (*BigUint, error) {
	n := len(z.limbs)
	if len(b) != 8*n {
		return nil, fmt.Errorf("biguint: little-endian input must be %d bytes, got %d", 8*n, len(b))
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint64(b[8*i : 8*i+8])
	}
	z.Set(&BigUint{limbs: out})
	return z, nil
}

// BytesBE returns z as 8*Width() big-endian bytes.
func (z *BigUint) BytesBE() []byte {
	n := len(z.limbs)
	out := make([]byte, 8*n)
	for i := 0; i < n; i++ {
		off := len(out) - 8*(i+1)
		binary.BigEndian.PutUint64(out[off:off+8], z.limbs[i])
	}
	return out
}

// BytesLE returns z as 8*Width() little-endian bytes.
func (z *BigUint) BytesLE() []byte {
	n := len(z.limbs)
	out := make([]byte, 8*n)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(out[8*i:8*i+8], z.limbs[i])
	}
	return out
}
