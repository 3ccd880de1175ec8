package rsa

import (
	"github.com/bastionzero/primal/biguint"
	"github.com/bastionzero/primal/bigrand"
)

// bytesToBigUint pads b with leading zeros up to the BigUint's native
// 8*width byte length and loads it big-endian.
func bytesToBigUint(width int, b []byte) *biguint.BigUint {
	full := make([]byte, 8*width)
	copy(full[len(full)-len(b):], b)
	z := biguint.New(width)
	z.SetBytesBE(full)
	return z
}

// bigUintToBytesK renders x as exactly k big-endian bytes, taking the low
// k bytes of its native 8*width representation (the high bytes are zero
// for any x already reduced mod a k-byte modulus).
func bigUintToBytesK(x *biguint.BigUint, k int) []byte {
	full := x.BytesBE()
	return full[len(full)-k:]
}

// EncryptPKCS1v15 encrypts msg under pub using PKCS#1 v1.5 padding
// (spec.md §4.7): EM = 0x00 0x02 PS 0x00 M, where PS is at least 8
// nonzero random bytes and len(EM) == k (the modulus byte length).
func EncryptPKCS1v15(pub *PublicKey, msg []byte) ([]byte, error) {
	k := pub.k()
	if len(msg) > k-11 {
		return nil, ErrMessageTooLong
	}

	em := make([]byte, k)
	em[0] = 0x00
	em[1] = 0x02
	psLen := k - len(msg) - 3
	ps := em[2 : 2+psLen]
	for i := range ps {
		for {
			b := bigrand.U8()
			if b != 0 {
				ps[i] = b
				break
			}
		}
	}
	em[2+psLen] = 0x00
	copy(em[3+psLen:], msg)

	m := bytesToBigUint(pub.N.Width(), em)
	e := biguint.New(pub.N.Width())
	e.SetUint64(pub.E)
	c := biguint.New(pub.N.Width())
	c.PowMod(m, e, pub.N)

	return bigUintToBytesK(c, k), nil
}

// DecryptPKCS1v15 decrypts ciphertext under priv and recovers the
// original message, validating the 0x00 0x02 PS 0x00 M structure.
//
// Per the REDESIGN FLAGS in spec.md §9, PS's length is checked against
// both bounds (>= 8 and <= k-11) rather than only the lower bound, so a
// malformed encoded message with a too-long PS field cannot be
// mistaken for a valid one with an empty message.
func DecryptPKCS1v15(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	k := priv.k()
	if len(ciphertext) < k {
		return nil, ErrMessageTooShort
	}
	if len(ciphertext) > k {
		return nil, ErrMessageTooLong
	}

	c := bytesToBigUint(priv.N.Width(), ciphertext)
	m := biguint.New(priv.N.Width())
	m.PowMod(c, priv.D, priv.N)
	em := bigUintToBytesK(m, k)

	if em[0] != 0x00 || em[1] != 0x02 {
		return nil, ErrInvalidEncodedMessage
	}

	sepIdx := -1
	for i := 2; i < len(em); i++ {
		if em[i] == 0x00 {
			sepIdx = i
			break
		}
	}
	if sepIdx < 0 {
		return nil, ErrInvalidEncodedMessage
	}
	psLen := sepIdx - 2
	if psLen < 8 || psLen > k-11 {
		return nil, ErrInvalidEncodedMessage
	}

	return em[sepIdx+1:], nil
}
