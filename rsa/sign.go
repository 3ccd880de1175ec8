package rsa

import (
	"github.com/bastionzero/primal/biguint"
	"github.com/bastionzero/primal/sha256"
)

// SignPKCS1v15 signs digest (the raw output of the given hash algorithm)
// under priv using PKCS#1 v1.5 signature padding (spec.md §4.7):
// EM = 0x00 0x01 0xFF...0xFF 0x00 DigestInfo, where DigestInfo is the
// ASN.1 wrapping of the hash OID and digest, and len(EM) == k.
//
// Only SHA256 is actually supported; any other HashID returns
// ErrHashNotSupported.
func SignPKCS1v15(priv *PrivateKey, id HashID, digest []byte) ([]byte, error) {
	entry, ok := lookupHash(id)
	if !ok || !entry.supported {
		return nil, ErrHashNotSupported
	}
	if len(digest) != entry.digestLen {
		return nil, ErrInvalidEncodedMessage
	}

	k := priv.k()
	t := append(append([]byte(nil), entry.prefix...), digest...)
	if len(t) > k-11 {
		return nil, ErrMessageTooShort
	}

	em := make([]byte, k)
	em[0] = 0x00
	em[1] = 0x01
	psLen := k - len(t) - 3
	for i := 2; i < 2+psLen; i++ {
		em[i] = 0xFF
	}
	em[2+psLen] = 0x00
	copy(em[3+psLen:], t)

	m := bytesToBigUint(priv.N.Width(), em)
	s := biguint.New(priv.N.Width())
	s.PowMod(m, priv.D, priv.N)

	return bigUintToBytesK(s, k), nil
}

// VerifyPKCS1v15 verifies that signature is a valid PKCS#1 v1.5 signature
// over digest under pub. Per spec.md §4.7, the hash algorithm is not
// supplied by the caller: it is recovered from the DigestInfo OID embedded
// in the decrypted EM, and a recognized-but-unsupported OID (MD2, MD5,
// SHA-1, SHA-384, SHA-512) fails with ErrHashNotSupported, distinct from an
// unrecognized or malformed one, which fails with ErrInvalidSignature.
//
// Per the REDESIGN FLAGS in spec.md §9, the signature must be exactly k
// bytes, not merely at most k: a short signature is rejected outright
// rather than being zero-extended and accepted.
func VerifyPKCS1v15(pub *PublicKey, digest []byte, signature []byte) error {
	k := pub.k()
	if len(signature) != k {
		return ErrInvalidSignature
	}

	s := bytesToBigUint(pub.N.Width(), signature)
	e := biguint.New(pub.N.Width())
	e.SetUint64(pub.E)
	m := biguint.New(pub.N.Width())
	m.PowMod(s, e, pub.N)
	em := bigUintToBytesK(m, k)

	if em[0] != 0x00 || em[1] != 0x01 {
		return ErrInvalidSignature
	}

	i := 2
	for i < len(em) && em[i] == 0xFF {
		i++
	}
	psLen := i - 2
	if psLen < 8 {
		return ErrInvalidSignature
	}
	if i >= len(em) || em[i] != 0x00 {
		return ErrInvalidSignature
	}
	i++

	t := em[i:]
	oid, gotDigest, err := ParseDigestInfo(t)
	if err != nil {
		return ErrInvalidSignature
	}
	matched, ok := lookupHashByOID(oid)
	if !ok {
		return ErrInvalidSignature
	}
	if !matched.supported {
		return ErrHashNotSupported
	}
	if len(gotDigest) != matched.digestLen || !bytesEqual(gotDigest, digest) {
		return ErrInvalidSignature
	}
	return nil
}

// SumAndSignSHA256 is a convenience wrapper hashing msg with this module's
// own sha256 package and signing the resulting digest.
func SumAndSignSHA256(priv *PrivateKey, msg []byte) ([]byte, error) {
	d := sha256.Sum256(msg)
	return SignPKCS1v15(priv, SHA256, d[:])
}

// VerifySHA256 is a convenience wrapper hashing msg with this module's own
// sha256 package and verifying signature against the resulting digest.
func VerifySHA256(pub *PublicKey, msg []byte, signature []byte) error {
	d := sha256.Sum256(msg)
	return VerifyPKCS1v15(pub, d[:], signature)
}
