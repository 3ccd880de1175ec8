package rsa

import (
	stdasn1 "encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// HashID identifies a hash algorithm in the DigestInfo table.
type HashID int

const (
	MD2 HashID = iota
	MD5
	SHA1
	SHA256
	SHA384
	SHA512
)

// hashEntry is one row of the RSA-supported hash table: the DER-encoded
// DigestInfo prefix (ASN.1 AlgorithmIdentifier plus OCTET STRING header),
// its length, the raw digest length it expects, and whether this
// implementation actually supports signing/verifying with it.
type hashEntry struct {
	id         HashID
	oid        stdasn1.ObjectIdentifier
	digestLen  int
	prefix     []byte
	supported  bool
}

// digestInfoPrefix builds the DigestInfo prefix — SEQUENCE { SEQUENCE { OID,
// NULL }, OCTET STRING (header only) } — for the given algorithm OID and
// digest length, per RFC 8017 Appendix B.1. It is built with
// golang.org/x/crypto/cryptobyte rather than typed out as a DER literal: a
// placeholder all-zero digest of the right length is encoded so the OCTET
// STRING's length octet comes out correct, then trimmed back off, leaving
// exactly the prefix bytes.
func digestInfoPrefix(oid stdasn1.ObjectIdentifier, digestLen int) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid)
			b.AddASN1NULL()
		})
		b.AddASN1(cbasn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddBytes(make([]byte, digestLen))
		})
	})
	full := b.BytesOrPanic()
	return full[:len(full)-digestLen]
}

var hashTable []hashEntry

func init() {
	type def struct {
		id        HashID
		oid       stdasn1.ObjectIdentifier
		digestLen int
		supported bool
	}
	defs := []def{
		{MD2, stdasn1.ObjectIdentifier{1, 2, 840, 113549, 2, 2}, 16, false},
		{MD5, stdasn1.ObjectIdentifier{1, 2, 840, 113549, 2, 5}, 16, false},
		{SHA1, stdasn1.ObjectIdentifier{1, 3, 14, 3, 2, 26}, 20, false},
		{SHA256, stdasn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}, 32, true},
		{SHA384, stdasn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}, 48, false},
		{SHA512, stdasn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}, 64, false},
	}
	hashTable = make([]hashEntry, 0, len(defs))
	for _, d := range defs {
		hashTable = append(hashTable, hashEntry{
			id:        d.id,
			oid:       d.oid,
			digestLen: d.digestLen,
			prefix:    digestInfoPrefix(d.oid, d.digestLen),
			supported: d.supported,
		})
	}
}

func lookupHash(id HashID) (hashEntry, bool) {
	for _, e := range hashTable {
		if e.id == id {
			return e, true
		}
	}
	return hashEntry{}, false
}

func lookupHashByOID(oid stdasn1.ObjectIdentifier) (hashEntry, bool) {
	for _, e := range hashTable {
		if e.oid.Equal(oid) {
			return e, true
		}
	}
	return hashEntry{}, false
}

// ParseDigestInfo parses a DigestInfo structure — SEQUENCE { SEQUENCE {
// OID, NULL }, OCTET STRING } — out of a decrypted signature's trailing T
// field, returning the algorithm OID and the enclosed digest bytes. This
// replaces a byte-by-byte prefix scan with an actual ASN.1 decode so a
// well-formed but unrecognized algorithm OID is rejected cleanly rather
// than falling out of a prefix-table walk.
func ParseDigestInfo(data []byte) (stdasn1.ObjectIdentifier, []byte, error) {
	input := cryptobyte.String(data)
	var outer cryptobyte.String
	if !input.ReadASN1(&outer, cbasn1.SEQUENCE) {
		return nil, nil, ErrInvalidSignature
	}

	var algID cryptobyte.String
	if !outer.ReadASN1(&algID, cbasn1.SEQUENCE) {
		return nil, nil, ErrInvalidSignature
	}
	var oid stdasn1.ObjectIdentifier
	if !algID.ReadASN1ObjectIdentifier(&oid) {
		return nil, nil, ErrInvalidSignature
	}

	var digestOctets cryptobyte.String
	if !outer.ReadASN1(&digestOctets, cbasn1.OCTET_STRING) {
		return nil, nil, ErrInvalidSignature
	}

	return oid, []byte(digestOctets), nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
