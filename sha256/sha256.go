// Package sha256 implements a streaming SHA-256 (FIPS 180-4) hasher,
// built by hand rather than via crypto/sha256 since a from-scratch hash
// with explicit init/update/finalize state is itself part of this
// module's purpose.
package sha256

import "encoding/binary"

// Size is the length in bytes of a SHA-256 digest.
const Size = 32

const blockSize = 64

var initH = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1,
	0x923f82a4, 0xab1c5ed5, 0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174, 0xe49b69c1, 0xefbe4786,
	0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147,
	0x06ca6351, 0x14292967, 0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85, 0xa2bfe8a1, 0xa81a664b,
	0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a,
	0x5b9cca4f, 0x682e6ff3, 0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Hasher is a streaming SHA-256 state: eight 32-bit chaining words, a
// 64-byte message-block buffer with its current fill count, and a running
// total of bytes already compressed (used to compute the terminal
// length-in-bits field on Finalize).
type Hasher struct {
	h           [8]uint32
	buf         [blockSize]byte
	bufLen      int
	totalBytes  uint64
	finalized   bool
}

// New returns a freshly initialized Hasher.
func New() *Hasher {
	hs := &Hasher{}
	hs.Reset()
	return hs
}

// Reset returns the Hasher to its initial state, ready to absorb a new
// message.
func (hs *Hasher) Reset() {
	hs.h = initH
	hs.bufLen = 0
	hs.totalBytes = 0
	hs.finalized = false
}

// Write absorbs p into the running hash. It always returns (len(p), nil);
// the error return exists only so Hasher satisfies io.Writer.
func (hs *Hasher) Write(p []byte) (int, error) {
	hs.Update(p)
	return len(p), nil
}

// Update absorbs an arbitrary byte stream across any number of calls, made
// in message order. Whenever the internal block buffer fills to 64 bytes,
// it is compressed and its fill count reset, and the total-bytes counter
// is incremented by the block size.
func (hs *Hasher) Update(p []byte) {
	if hs.finalized {
		panic("sha256: Update called after Finalize")
	}
	for len(p) > 0 {
		n := copy(hs.buf[hs.bufLen:], p)
		hs.bufLen += n
		p = p[n:]
		if hs.bufLen == blockSize {
			hs.compress(hs.buf[:])
			hs.bufLen = 0
			hs.totalBytes += blockSize
		}
	}
}

// Finalize pads the pending block, writes the 64-bit big-endian bit-length
// field, compresses the final block(s), and returns the 32-byte digest.
// Finalize logically consumes the Hasher; calling it again is not defined
// to produce anything meaningful, matching spec.md §3.
func (hs *Hasher) Finalize() [Size]byte {
	// total bit length must include bytes already compressed plus the
	// bytes still sitting in the pending buffer.
	totalBits := (hs.totalBytes + uint64(hs.bufLen)) * 8

	pending := hs.bufLen
	hs.buf[pending] = 0x80
	pending++

	if pending > blockSize-8 {
		for i := pending; i < blockSize; i++ {
			hs.buf[i] = 0
		}
		hs.compress(hs.buf[:])
		pending = 0
	}
	for i := pending; i < blockSize-8; i++ {
		hs.buf[i] = 0
	}
	binary.BigEndian.PutUint64(hs.buf[blockSize-8:], totalBits)
	hs.compress(hs.buf[:])
	hs.finalized = true

	var out [Size]byte
	for i, word := range hs.h {
		binary.BigEndian.PutUint32(out[i*4:i*4+4], word)
	}
	return out
}

// Sum256 hashes p in a single call.
func Sum256(p []byte) [Size]byte {
	hs := New()
	hs.Update(p)
	return hs.Finalize()
}

func rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }
func bigSigma0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }
func bigSigma1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }
func smallSigma0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3) }
func smallSigma1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10) }

func (hs *Hasher) compress(block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4 : i*4+4])
	}
	for i := 16; i < 64; i++ {
		w[i] = w[i-16] + smallSigma0(w[i-15]) + w[i-7] + smallSigma1(w[i-2])
	}

	a, b, c, d, e, f, g, h := hs.h[0], hs.h[1], hs.h[2], hs.h[3], hs.h[4], hs.h[5], hs.h[6], hs.h[7]

	for i := 0; i < 64; i++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)
		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	hs.h[0] += a
	hs.h[1] += b
	hs.h[2] += c
	hs.h[3] += d
	hs.h[4] += e
	hs.h[5] += f
	hs.h[6] += g
	hs.h[7] += h
}
