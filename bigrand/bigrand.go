// Package bigrand supplies the randomness this module's number theory,
// prime generation, and RSA key generation are built on: a single
// process-wide entropy source fed by the operating system, with helpers to
// fill a biguint.BigUint with fresh limbs and to truncate the result to a
// requested bit width.
//
// The source is crypto/rand.Reader, which is itself a lazily-opened,
// process-lifetime handle onto the OS's entropy device (/dev/urandom or
// the platform equivalent) — exactly the "process-wide entropy handle"
// spec.md describes, so this package does not duplicate that plumbing.
// Concurrent use is safe (crypto/rand.Reader is goroutine-safe), which
// resolves spec.md §9's call to either guard the handle with a mutex or
// give each caller its own source: the standard library's reader already
// does the former.
package bigrand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/bastionzero/primal/biguint"
)

// U8 returns a single random byte. Failure to read entropy is a fatal
// precondition violation (the OS entropy source is assumed present) and
// panics, matching spec.md §4.3.
func U8() byte {
	var b [1]byte
	mustRead(b[:])
	return b[0]
}

// U64 returns a single random 64-bit value.
func U64() uint64 {
	var b [8]byte
	mustRead(b[:])
	return binary.BigEndian.Uint64(b[:])
}

func mustRead(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("bigrand: entropy source failed: %v", err))
	}
}

// BigUint returns a fresh, fully random biguint.BigUint of the given limb
// width: every limb is filled with an independent random 64-bit value.
func BigUint(width int) *biguint.BigUint {
	buf := make([]byte, 8*width)
	mustRead(buf)
	z := biguint.New(width)
	if _, err := z.SetBytesLE(buf); err != nil {
		// buf is always exactly 8*width bytes, so this cannot fail.
		panic(err)
	}
	return z
}

// BigUintWithMaxBits returns a fresh random BigUint of the given limb
// width with all bits at index >= maxBits masked off, zeroing any limb that
// falls entirely above that width. maxBits must be in [0, 64*width].
func BigUintWithMaxBits(width int, maxBits int) *biguint.BigUint {
	totalBits := 64 * width
	if maxBits < 0 || maxBits > totalBits {
		panic("bigrand: maxBits out of range")
	}
	z := BigUint(width)
	limbs := z.Limbs()
	fullLimbs := maxBits / 64
	remBits := maxBits % 64
	for i := fullLimbs + 1; i < width; i++ {
		limbs[i] = 0
	}
	if fullLimbs < width {
		if remBits == 0 {
			limbs[fullLimbs] = 0
		} else {
			limbs[fullLimbs] &= (uint64(1) << uint(remBits)) - 1
		}
	}
	return z
}
