package rsa

import "errors"

// Error kinds returned by this package's public entry points, per
// spec.md §7. None of these are retried internally; retry policy belongs
// to the caller.
var (
	// ErrMessageTooLong is returned when a plaintext exceeds k-11 bytes on
	// encryption, or a ciphertext's length exceeds k bytes. A signature of
	// the wrong length fails verification with ErrInvalidSignature instead.
	ErrMessageTooLong = errors.New("rsa: message too long")

	// ErrMessageTooShort is returned when a ciphertext is shorter than the
	// modulus byte length k, or the modulus is too small to hold a
	// DigestInfo plus padding.
	ErrMessageTooShort = errors.New("rsa: message too short")

	// ErrInvalidEncodedMessage is returned when a decrypted EM violates the
	// 0x00 0x02 PS 0x00 M shape, or PS is shorter than 8 bytes.
	ErrInvalidEncodedMessage = errors.New("rsa: invalid encoded message")

	// ErrInvalidSignature is returned when a verified EM violates the
	// 0x00 0x01 0xFF... 0x00 T shape, PS is too short, the DigestInfo
	// prefix is unrecognized, or the recomputed digest does not match.
	ErrInvalidSignature = errors.New("rsa: invalid signature")

	// ErrHashNotSupported is returned when a recognized hash identifier
	// other than SHA-256 is requested.
	ErrHashNotSupported = errors.New("rsa: hash not supported")
)
