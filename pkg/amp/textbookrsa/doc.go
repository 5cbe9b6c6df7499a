// Package textbookrsa implements unpadded ("textbook") RSA: key generation,
// integer encryption and decryption, and thin byte adapters.
//
// Textbook RSA is deterministic and malleable. It exists here to exercise the
// arithmetic, not to protect data. There is no padding, no chunking of
// messages larger than the modulus, and no key serialization.
//
// # Key generation
//
// GenerateKeyPair samples two primes of bitLength/2 bits, rejects equal
// primes, and restarts from scratch whenever the public exponent shares a
// factor with φ(n) = (p-1)(q-1). The loop has no retry limit; it stops on
// success, on a random source failure, or when ctx is done.
//
//	kp, err := textbookrsa.GenerateKeyPair(ctx, 2048)
//	c, err := textbookrsa.EncryptBytes([]byte("hi"), kp)
//	msg := textbookrsa.DecryptBytes(c, kp)
//
// # Byte encoding
//
// Messages are read as big-endian unsigned integers. DecryptBytes returns the
// minimal encoding, so leading zero bytes of the original message are lost.
// DecryptBytesFixed pads to the modulus size instead.
package textbookrsa
