package textbookrsa

import "errors"

var (
	// ErrMessageTooLarge indicates a message integer m >= n.
	ErrMessageTooLarge = errors.New("textbookrsa: message must be smaller than the modulus")

	// ErrNegativeMessage indicates a message integer m < 0.
	ErrNegativeMessage = errors.New("textbookrsa: message must not be negative")

	// ErrInvalidBitLength indicates a modulus size too small to split into two
	// primes.
	ErrInvalidBitLength = errors.New("textbookrsa: bit length must be at least 16")

	// ErrInvalidExponent indicates a public exponent that is even or below 3.
	ErrInvalidExponent = errors.New("textbookrsa: public exponent must be odd and at least 3")

	// ErrInvalidKey indicates raw key components that cannot form a keypair.
	ErrInvalidKey = errors.New("textbookrsa: invalid key components")
)
