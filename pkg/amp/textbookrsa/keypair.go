package textbookrsa

import (
	"fmt"
	"math/big"
)

// KeyPair is an RSA modulus with its public and private exponents. A KeyPair
// is never modified after construction; accessors return copies.
type KeyPair struct {
	n *big.Int
	e *big.Int
	d *big.Int
}

// NewKeyPair wraps raw components. It checks only that n > 1, e > 0 and
// d > 0; whether e and d are inverse exponents for n is the caller's concern.
func NewKeyPair(n, e, d *big.Int) (*KeyPair, error) {
	if n == nil || e == nil || d == nil {
		return nil, fmt.Errorf("%w: nil component", ErrInvalidKey)
	}
	if n.Cmp(big.NewInt(1)) <= 0 || e.Sign() <= 0 || d.Sign() <= 0 {
		return nil, fmt.Errorf("%w: need n > 1, e > 0, d > 0", ErrInvalidKey)
	}
	return &KeyPair{
		n: new(big.Int).Set(n),
		e: new(big.Int).Set(e),
		d: new(big.Int).Set(d),
	}, nil
}

// N returns a copy of the modulus.
func (k *KeyPair) N() *big.Int { return new(big.Int).Set(k.n) }

// E returns a copy of the public exponent.
func (k *KeyPair) E() *big.Int { return new(big.Int).Set(k.e) }

// D returns a copy of the private exponent.
func (k *KeyPair) D() *big.Int { return new(big.Int).Set(k.d) }

// BitLen returns the bit length of the modulus.
func (k *KeyPair) BitLen() int { return k.n.BitLen() }

// Size returns the modulus length in bytes.
func (k *KeyPair) Size() int { return (k.n.BitLen() + 7) / 8 }

// Encrypt is EncryptInt(m, k.N(), k.E()).
func (k *KeyPair) Encrypt(m *big.Int) (*big.Int, error) {
	return EncryptInt(m, k.n, k.e)
}

// Decrypt is DecryptInt(c, k.N(), k.D()).
func (k *KeyPair) Decrypt(c *big.Int) *big.Int {
	return DecryptInt(c, k.n, k.d)
}

// String describes the public half of the key only.
func (k *KeyPair) String() string {
	return fmt.Sprintf("textbookrsa.KeyPair{bits: %d, e: %s}", k.n.BitLen(), k.e)
}
