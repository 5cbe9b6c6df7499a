package textbookrsa

import (
	"fmt"
	"math/big"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/modarith"
)

// EncryptInt returns m^e mod n. It fails with ErrMessageTooLarge when m >= n
// and with ErrNegativeMessage when m < 0.
func EncryptInt(m, n, e *big.Int) (*big.Int, error) {
	if err := checkMessage(m, n); err != nil {
		return nil, err
	}
	return modarith.ModExp(m, e, n), nil
}

// DecryptInt returns c^d mod n. c is not checked against n; pairing the
// ciphertext with the right key is the caller's job.
func DecryptInt(c, n, d *big.Int) *big.Int {
	return modarith.ModExp(c, d, n)
}

// EncryptBytes reads msg as a big-endian unsigned integer and encrypts it
// with the public half of kp.
func EncryptBytes(msg []byte, kp *KeyPair) (*big.Int, error) {
	return EncryptInt(new(big.Int).SetBytes(msg), kp.n, kp.e)
}

// DecryptBytes decrypts c and returns the shortest big-endian encoding of the
// result, at least one byte long. Leading zero bytes of the original message
// do not survive the round trip.
func DecryptBytes(c *big.Int, kp *KeyPair) []byte {
	m := DecryptInt(c, kp.n, kp.d)
	if m.Sign() == 0 {
		return []byte{0}
	}
	return m.Bytes()
}

// DecryptBytesFixed decrypts c and left-pads the result to kp.Size() bytes.
func DecryptBytesFixed(c *big.Int, kp *KeyPair) []byte {
	m := DecryptInt(c, kp.n, kp.d)
	return m.FillBytes(make([]byte, kp.Size()))
}

// SignInt returns the raw signature m^d mod n under the same message
// preconditions as EncryptInt.
func SignInt(m *big.Int, kp *KeyPair) (*big.Int, error) {
	if err := checkMessage(m, kp.n); err != nil {
		return nil, err
	}
	return modarith.ModExp(m, kp.d, kp.n), nil
}

// VerifyInt reports whether s^e mod n == m.
func VerifyInt(m, s, n, e *big.Int) bool {
	if m.Sign() < 0 || m.Cmp(n) >= 0 || s.Sign() < 0 || s.Cmp(n) >= 0 {
		return false
	}
	return modarith.ModExp(s, e, n).Cmp(m) == 0
}

func checkMessage(m, n *big.Int) error {
	if m.Sign() < 0 {
		return ErrNegativeMessage
	}
	if m.Cmp(n) >= 0 {
		return fmt.Errorf("%w: message is %d bits, modulus is %d bits", ErrMessageTooLarge, m.BitLen(), n.BitLen())
	}
	return nil
}
