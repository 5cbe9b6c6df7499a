package modarith

import "math/big"

// ModExp returns base^exponent mod modulus in [0, modulus).
//
// The exponent is scanned right to left, squaring the running base once per
// bit, so the cost is linear in exponent.BitLen(). base may be negative or
// larger than modulus. ModExp panics if modulus <= 0 or exponent < 0.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("modarith: modulus must be positive")
	}
	if exponent.Sign() < 0 {
		panic("modarith: negative exponent is not supported")
	}

	// 1 mod 1 is 0, which makes modulus == 1 fall out naturally.
	result := new(big.Int).Mod(one, modulus)
	b := new(big.Int).Mod(base, modulus)

	bits := exponent.BitLen()
	for i := 0; i < bits; i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		if i < bits-1 {
			b.Mul(b, b)
			b.Mod(b, modulus)
		}
	}
	return result
}

// Square returns x^2 mod modulus. It is the inner step of the Miller-Rabin
// squaring chain.
func Square(x, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("modarith: modulus must be positive")
	}
	r := new(big.Int).Mul(x, x)
	return r.Mod(r, modulus)
}

var one = big.NewInt(1)
