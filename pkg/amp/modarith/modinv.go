package modarith

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInverseUndefined is returned by ModInverse when gcd(a, modulus) != 1.
var ErrInverseUndefined = errors.New("modarith: modular inverse undefined")

// ModInverse returns the unique x in [0, modulus) with a*x ≡ 1 (mod modulus).
// It returns an error wrapping ErrInverseUndefined when a and modulus share a
// factor. ModInverse panics if modulus <= 0.
func ModInverse(a, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		panic("modarith: modulus must be positive")
	}

	reduced := new(big.Int).Mod(a, modulus)
	g, x, _ := ExtendedGCD(reduced, modulus)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrInverseUndefined, a, modulus, g)
	}
	return x.Mod(x, modulus), nil
}

// ExtendedGCD returns g = gcd(a, b) together with coefficients x, y such that
// a*x + b*y = g. g is never negative. The computation is iterative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		// (oldR, r) = (r, oldR - q*r), and the same for both coefficient rows.
		tmp.Mul(q, r)
		oldR, r = r, oldR.Sub(oldR, tmp)
		tmp.Mul(q, s)
		oldS, s = s, oldS.Sub(oldS, tmp)
		tmp.Mul(q, t)
		oldT, t = t, oldT.Sub(oldT, tmp)
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(a, b)
	return g
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}
