package millerrabin

import (
	"math"
	"math/big"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/modarith"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/randsrc"
)

const (
	// DefaultRounds is the round count used when the caller passes rounds < 1.
	DefaultRounds = 10

	// KeyGenRounds bounds the false-positive rate by 2^-128.
	KeyGenRounds = 64
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsProbablePrime reports whether n is probably prime after rounds independent
// Miller-Rabin trials with witnesses drawn uniformly from [2, n-2].
//
// 2 and 3 are prime; n <= 1 and even n are not. Those answers are exact and
// consume no randomness. A false result is always exact; a true result is
// wrong with probability at most 4^-rounds. The error is non-nil only when src
// fails.
func IsProbablePrime(n *big.Int, rounds int, src randsrc.Source) (bool, error) {
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.Cmp(one) <= 0 || n.Bit(0) == 0 {
		return false, nil
	}
	if rounds < 1 {
		rounds = DefaultRounds
	}

	nMinusOne := new(big.Int).Sub(n, one)
	d, r := decompose(nMinusOne)
	hi := new(big.Int).Sub(n, two)

	for i := 0; i < rounds; i++ {
		a, err := src.Int(two, hi)
		if err != nil {
			return false, err
		}
		if !passes(a, d, r, n, nMinusOne) {
			return false, nil
		}
	}
	return true, nil
}

// decompose writes m = 2^r * d with d odd. m must be positive.
func decompose(m *big.Int) (d *big.Int, r int) {
	r = int(m.TrailingZeroBits())
	return new(big.Int).Rsh(m, uint(r)), r
}

// passes runs a single Miller-Rabin round with witness a and reports whether
// n survived it.
func passes(a, d *big.Int, r int, n, nMinusOne *big.Int) bool {
	x := modarith.ModExp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}

	reachedMinusOne := false
	for j := 0; j < r-1; j++ {
		x = modarith.Square(x, n)
		if x.Cmp(nMinusOne) == 0 {
			reachedMinusOne = true
			break
		}
	}
	return reachedMinusOne
}

// deterministicBases are the first twelve primes. A Miller-Rabin round against
// each of them decides primality exactly for every n < 3.3 * 10^24, which
// covers the whole uint64 range. The shorter list 2..17 admits composites
// such as 341550071728321.
var deterministicBases = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrimeUint64 reports whether n is prime. The answer is exact and uses no
// randomness: trial division by deterministicBases is followed by one round
// per base.
func IsPrimeUint64(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range deterministicBases {
		if n%p == 0 {
			return n == p
		}
	}

	bn := new(big.Int).SetUint64(n)
	nMinusOne := new(big.Int).Sub(bn, one)
	d, r := decompose(nMinusOne)
	a := new(big.Int)
	for _, p := range deterministicBases {
		if !passes(a.SetUint64(p), d, r, bn, nMinusOne) {
			return false
		}
	}
	return true
}

// ErrorBound returns the worst-case probability, 4^-rounds, that a composite
// passes rounds trials.
func ErrorBound(rounds int) float64 {
	if rounds < 1 {
		rounds = DefaultRounds
	}
	return math.Pow(4, -float64(rounds))
}

// Oracle bundles a round count with a random source. It holds no other state
// and is safe for concurrent use when Source is. The zero value is usable: it
// runs DefaultRounds rounds over randsrc.Crypto().
type Oracle struct {
	Rounds int
	Source randsrc.Source
}

// New returns an Oracle. A nil src selects randsrc.Crypto().
func New(rounds int, src randsrc.Source) *Oracle {
	if src == nil {
		src = randsrc.Crypto()
	}
	return &Oracle{Rounds: rounds, Source: src}
}

// IsProbablePrime runs IsProbablePrime with the oracle's configuration.
func (o *Oracle) IsProbablePrime(n *big.Int) (bool, error) {
	src := o.Source
	if src == nil {
		src = randsrc.Crypto()
	}
	return IsProbablePrime(n, o.Rounds, src)
}
