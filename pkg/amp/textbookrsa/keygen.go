package textbookrsa

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/logging"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/modarith"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/primes"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/randsrc"
)

// MinBitLength is the smallest modulus size GenerateKeyPair accepts.
const MinBitLength = 16

const (
	rejectDuplicatePrime     = "duplicate_prime"
	rejectExponentNotCoprime = "exponent_not_coprime"
)

// Generator produces keypairs with a fixed configuration. It holds no mutable
// state and may be shared when its prime source is safe for concurrent use.
type Generator struct {
	opts options
}

// NewGenerator returns a Generator. Without options it uses e = 65537 and a
// primes.Sampler over randsrc.Crypto().
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.primes == nil {
		o.primes = primes.NewSampler(randsrc.Crypto())
	}
	return &Generator{opts: o}
}

// GenerateKeyPair is NewGenerator(opts...).GenerateKeyPair(ctx, bitLength).
func GenerateKeyPair(ctx context.Context, bitLength int, opts ...Option) (*KeyPair, error) {
	return NewGenerator(opts...).GenerateKeyPair(ctx, bitLength)
}

// GenerateKeyPair returns a keypair whose modulus is the product of two
// distinct primes of bitLength/2 bits each.
//
// Equal primes are resampled. If gcd(e, φ(n)) != 1 both primes are discarded
// and the search starts over. There is no bound on the number of attempts.
func (g *Generator) GenerateKeyPair(ctx context.Context, bitLength int) (*KeyPair, error) {
	if bitLength < MinBitLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitLength, bitLength)
	}
	e := g.opts.e
	if e.Cmp(big.NewInt(3)) < 0 || e.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidExponent, e)
	}

	half := bitLength / 2
	log := g.opts.logger.With("bits", bitLength, "e", e.String())
	one := big.NewInt(1)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, q, err := g.samplePair(ctx, half)
		if err != nil {
			return nil, fmt.Errorf("textbookrsa: sample primes: %w", err)
		}
		if p.Cmp(q) == 0 {
			log.Debug(ctx, "candidate pair rejected", "reason", rejectDuplicatePrime)
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		if !modarith.Coprime(e, phi) {
			log.Debug(ctx, "candidate pair rejected", "reason", rejectExponentNotCoprime)
			continue
		}

		d, err := modarith.ModInverse(e, phi)
		if err != nil {
			panic(fmt.Sprintf("textbookrsa: inverse missing after coprimality check: %v", err))
		}

		log.Info(ctx, "keypair generated", "modulus_bits", n.BitLen(), logging.Redacted("d"))
		return &KeyPair{n: n, e: new(big.Int).Set(e), d: d}, nil
	}
}

func (g *Generator) samplePair(ctx context.Context, bits int) (p, q *big.Int, err error) {
	if g.opts.concurrent {
		return primes.Pair(ctx, g.opts.primes, bits)
	}
	p, err = g.opts.primes.Prime(ctx, bits)
	if err != nil {
		return nil, nil, err
	}
	q, err = g.opts.primes.Prime(ctx, bits)
	if err != nil {
		return nil, nil, err
	}
	return p, q, nil
}
