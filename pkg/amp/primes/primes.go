package primes

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/millerrabin"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/randsrc"
)

// ErrInvalidBits is returned when a prime of fewer than two bits is requested.
var ErrInvalidBits = errors.New("primes: bit length must be at least 2")

// Source yields integers that are prime and exactly bits long.
type Source interface {
	Prime(ctx context.Context, bits int) (*big.Int, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, bits int) (*big.Int, error)

// Prime calls f.
func (f SourceFunc) Prime(ctx context.Context, bits int) (*big.Int, error) {
	return f(ctx, bits)
}

// Forker is a Source that can hand out an independent copy of itself. Pair
// forks such sources so that each goroutine draws from its own stream.
type Forker interface {
	Source
	Fork() Source
}

// smallPrimes holds the odd primes below 256 used for trial division.
var smallPrimes = []int64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251,
}

// Sampler is a Source built on a random source and the Miller-Rabin oracle.
// It is safe for concurrent use when its random source is.
type Sampler struct {
	rand   randsrc.Source
	oracle *millerrabin.Oracle
}

// NewSampler returns a Sampler drawing from src with millerrabin.KeyGenRounds
// rounds per candidate. A nil src selects randsrc.Crypto().
func NewSampler(src randsrc.Source) *Sampler {
	return NewSamplerWithRounds(src, millerrabin.KeyGenRounds)
}

// NewSamplerWithRounds is NewSampler with an explicit round count.
func NewSamplerWithRounds(src randsrc.Source, rounds int) *Sampler {
	if src == nil {
		src = randsrc.Crypto()
	}
	return &Sampler{rand: src, oracle: millerrabin.New(rounds, src)}
}

// Fork implements Forker. When the random source is a randsrc.Splitter the
// copy draws candidates and witnesses from a split child stream; otherwise it
// shares s.
func (s *Sampler) Fork() Source {
	sp, ok := s.rand.(randsrc.Splitter)
	if !ok {
		return s
	}
	child := sp.Split()
	return &Sampler{rand: child, oracle: millerrabin.New(s.oracle.Rounds, child)}
}

// Prime returns a probable prime p with p.BitLen() == bits. It keeps drawing
// until a candidate passes, checking ctx between candidates.
func (s *Sampler) Prime(ctx context.Context, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBits, bits)
	}

	lo := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	hi := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	hi.Sub(hi, big.NewInt(1))

	rem := new(big.Int)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := s.rand.Int(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("primes: draw candidate: %w", err)
		}
		if bits > 2 {
			candidate.SetBit(candidate, 0, 1)
		}

		switch sieve(candidate, rem) {
		case sievePrime:
			return candidate, nil
		case sieveComposite:
			continue
		}

		ok, err := s.oracle.IsProbablePrime(candidate)
		if err != nil {
			return nil, fmt.Errorf("primes: primality test: %w", err)
		}
		if ok {
			return candidate, nil
		}
	}
}

type sieveResult int

const (
	sieveUnknown sieveResult = iota
	sievePrime
	sieveComposite
)

// sieve classifies c by trial division against smallPrimes. rem is scratch
// space.
func sieve(c, rem *big.Int) sieveResult {
	if c.IsInt64() && c.Int64() <= 3 {
		if c.Int64() >= 2 {
			return sievePrime
		}
		return sieveComposite
	}
	if c.Bit(0) == 0 {
		return sieveComposite
	}
	for _, p := range smallPrimes {
		if c.IsInt64() && c.Int64() == p {
			return sievePrime
		}
		if rem.Mod(c, big.NewInt(p)).Sign() == 0 {
			return sieveComposite
		}
	}
	return sieveUnknown
}

// Pair draws two primes of the given bit length concurrently. If either search
// fails the other is cancelled. The results may be equal; callers that need
// distinct primes must check.
//
// A Forker is forked once per prime before the goroutines start, so a Sampler
// over a seeded source returns the same pair on every run.
func Pair(ctx context.Context, src Source, bits int) (p, q *big.Int, err error) {
	pSrc, qSrc := src, src
	if f, ok := src.(Forker); ok {
		pSrc, qSrc = f.Fork(), f.Fork()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = pSrc.Prime(gctx, bits)
		return err
	})
	g.Go(func() error {
		var err error
		q, err = qSrc.Prime(gctx, bits)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return p, q, nil
}
