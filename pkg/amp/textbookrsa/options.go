package textbookrsa

import (
	"math/big"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/logging"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/primes"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/randsrc"
)

// DefaultPublicExponent is F4 = 2^16 + 1.
const DefaultPublicExponent = 65537

// Option configures a Generator.
type Option func(*options)

type options struct {
	e          *big.Int
	primes     primes.Source
	logger     logging.Logger
	concurrent bool
}

func defaultOptions() options {
	return options{
		e:      big.NewInt(DefaultPublicExponent),
		logger: logging.Nop(),
	}
}

// WithPublicExponent sets the public exponent. It must be odd and at least 3.
func WithPublicExponent(e *big.Int) Option {
	return func(o *options) {
		if e != nil {
			o.e = new(big.Int).Set(e)
		}
	}
}

// WithPrimeSource replaces the prime sampler. The source must only return
// primes; key generation does not re-test them.
func WithPrimeSource(src primes.Source) Option {
	return func(o *options) {
		o.primes = src
	}
}

// WithRandomSource builds the default prime sampler on top of src.
func WithRandomSource(src randsrc.Source) Option {
	return func(o *options) {
		o.primes = primes.NewSampler(src)
	}
}

// WithLogger sets the logger used to report rejected candidates and accepted
// keys. Secret values are never logged.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		o.logger = logging.OrNop(l)
	}
}

// WithConcurrentSampling searches for p and q on separate goroutines. The
// prime source must then be safe for concurrent use.
func WithConcurrentSampling(enabled bool) Option {
	return func(o *options) {
		o.concurrent = enabled
	}
}
