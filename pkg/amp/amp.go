package amp

import (
	"context"
	"math/big"

	"github.com/Neuer2718/applied-math-playground/pkg/amp/logging"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/millerrabin"
	"github.com/Neuer2718/applied-math-playground/pkg/amp/textbookrsa"
)

// KeyPair is an alias for textbookrsa.KeyPair.
type KeyPair = textbookrsa.KeyPair

// Engine bundles a primality oracle and a key generator that share one random
// source. It is safe for concurrent use.
type Engine struct {
	cfg    Config
	oracle *millerrabin.Oracle
	gen    *textbookrsa.Generator
}

// New validates cfg and builds an Engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrap("New", err)
	}

	src := cfg.Source()
	logger := logging.OrNop(cfg.Logger).With("component", "amp")
	return &Engine{
		cfg:    cfg,
		oracle: millerrabin.New(cfg.Rounds, src),
		gen: textbookrsa.NewGenerator(
			textbookrsa.WithRandomSource(src),
			textbookrsa.WithPublicExponent(big.NewInt(cfg.PublicExponent)),
			textbookrsa.WithConcurrentSampling(cfg.ConcurrentSampling),
			textbookrsa.WithLogger(logger),
		),
	}, nil
}

// Config returns the configuration the Engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// IsProbablePrime runs the Miller-Rabin oracle with Config.Rounds rounds.
func (e *Engine) IsProbablePrime(n *big.Int) (bool, error) {
	ok, err := e.oracle.IsProbablePrime(n)
	return ok, wrap("IsProbablePrime", err)
}

// GenerateKeyPair generates a keypair of Config.KeyBits bits.
func (e *Engine) GenerateKeyPair(ctx context.Context) (*KeyPair, error) {
	kp, err := e.gen.GenerateKeyPair(ctx, e.cfg.KeyBits)
	if err != nil {
		return nil, wrap("GenerateKeyPair", err)
	}
	return kp, nil
}

// EncryptBytes is textbookrsa.EncryptBytes.
func (e *Engine) EncryptBytes(msg []byte, kp *KeyPair) (*big.Int, error) {
	c, err := textbookrsa.EncryptBytes(msg, kp)
	if err != nil {
		return nil, wrap("EncryptBytes", err)
	}
	return c, nil
}

// DecryptBytes is textbookrsa.DecryptBytes.
func (e *Engine) DecryptBytes(c *big.Int, kp *KeyPair) []byte {
	return textbookrsa.DecryptBytes(c, kp)
}
