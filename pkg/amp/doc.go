// Package amp is the entry point of applied-math-playground: a Miller-Rabin
// primality oracle and a textbook RSA engine built on it.
//
// The subpackages can be used directly:
//
//   - modarith: modular exponentiation and inverses
//   - randsrc: injectable random sources
//   - millerrabin: the primality oracle
//   - primes: random prime sampling
//   - textbookrsa: key generation and unpadded encryption
//   - logging: the slog-backed logging facade
//
// Engine wires them together from a Config:
//
//	cfg := amp.DefaultConfig()
//	cfg.KeyBits = 1024
//	eng, err := amp.New(cfg)
//	kp, err := eng.GenerateKeyPair(ctx)
//	c, err := eng.EncryptBytes([]byte("hi"), kp)
//
// Textbook RSA is insecure by construction. Use it to study the arithmetic.
package amp
