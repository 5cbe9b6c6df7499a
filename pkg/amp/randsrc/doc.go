// Package randsrc provides the random-integer capability consumed by the
// primality oracle (witness selection) and the prime sampler.
//
// Callers inject a Source explicitly instead of relying on an ambient global
// generator. Crypto() is backed by crypto/rand and is the only source suitable
// for key generation. NewSeeded() yields a reproducible stream for tests and
// demonstrations; it is not cryptographically secure.
//
// Crypto, Seeded and Fixed are safe for concurrent use. A Source built by
// Reader is safe only when its underlying stream is. Sharing one Seeded value
// between goroutines keeps it race free but makes the order of draws, and so
// the results, depend on scheduling; give each goroutine its own stream with
// Seeded.Split instead.
package randsrc
