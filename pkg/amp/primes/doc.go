// Package primes samples random primes of an exact bit length.
//
// Sampler draws odd candidates with the top bit set from a randsrc.Source,
// discards multiples of small primes, and confirms survivors with the
// Miller-Rabin oracle at millerrabin.KeyGenRounds. Pair searches for two
// primes concurrently.
package primes
