// Package modarith implements the modular arithmetic used by the primality
// oracle and the textbook RSA engine.
//
// # Operations
//
//   - ModExp(): base^exponent mod modulus by binary square-and-multiply
//   - ModInverse(): multiplicative inverse modulo m via extended Euclid
//   - ExtendedGCD(): Bézout coefficients for a pair of integers
//   - GCD(): greatest common divisor
//
// All functions accept *big.Int operands of arbitrary size, never modify their
// arguments, and return freshly allocated results.
//
// # Preconditions
//
// A non-positive modulus or a negative exponent is a programming error and
// causes a panic. A missing inverse is an ordinary condition reported as
// ErrInverseUndefined.
package modarith
