// Package millerrabin decides, probabilistically, whether an integer is prime.
//
// For a composite n each round accepts with probability at most 1/4, so
// IsProbablePrime with k rounds misclassifies a composite with probability at
// most 4^-k. DefaultRounds (10) bounds that by about 9.5e-7. Callers producing
// key material should use KeyGenRounds or more.
//
// Witnesses come from an injected randsrc.Source; pass a seeded source for
// reproducible runs.
//
//	ok, err := millerrabin.IsProbablePrime(n, millerrabin.DefaultRounds, randsrc.Crypto())
package millerrabin
