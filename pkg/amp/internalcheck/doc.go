// Package internalcheck holds static policy tests over the library source.
//
// The tests load the pkg/amp packages with golang.org/x/tools/go/packages and
// walk their syntax trees. They enforce that library code stays iterative,
// implements its own number theory instead of delegating to math/big, never
// compares byte slices with ==, and never formats a private exponent.
//
// The package has no exported API and is not meant to be imported.
package internalcheck
