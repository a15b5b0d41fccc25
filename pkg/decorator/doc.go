// Package decorator mutates a seed string through an ordered chain of
// randomised text transformations to produce username candidates.
//
// A Chain is a slice of Stage functions applied in order: the first stage
// receives the seed, each following stage receives the previous output.
// Every stage built by this package is gated by a coin flip, so on each run
// it either transforms its input or passes it through unchanged.
//
// Randomness comes from an explicit Rand passed to Decorate. Given the same
// seed string and the same random sequence a chain always produces the same
// output, which keeps generation reproducible in tests:
//
//	chain := decorator.Default()
//	r := rand.New(rand.NewSource(42))
//	candidate := chain.Decorate(r, "myUsername") // e.g. "myUsername_7"
//
// Built-in stages:
//
//   - RepeatCapitalized appends the capitalised input one or more times.
//   - NumberSuffix appends a number from 1 to max, optionally after a delimiter.
//   - InsertDelimiter inserts a delimiter strictly inside the string.
//
// The default chain applies them in that order.
package decorator
