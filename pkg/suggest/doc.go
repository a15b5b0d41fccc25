// Package suggest generates alternative usernames for a seed that is taken or
// restricted.
//
// A Generator repeatedly runs a decorator.Chain over the seed and keeps every
// distinct candidate that is neither registered nor restricted. Generation
// stops once MaxSuggestions candidates are collected or after MaxFailures
// rejected candidates in total. The failure counter is never reset, so a run
// that hits three rejections stops for good even if accepted candidates were
// found in between.
//
// A free candidate equal to the seed is discarded without counting as a failure;
// a taken or restricted one counts like any other rejection.
// Duplicates collapse. The result is sorted ascending and may hold fewer than
// MaxSuggestions entries, possibly none:
//
//	gen := suggest.New(dir, rules,
//	    suggest.WithRand(rand.New(rand.NewSource(1))),
//	)
//	names := gen.Generate(ctx, "myUsername")
package suggest
