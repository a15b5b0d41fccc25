package decorator

// Stage transforms s using randomness from r.
type Stage func(r Rand, s string) string

// Chain applies its stages in order.
type Chain []Stage

// Default constants.
const (
	DefaultDelimiter = '_'
	DefaultMaxNumber = 10
	DefaultMaxReps   = 2
)

// Default returns the standard chain: repeat, number suffix, then delimiter.
func Default() Chain {
	return Chain{
		RepeatCapitalized(DefaultMaxReps),
		NumberSuffix(DefaultMaxNumber, DefaultDelimiter),
		InsertDelimiter(DefaultDelimiter),
	}
}

// Decorate runs seed through every stage and returns the final string.
func (c Chain) Decorate(r Rand, seed string) string {
	s := seed
	for _, stage := range c {
		s = stage(r, s)
	}
	return s
}

// Maybe gates fn behind a coin flip drawn before fn runs.
func Maybe(fn Stage) Stage {
	return func(r Rand, s string) string {
		if !coin(r) {
			return s
		}
		return fn(r, s)
	}
}
