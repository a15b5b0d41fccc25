package suggest

import (
	"log/slog"

	"github.com/dmitrymomot/handlecheck/pkg/decorator"
)

// Option configures a Generator.
type Option func(*Generator)

// WithChain replaces the default decorator chain.
func WithChain(chain decorator.Chain) Option {
	return func(g *Generator) {
		if chain != nil {
			g.chain = chain
		}
	}
}

// WithRand sets the random source. The caller owns its concurrency discipline:
// pass decorator.NewLockedRand when the Generator is shared between goroutines.
func WithRand(r decorator.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithMaxSuggestions overrides MaxSuggestions. Non-positive values are ignored.
func WithMaxSuggestions(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxSuggestions = n
		}
	}
}

// WithMaxFailures overrides MaxFailures. Non-positive values are ignored.
func WithMaxFailures(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxFailures = n
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}
