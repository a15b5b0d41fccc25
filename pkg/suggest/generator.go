package suggest

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/handlecheck/pkg/decorator"
	"github.com/dmitrymomot/handlecheck/pkg/logger"
)

const (
	// MaxSuggestions bounds the number of suggestions returned.
	MaxSuggestions = 14

	// MaxFailures is the total number of rejected candidates tolerated per run.
	MaxFailures = 3

	// maxAttempts caps chain runs for chains that cannot yield new candidates.
	maxAttempts = 10_000
)

// Directory reports whether a username is already registered.
type Directory interface {
	Exists(username string) bool
}

// Restrictor reports whether a username contains a restricted word.
type Restrictor interface {
	IsRestricted(username string) bool
}

// Generator produces username suggestions from a seed.
type Generator struct {
	dir            Directory
	restrictor     Restrictor
	chain          decorator.Chain
	rand           decorator.Rand
	maxSuggestions int
	maxFailures    int
	log            *slog.Logger
}

// New returns a Generator filtering candidates through dir and restrictor.
// Without WithRand it uses a time-seeded, goroutine-safe source.
func New(dir Directory, restrictor Restrictor, opts ...Option) *Generator {
	g := &Generator{
		dir:            dir,
		restrictor:     restrictor,
		chain:          decorator.Default(),
		maxSuggestions: MaxSuggestions,
		maxFailures:    MaxFailures,
		log:            logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = decorator.NewLockedRand(0)
	}
	return g
}

// Generate returns up to maxSuggestions distinct candidates derived from seed,
// sorted ascending. The result never contains seed and is never nil.
// ctx only carries log attributes such as the check ID.
func (g *Generator) Generate(ctx context.Context, seed string) []string {
	accepted := make(map[string]struct{}, g.maxSuggestions)
	failures := 0

	for attempt := 0; len(accepted) < g.maxSuggestions && failures < g.maxFailures; attempt++ {
		if attempt == maxAttempts {
			g.log.WarnContext(ctx, "suggestion attempts exhausted", logger.Username(seed))
			break
		}

		candidate := g.chain.Decorate(g.rand, seed)

		if g.rejected(candidate) {
			failures++
			g.log.DebugContext(ctx, "suggestion attempt failed",
				logger.Username(candidate),
				logger.Attempt(failures),
			)
			continue
		}

		if candidate == seed {
			continue
		}

		accepted[candidate] = struct{}{}
	}

	suggestions := make([]string, 0, len(accepted))
	for s := range accepted {
		suggestions = append(suggestions, s)
	}
	slices.Sort(suggestions)

	g.log.DebugContext(ctx, "suggestions generated",
		logger.Username(seed),
		logger.Suggestions(len(suggestions)),
		logger.Failures(failures),
	)

	return suggestions
}

func (g *Generator) rejected(candidate string) bool {
	if g.dir != nil && g.dir.Exists(candidate) {
		return true
	}
	return g.restrictor != nil && g.restrictor.IsRestricted(candidate)
}
