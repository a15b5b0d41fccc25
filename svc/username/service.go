package username

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/handlecheck/pkg/logger"
)

// Rules validates usernames and detects restricted words.
type Rules interface {
	Validate(username string) error
	IsRestricted(username string) bool
}

// Directory reports whether a username is already registered.
type Directory interface {
	Exists(username string) bool
}

// Suggester produces alternatives for a rejected username.
type Suggester interface {
	Generate(ctx context.Context, seed string) []string
}

// Recorder observes finished checks. See pkg/metrics.
type Recorder interface {
	ObserveCheck(outcome string, suggestions int)
}

// handler either resolves the check or passes it on by returning false.
type handler func(ctx context.Context, username string) (Result, bool)

// Service runs username checks.
type Service struct {
	rules     Rules
	dir       Directory
	suggester Suggester
	recorder  Recorder
	log       *slog.Logger
	chain     []handler
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New wires a Service. All collaborators are required.
func New(rules Rules, dir Directory, suggester Suggester, opts ...Option) (*Service, error) {
	switch {
	case rules == nil:
		return nil, ErrNilRules
	case dir == nil:
		return nil, ErrNilDirectory
	case suggester == nil:
		return nil, ErrNilSuggester
	}

	s := &Service{
		rules:     rules,
		dir:       dir,
		suggester: suggester,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Order matters: a taken username is reported as taken even when restricted.
	s.chain = []handler{
		s.checkAvailability,
		s.checkRestriction,
		s.allow,
	}
	return s, nil
}

// CheckUsername decides whether raw, trimmed of surrounding whitespace, can be used.
func (s *Service) CheckUsername(ctx context.Context, raw string) Result {
	ctx = withCheckID(ctx)
	username := strings.TrimSpace(raw)
	s.log.DebugContext(ctx, "checking username", slog.String("raw", raw), logger.Username(username))

	result := s.decide(ctx, username)

	s.log.InfoContext(ctx, "username checked",
		logger.Username(username),
		logger.Outcome(string(result.Outcome)),
		logger.Suggestions(len(result.Suggestions)),
	)
	if s.recorder != nil {
		s.recorder.ObserveCheck(string(result.Outcome), len(result.Suggestions))
	}
	return result
}

// CheckUsernames runs CheckUsername for every input, preserving order.
func (s *Service) CheckUsernames(ctx context.Context, raws ...string) []Result {
	results := make([]Result, 0, len(raws))
	for _, raw := range raws {
		results = append(results, s.CheckUsername(ctx, raw))
	}
	return results
}

// Suggest returns alternatives for seed without checking it first.
func (s *Service) Suggest(ctx context.Context, seed string) []string {
	seed = strings.TrimSpace(seed)
	suggestions := nonNil(s.suggester.Generate(ctx, seed))
	s.log.DebugContext(ctx, "suggestions requested", logger.Username(seed), logger.Suggestions(len(suggestions)))
	return suggestions
}

func (s *Service) decide(ctx context.Context, username string) Result {
	// Structurally invalid usernames never reach the chain or suggestion generation.
	if err := s.rules.Validate(username); err != nil {
		s.log.DebugContext(ctx, "username rejected by validation", logger.Username(username), logger.Error(err))
		return invalid(username, err)
	}

	for _, h := range s.chain {
		if res, ok := h(ctx, username); ok {
			return res
		}
	}
	// The chain ends with allow, which always resolves.
	return available(username)
}

func (s *Service) checkAvailability(ctx context.Context, username string) (Result, bool) {
	if !s.dir.Exists(username) {
		return Result{}, false
	}
	return taken(username, s.suggester.Generate(ctx, username)), true
}

func (s *Service) checkRestriction(ctx context.Context, username string) (Result, bool) {
	if !s.rules.IsRestricted(username) {
		return Result{}, false
	}
	return restricted(username, s.suggester.Generate(ctx, username)), true
}

func (s *Service) allow(ctx context.Context, username string) (Result, bool) {
	return available(username), true
}
