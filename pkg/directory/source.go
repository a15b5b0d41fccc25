package directory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/handlecheck/pkg/wordlist"
)

// Source supplies a snapshot of existing usernames.
type Source interface {
	Name() string
	Usernames(ctx context.Context) ([]string, error)
}

// Load reads all sources in order and merges their usernames into one Directory.
// The first failing source aborts loading.
func Load(ctx context.Context, sources ...Source) (*Directory, error) {
	var all []string
	for _, src := range sources {
		if src == nil {
			return nil, ErrNilSource
		}
		names, err := src.Usernames(ctx)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadSource, fmt.Errorf("source %s: %w", src.Name(), err))
		}
		all = append(all, names...)
	}
	return New(all...), nil
}

type staticSource struct {
	names []string
}

// Static returns a Source serving a fixed list of usernames.
func Static(usernames ...string) Source {
	return &staticSource{names: slices.Clone(usernames)}
}

func (s *staticSource) Name() string { return "static" }

func (s *staticSource) Usernames(ctx context.Context) ([]string, error) {
	return slices.Clone(s.names), nil
}

type fileSource struct {
	path string
}

// File returns a Source reading usernames from a YAML or plain text word list.
// An empty path yields no usernames.
func File(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string { return "file" }

func (s *fileSource) Usernames(ctx context.Context) ([]string, error) {
	if s.path == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return wordlist.ReadFile(s.path)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc struct {
	SourceName string
	Fn         func(ctx context.Context) ([]string, error)
}

func (f SourceFunc) Name() string { return f.SourceName }

func (f SourceFunc) Usernames(ctx context.Context) ([]string, error) {
	return f.Fn(ctx)
}
