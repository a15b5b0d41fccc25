package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SetReader is the part of the go-redis client used to read a set.
// *redis.Client and redis.UniversalClient satisfy it.
type SetReader interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// Source snapshots the members of a Redis set as registered usernames.
type Source struct {
	client SetReader
	key    string
}

// NewSource returns a Source reading key from client.
func NewSource(client SetReader, key string) (*Source, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Source{client: client, key: key}, nil
}

// Name identifies the source in logs and errors.
func (s *Source) Name() string {
	return fmt.Sprintf("redis:%s", s.key)
}

// Usernames returns all members of the set. A missing key yields an empty list.
func (s *Source) Usernames(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Join(ErrFailedToReadUsernames, err)
	}
	return members, nil
}
