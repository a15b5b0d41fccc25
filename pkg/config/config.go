package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/handlecheck/pkg/environment"
	"github.com/dmitrymomot/handlecheck/pkg/logger"
	"github.com/dmitrymomot/handlecheck/pkg/mongo"
	"github.com/dmitrymomot/handlecheck/pkg/pg"
	"github.com/dmitrymomot/handlecheck/pkg/redis"
	"github.com/dmitrymomot/handlecheck/pkg/wordlist"
)

// Directory source names accepted in DIRECTORY_SOURCES.
const (
	SourceStatic   = "static"
	SourceFile     = "file"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
	SourceMongo    = "mongo"
)

var knownSources = []string{SourceStatic, SourceFile, SourceRedis, SourcePostgres, SourceMongo}

// Config is the full application configuration.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	AppName   string `env:"APP_NAME" envDefault:"handlecheck"`
	LogLevel  string `env:"LOG_LEVEL"`  // empty uses the APP_ENV default
	LogFormat string `env:"LOG_FORMAT"` // empty uses the APP_ENV default

	MinLength             int      `env:"USERNAME_MIN_LENGTH" envDefault:"6"`
	ExistingUsernames     []string `env:"EXISTING_USERNAMES" envSeparator:","`
	RestrictedWords       []string `env:"RESTRICTED_WORDS" envSeparator:","`
	ExistingUsernamesFile string   `env:"EXISTING_USERNAMES_FILE"`
	RestrictedWordsFile   string   `env:"RESTRICTED_WORDS_FILE"`

	Sources    []string `env:"DIRECTORY_SOURCES" envSeparator:"," envDefault:"static,file"`
	RandomSeed int64    `env:"RANDOM_SEED" envDefault:"0"` // 0 seeds from the clock

	Redis    redis.Config
	Postgres pg.Config
	Mongo    mongo.Config
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	if c.MinLength < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinLength, c.MinLength)
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Join(ErrInvalidLogLevel, err)
		}
	}
	for _, src := range c.Sources {
		if !slices.Contains(knownSources, src) {
			return fmt.Errorf("%w: %q", ErrUnknownSource, src)
		}
	}
	switch {
	case c.HasSource(SourceRedis) && c.Redis.ConnectionURL == "":
		return fmt.Errorf("%w: %s requires REDIS_URL", ErrMissingSourceSetting, SourceRedis)
	case c.HasSource(SourcePostgres) && c.Postgres.ConnectionString == "":
		return fmt.Errorf("%w: %s requires PG_CONN_URL", ErrMissingSourceSetting, SourcePostgres)
	case c.HasSource(SourceMongo) && c.Mongo.ConnectionURL == "":
		return fmt.Errorf("%w: %s requires MONGODB_URL", ErrMissingSourceSetting, SourceMongo)
	}
	return nil
}

// HasSource reports whether name is listed in DIRECTORY_SOURCES.
func (c Config) HasSource(name string) bool {
	return slices.Contains(c.Sources, name)
}

// LoggerOptions builds logger options: APP_ENV defaults first, then
// LOG_LEVEL and LOG_FORMAT when set. Call after Validate.
func (c Config) LoggerOptions() []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(c.Environment(), c.AppName)}
	if c.LogLevel != "" {
		if lvl, err := logger.ParseLevel(c.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(lvl))
		}
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return opts
}

// Environment returns the parsed APP_ENV value.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

// RestrictedWordList merges RESTRICTED_WORDS with the words from
// RESTRICTED_WORDS_FILE, if set.
func (c Config) RestrictedWordList() ([]string, error) {
	words := slices.Clone(c.RestrictedWords)
	if c.RestrictedWordsFile == "" {
		return words, nil
	}
	fromFile, err := wordlist.ReadFile(c.RestrictedWordsFile)
	if err != nil {
		return nil, errors.Join(ErrReadingWordList, err)
	}
	return append(words, fromFile...), nil
}
