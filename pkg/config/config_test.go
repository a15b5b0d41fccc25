package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/handlecheck/pkg/config"
	"github.com/dmitrymomot/handlecheck/pkg/environment"
	"github.com/dmitrymomot/handlecheck/pkg/logger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Work in an empty dir so no stray .env is picked up.
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, environment.Development, cfg.Environment())
	assert.Equal(t, "handlecheck", cfg.AppName)
	assert.Empty(t, cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat)
	assert.Equal(t, 6, cfg.MinLength)
	assert.Empty(t, cfg.ExistingUsernames)
	assert.Empty(t, cfg.RestrictedWords)
	assert.Equal(t, []string{"static", "file"}, cfg.Sources)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.Equal(t, "usernames", cfg.Redis.UsernamesKey)
	assert.Equal(t, "usernames", cfg.Postgres.UsernamesTable)
	assert.Equal(t, "username", cfg.Mongo.Field)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("USERNAME_MIN_LENGTH", "3")
	t.Setenv("EXISTING_USERNAMES", "myUsername,john_doe")
	t.Setenv("RESTRICTED_WORDS", "bad,evil")
	t.Setenv("DIRECTORY_SOURCES", "static,redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, environment.Production, cfg.Environment())
	assert.Equal(t, 3, cfg.MinLength)
	assert.Equal(t, []string{"myUsername", "john_doe"}, cfg.ExistingUsernames)
	assert.Equal(t, []string{"bad", "evil"}, cfg.RestrictedWords)
	assert.True(t, cfg.HasSource(config.SourceRedis))
	assert.False(t, cfg.HasSource(config.SourceFile))
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.ConnectionURL)
	assert.Equal(t, int64(42), cfg.RandomSeed)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, "test.env", "USERNAME_MIN_LENGTH=8\nRESTRICTED_WORDS=admin\n")

	t.Cleanup(func() {
		os.Unsetenv("USERNAME_MIN_LENGTH")
		os.Unsetenv("RESTRICTED_WORDS")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MinLength)
	assert.Equal(t, []string{"admin"}, cfg.RestrictedWords)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("USERNAME_MIN_LENGTH", "six")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("negative min length", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("USERNAME_MIN_LENGTH", "-1")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidMinLength)
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DIRECTORY_SOURCES", "static,ldap")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrUnknownSource)
	})

	t.Run("enabled source without connection", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DIRECTORY_SOURCES", "postgres")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrMissingSourceSetting)
	})

	t.Run("invalid log format", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("LOG_FORMAT", "xml")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("LOG_LEVEL", "loud")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	})
}

func TestMustLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("USERNAME_MIN_LENGTH", "-3")
	assert.Panics(t, func() { config.MustLoad() })
}

func TestParse(t *testing.T) {
	type custom struct {
		Value string `env:"HANDLECHECK_TEST_VALUE" envDefault:"fallback"`
	}

	assert.ErrorIs(t, config.Parse[custom](nil), config.ErrNilPointer)

	var c custom
	require.NoError(t, config.Parse(&c))
	assert.Equal(t, "fallback", c.Value)
}

func TestConfig_RestrictedWordList(t *testing.T) {
	t.Run("env words only", func(t *testing.T) {
		cfg := config.Config{RestrictedWords: []string{"bad"}}
		words, err := cfg.RestrictedWordList()
		require.NoError(t, err)
		assert.Equal(t, []string{"bad"}, words)
	})

	t.Run("merges yaml file", func(t *testing.T) {
		path := writeFile(t, "restricted.yaml", "- evil\n- root\n")
		cfg := config.Config{RestrictedWords: []string{"bad"}, RestrictedWordsFile: path}

		words, err := cfg.RestrictedWordList()
		require.NoError(t, err)
		assert.Equal(t, []string{"bad", "evil", "root"}, words)
	})

	t.Run("merges text file", func(t *testing.T) {
		path := writeFile(t, "restricted.txt", "# words\nevil\n\n  root  \n")
		cfg := config.Config{RestrictedWordsFile: path}

		words, err := cfg.RestrictedWordList()
		require.NoError(t, err)
		assert.Equal(t, []string{"evil", "root"}, words)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Config{RestrictedWordsFile: filepath.Join(t.TempDir(), "nope.txt")}
		_, err := cfg.RestrictedWordList()
		assert.ErrorIs(t, err, config.ErrReadingWordList)
	})
}

func TestConfig_LoggerOptions(t *testing.T) {
	t.Run("environment defaults", func(t *testing.T) {
		cfg := config.Config{Env: "development", AppName: "handlecheck"}
		assert.Len(t, cfg.LoggerOptions(), 1)
	})

	t.Run("explicit level and format", func(t *testing.T) {
		cfg := config.Config{Env: "production", LogLevel: "debug", LogFormat: "text"}
		assert.Len(t, cfg.LoggerOptions(), 3)
	})

	t.Run("builds a working logger", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.Config{Env: "production", AppName: "handlecheck", LogLevel: "warn"}
		log := logger.New(append(cfg.LoggerOptions(), logger.WithOutput(&buf))...)

		log.Info("dropped")
		log.Warn("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), `"msg":"kept"`)
		assert.Contains(t, buf.String(), `"service":"handlecheck"`)
	})
}
