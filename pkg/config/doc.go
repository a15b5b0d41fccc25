// Package config loads handlecheck configuration from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// LoadEnv reads optional .env files without overriding variables that are
// already set, and Parse fills any tagged struct. Load combines both for
// Config and validates the result.
//
//	cfg, err := config.Load(".env.local")
//	if err != nil {
//	    return err
//	}
//	words, err := cfg.RestrictedWordList()
//
// Directory sources are selected with DIRECTORY_SOURCES, a comma separated
// list of static, file, redis, postgres and mongo. Connection settings for
// the remote sources come from the pkg/redis, pkg/pg and pkg/mongo Config
// structs embedded in Config.
//
// All errors wrap one of the package sentinels and can be checked with
// errors.Is.
package config
