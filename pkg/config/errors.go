package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be loaded
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNilPointer is returned when a nil pointer is provided to Parse
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	ErrInvalidMinLength     = errors.New("username minimum length must not be negative")
	ErrUnknownSource        = errors.New("unknown directory source")
	ErrInvalidLogFormat     = errors.New("invalid log format")
	ErrInvalidLogLevel      = errors.New("invalid log level")
	ErrMissingSourceSetting = errors.New("directory source is enabled but not configured")
	ErrReadingWordList      = errors.New("failed to read word list")
)
