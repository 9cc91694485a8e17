package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config.errors.parsing_failed")

	// ErrInvalidConfig is returned when a parsed config fails its own Validate check.
	ErrInvalidConfig = errors.New("config.errors.invalid")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("config.errors.nil_pointer")

	// ErrEnvFile is returned by LoadEnv when an explicitly named .env file cannot be read.
	ErrEnvFile = errors.New("config.errors.env_file")
)
