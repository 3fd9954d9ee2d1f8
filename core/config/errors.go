package config

import "errors"

var (
	// ErrNilConfig is returned when a nil pointer is passed to Load or MustLoad.
	ErrNilConfig = errors.New("nil config pointer")

	// ErrFailedToLoadEnvFile is returned when a .env file is present but
	// cannot be read or parsed. A missing file is not an error.
	ErrFailedToLoadEnvFile = errors.New("failed to load .env file")

	// ErrFailedToParseEnv is returned when the environment cannot be parsed
	// into the provided struct (missing required variables, type mismatches).
	ErrFailedToParseEnv = errors.New("failed to parse environment variables")
)
