package config

import (
	"errors"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores one parsed value per configuration type so every caller
	// observes the same snapshot of the environment.
	cache sync.Map // reflect.Type -> parsed struct value

	dotenvOnce sync.Once
	dotenvErr  error
)

// loadDotEnv loads a .env file from the working directory once per process.
func loadDotEnv() error {
	dotenvOnce.Do(func() { dotenvErr = readEnvFile(".env") })
	return dotenvErr
}

// readEnvFile merges the variables from path into the process environment.
// Variables already present in the environment are never overridden, so the
// real environment always wins over file values. A missing file is not an
// error; a file that exists but cannot be parsed is.
func readEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(ErrFailedToLoadEnvFile, err)
	}
	return nil
}

// Load parses environment variables into cfg using its env struct tags.
// The first call for a given type reads the environment; subsequent calls
// return the cached value unchanged.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	if err := loadDotEnv(); err != nil {
		return err
	}

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrFailedToParseEnv, err)
	}

	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Intended for process startup
// where a missing required variable should stop the program immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
