package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load parses environment variables into the provided configuration struct
// based on its `env` field tags. The default `.env` file, if present in the
// working directory, is merged into the environment first; a missing default
// file is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	// The .env file is optional; existing environment variables win.
	_ = godotenv.Load()

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads the named .env files into the process environment without
// overriding variables that are already set. Unlike the implicit default in
// Load, an explicitly named file must exist.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrLoadingEnv, f, err)
		}
	}
	return nil
}

// MustLoad works like Load but panics on failure. Useful for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
