package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs that need checks beyond what
// struct tags can express.
type Validator interface {
	Validate() error
}

type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	store = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v. The first successful result for a
// given type is cached and returned on later calls, so the environment is read
// once per type for the life of the process.
//
// The default .env file in the working directory is loaded on first use if it
// exists. Variables already present in the environment take precedence.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	store.mu.Lock()
	defer store.mu.Unlock()

	if cached, ok := store.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if val, ok := any(&parsed).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}

	store.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it in main for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration %s: %v", reflect.TypeFor[T](), err))
	}
}

// LoadEnv loads the given .env files into the process environment and
// disables the implicit default .env lookup. Unlike the default lookup, a
// missing file is an error here because the caller asked for it by name.
func LoadEnv(paths ...string) error {
	defaultEnvLoaded.Do(func() {})
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	store.mu.Lock()
	defer store.mu.Unlock()
	clear(store.values)
}
