package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration structs keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// loadDefaultEnv loads the .env file from the working directory once per
// process. A missing file is not an error.
func loadDefaultEnv() {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
}

// LoadEnv loads one or more .env files into the process environment.
// Variables already present in the environment are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v and caches the result per type.
// Later calls for the same type return the cached copy without re-reading
// the environment. Use it for settings read once at startup.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[typeName]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have filled the cache while we waited.
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[typeName] = *v

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Read parses environment variables into v on every call, bypassing the
// cache. Use it for values that must be validated per request, so that a
// missing variable surfaces as a request error rather than a startup crash
// and a fixed environment is picked up without a restart.
func Read[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
