package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	loadDotenv sync.Once
	cacheMu    sync.Mutex
	cache      = make(map[string]any)
)

// Load parses environment variables into the given struct pointer using
// `env` struct tags. A .env file, if present, is loaded once per process
// before the first parse. Each configuration type is parsed only once; later
// calls for the same type return the cached value.
func Load[T any](cfg *T) error {
	loadDotenv.Do(func() {
		// Missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	key := fmt.Sprintf("%T", *cfg)

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}
	cache[key] = *cfg
	return nil
}

// MustLoad is Load but panics on failure; intended for startup paths where a
// broken environment must abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
