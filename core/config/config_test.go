package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexient-labs/portico/core/config"
)

// No t.Parallel here: the tests mutate process environment variables.

func TestLoad(t *testing.T) {
	type appConfig struct {
		Name  string `env:"CONFIG_TEST_NAME,required"`
		Port  int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
		Debug bool   `env:"CONFIG_TEST_DEBUG" envDefault:"false"`
	}

	t.Run("parses environment with defaults", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_NAME", "portico")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "portico", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.False(t, cfg.Debug)
	})

	t.Run("same type is served from the cache", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_NAME", "changed-after-first-load")
		t.Setenv("CONFIG_TEST_PORT", "9999")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))
		// First Load above cached this type; environment changes are ignored.
		assert.Equal(t, "portico", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		type strictConfig struct {
			Token string `env:"CONFIG_TEST_MISSING_TOKEN,required"`
		}

		var cfg strictConfig
		assert.Error(t, config.Load(&cfg))
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		type strictConfig2 struct {
			Token string `env:"CONFIG_TEST_MISSING_TOKEN_2,required"`
		}

		assert.Panics(t, func() {
			var cfg strictConfig2
			config.MustLoad(&cfg)
		})
	})
}
