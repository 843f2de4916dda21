// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is auto-loaded on first use; parsing is done
// with caarlos0/env struct tags.
package config
