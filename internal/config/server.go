package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the serve-mode settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// RedisAddr enables the Redis-backed vehicle cache when non-empty;
	// otherwise an in-memory cache is used.
	RedisAddr string `yaml:"redis_addr"`

	// RatesFile optionally overrides the built-in rate table.
	RatesFile string `yaml:"rates_file"`

	// RateLimitPerMinute caps calculate/compare requests per client IP.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

// DefaultServerConfig returns the serve-mode defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:               ":8080",
		RateLimitPerMinute: 60,
	}
}

// LoadServerConfig reads a YAML server configuration, filling unset fields
// from the defaults.
func LoadServerConfig(filename string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 60
	}
	return cfg, nil
}
