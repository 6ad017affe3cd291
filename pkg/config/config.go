// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/qoriq-io/dq-engine/pkg/metrics"
)

// Config represents the application configuration.
type Config struct {
	// Dataset store
	Store *StoreConfig

	// Metrics policy
	ConsistencyMode metrics.ConsistencyMode

	// Logging
	LogLevel  string
	LogFormat string
}

// StoreConfig configures the dataset store backend.
type StoreConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Store: &StoreConfig{
			Driver: getEnv("STORE_DRIVER", "sqlite"),
			DSN:    getEnv("STORE_DSN", "file:dq-engine.db"),
		},
		ConsistencyMode: metrics.ConsistencyMode(getEnv("CONSISTENCY_MODE", string(metrics.ConsistencyJoint))),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures all required configuration is present and valid.
func (c *Config) Validate() error {
	if c.Store == nil {
		return errors.New("store configuration is required")
	}

	switch c.Store.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported store driver %q (want sqlite or postgres)", c.Store.Driver)
	}

	if c.Store.DSN == "" {
		return errors.New("store DSN cannot be empty")
	}

	switch c.ConsistencyMode {
	case metrics.ConsistencyJoint, metrics.ConsistencyBlended:
	default:
		return fmt.Errorf("unsupported consistency mode %q (want joint or blended)", c.ConsistencyMode)
	}

	return nil
}

// MetricsPolicy returns the metrics policy implied by the configuration.
func (c *Config) MetricsPolicy() metrics.Policy {
	return metrics.Policy{Consistency: c.ConsistencyMode}
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
