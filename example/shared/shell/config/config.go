// Package config loads the example's runtime configuration from
// environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Projection store engine selectors.
const (
	EngineMemory = "memory"
	EngineSQLite = "sqlite"
)

// ErrUnknownProjectionEngine is returned for an unsupported PROJECTION_ENGINE value.
var ErrUnknownProjectionEngine = errors.New("unknown projection engine")

// Config holds the event bus and projection store settings for the example
// application. All fields have working defaults, so an empty environment
// yields a runnable configuration.
type Config struct {
	PoolSize         int    `env:"EVENTBUS_POOL_SIZE" envDefault:"10"`
	QueueCapacity    int    `env:"EVENTBUS_QUEUE_CAPACITY" envDefault:"256"`
	ProjectionEngine string `env:"PROJECTION_ENGINE" envDefault:"memory"`
	OTLPEndpoint     string `env:"OTLP_ENDPOINT" envDefault:""`
}

// ParseEnv loads the configuration from environment variables and validates it.
func ParseEnv() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.ProjectionEngine {
	case EngineMemory, EngineSQLite:
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownProjectionEngine, cfg.ProjectionEngine)
	}

	return cfg, nil
}
