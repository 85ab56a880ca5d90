// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ListenAddr is where the HTTP server binds. It is not configurable.
const ListenAddr = "0.0.0.0:3000"

// Config holds server configuration.
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL,required,notEmpty"`
	MaxConns       int           `env:"TODOS_MAX_CONNS" envDefault:"5"`
	AcquireTimeout time.Duration `env:"TODOS_ACQUIRE_TIMEOUT" envDefault:"3s"`
	ConnectTimeout time.Duration `env:"TODOS_CONNECT_TIMEOUT" envDefault:"10s"`

	// RenderBody also writes the listing into the response body.
	RenderBody bool `env:"TODOS_RENDER_BODY" envDefault:"false"`

	OTelEnabled  bool   `env:"TODOS_OTEL_ENABLED" envDefault:"true"`
	OTelEndpoint string `env:"TODOS_OTEL_ENDPOINT"`
}

// Load parses the environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects pool settings that cannot work.
func (c Config) Validate() error {
	if c.MaxConns < 1 {
		return fmt.Errorf("TODOS_MAX_CONNS must be at least 1, got %d", c.MaxConns)
	}
	if c.AcquireTimeout <= 0 {
		return errors.New("TODOS_ACQUIRE_TIMEOUT must be positive")
	}
	if c.ConnectTimeout <= 0 {
		return errors.New("TODOS_CONNECT_TIMEOUT must be positive")
	}
	return nil
}
