// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the complete server configuration. A .env file is loaded
// first when present; real environment variables win.
type Config struct {
	Port     string `env:"PORT" envDefault:"8111"`
	Env      string `env:"ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// UseMemoryStore switches to the in-memory backend; implied by
	// ENV=local.
	UseMemoryStore bool `env:"USE_MEMORY_STORE"`

	// SkipAuth disables token verification against Firestore. For
	// seeding and testing only.
	SkipAuth bool `env:"SKIP_AUTH"`

	GoogleCloudProject string `env:"GOOGLE_CLOUD_PROJECT"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:1234,http://127.0.0.1:1234"`
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Env == "local" {
		cfg.UseMemoryStore = true
	}
	return cfg, nil
}

// Local reports whether the server runs against the in-memory store.
func (c *Config) Local() bool {
	return c.UseMemoryStore
}
