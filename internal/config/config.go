package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// BcryptCost tunes how expensive password hashing is. Raising it
	// later is safe: old hashes keep verifying and are flagged for
	// rehash on login.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Token-bucket limits applied to the auth endpoints, per client IP.
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT" envDefault:"5"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST" envDefault:"10"`
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address in :port format.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
