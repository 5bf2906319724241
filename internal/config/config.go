package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration read from the environment.
type Config struct {
	// DatabaseURL is left empty when unset; db.Connect decides what that means.
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        string `env:"PORT" envDefault:"6137"`

	// DisableDotEnv skips .env loading when set to any non-empty value.
	DisableDotEnv string `env:"DISABLE_DOTENV"`
	DotEnvPath    string `env:"DOTENV_PATH"`
}

// Load parses the configuration from environ, a list of KEY=value pairs
// as returned by os.Environ.
func Load(environ []string) (*Config, error) {
	var cfg Config

	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.DotEnvPath = strings.TrimSpace(cfg.DotEnvPath)
	return &cfg, nil
}

// DotEnvEnabled reports whether .env files should be loaded.
func (c *Config) DotEnvEnabled() bool {
	return c.DisableDotEnv == ""
}
