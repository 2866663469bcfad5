package config

import (
	"fmt"
	"os"

	"bobber/internal/core"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Build store drivers accepted in STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config defines all configurable parameters for the API, sourced from
// environment variables (loaded from .env for local runs).
type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port int    `envconfig:"PORT" default:"8000"`

	AllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`

	// Build persistence
	StoreDriver      string `envconfig:"STORE_DRIVER"`
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"bobber"`
	BuildsCollection string `envconfig:"BUILDS_COLLECTION" default:"builds"`
}

// Load reads .env (outside production) and binds the environment to a Config.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Environment returns the parsed deployment environment.
func (c *Config) Environment() core.Environment {
	return core.ParseEnvironment(c.Env)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ResolveStoreDriver picks the build store backend. An explicit STORE_DRIVER
// wins; otherwise mongo when DATABASE_URL is set, otherwise memory so the
// catalog and pricing endpoints keep working without a database.
func (c *Config) ResolveStoreDriver() string {
	if c.StoreDriver != "" {
		return c.StoreDriver
	}
	if c.DatabaseURL != "" {
		return DriverMongo
	}
	return DriverMemory
}
