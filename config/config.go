package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment. A .env
// file is loaded in main before processing.
type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	JWTSecret    string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	SeedPassword string `envconfig:"SEED_ADMIN_PASSWORD" default:"admin"`
	DB           PostgresConfig
}

type PostgresConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	Name     string `envconfig:"DB_NAME" default:"sneakerhub"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to process environment: %w", err)
	}
	return &cfg, nil
}

// DSN prefers DATABASE_URL when set and falls back to the discrete DB_*
// variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port,
	)
}
