// Package config loads runtime settings from the environment.
//
// Variables use the PEOPLE_ prefix and may come from a .env file in the
// working directory:
//
//	PEOPLE_DB         database file (default: people.db in the working directory)
//	PEOPLE_LOG_LEVEL  debug, info, warn (or warning) or error (default: warn)
//
// Command-line flags take precedence over anything loaded here.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload" // loads .env into the process env, if present
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "PEOPLE_"

	// DefaultDBName is the database file used when neither --db nor PEOPLE_DB is set.
	DefaultDBName = "people.db"

	// DefaultLogLevel keeps routine info logs out of command output.
	DefaultLogLevel = "warn"
)

// Config holds settings shared by every command.
type Config struct {
	DB       string `koanf:"db" validate:"required"`
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn warning error"`
}

// Load reads PEOPLE_* variables, fills defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DB == "" {
		cfg.DB = DefaultDBPath()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// DefaultDBPath returns DefaultDBName inside the current working directory.
func DefaultDBPath() string {
	abs, err := filepath.Abs(DefaultDBName)
	if err != nil {
		return DefaultDBName
	}
	return abs
}
