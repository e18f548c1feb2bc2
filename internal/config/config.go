package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Reference-table locations, loaded once at startup and immutable for
	// the lifetime of the process.
	CountyTablePath  string
	FactorTablePath  string
	UniverseFilePath string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		CountyTablePath:  envOrDefault("COUNTY_TABLE", "data/counties.csv"),
		FactorTablePath:  envOrDefault("FACTOR_TABLE", "data/factors.csv"),
		UniverseFilePath: envOrDefault("UNIVERSE_FILE", "data/universe.txt"),
	}

	if cfg.CountyTablePath == "" {
		return nil, errors.New("COUNTY_TABLE is required")
	}
	if cfg.FactorTablePath == "" {
		return nil, errors.New("FACTOR_TABLE is required")
	}
	if cfg.UniverseFilePath == "" {
		return nil, errors.New("UNIVERSE_FILE is required")
	}

	return cfg, nil
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
