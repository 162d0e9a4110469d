package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all program settings, populated from environment variables.
type Config struct {
	ArchiveEndpoint string
	ArchiveTimeout  time.Duration
	DataDir         string
	OutDir          string
	LogLevel        string
	LogFormat       string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("ARCHIVE_TIMEOUT", "20s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid ARCHIVE_TIMEOUT")
	}

	cfg := &Config{
		ArchiveEndpoint: envOrDefault("ARCHIVE_ENDPOINT", "https://swapi.py4e.com/api"),
		ArchiveTimeout:  timeout,
		DataDir:         envOrDefault("DATA_DIR", "data"),
		OutDir:          envOrDefault("OUT_DIR", "out"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.ArchiveEndpoint == "" {
		return nil, errors.New("ARCHIVE_ENDPOINT is required")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.OutDir == "" {
		return nil, errors.New("OUT_DIR is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
