// NoteLens - Community Notes Analytics and Trend Visualization
// Copyright 2026 NoteLens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/notelens/notelens

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file, and environment variables.
//
// Loading order (Koanf v2):
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config file: optional YAML file (config.yaml)
//  3. Environment variables: override any setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment variables:
//   - HTTP_PORT: listen port (default: 8080)
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: read/write timeout (default: 30s)
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings. The database is the analytics
// store written by the ingestion pipeline and read by this service.
//
// Environment variables:
//   - DUCKDB_PATH: database file path, ":memory:" for in-memory
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 2GB)
//   - DUCKDB_THREADS: DuckDB thread count, 0 = runtime.NumCPU()
//   - SEED_MOCK_DATA: populate an empty store with sample notes/posts
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
	SeedMockData           bool   `koanf:"seed_mock_data"`
}

// APIConfig holds API behavior settings.
//
// Environment variables:
//   - API_DEFAULT_LIMIT: default item limit for ranked views (default: 200)
//   - API_CORS_ORIGINS: comma-separated allowed CORS origins (default: *)
type APIConfig struct {
	DefaultLimit int      `koanf:"default_limit"`
	CORSOrigins  []string `koanf:"cors_origins"`
}

// MetricsConfig holds Prometheus exposition settings.
//
// Environment variables:
//   - METRICS_ENABLED: expose /metrics (default: true)
//   - METRICS_SAMPLE_INTERVAL: dataset gauge refresh interval (default: 1m)
type MetricsConfig struct {
	Enabled        bool          `koanf:"enabled"`
	SampleInterval time.Duration `koanf:"sample_interval"`
}

// LoggingConfig holds logging settings.
//
// Environment variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8080,
			Host:    "0.0.0.0",
			Timeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Path:                   "/data/notelens.duckdb",
			MaxMemory:              "2GB",
			Threads:                0, // 0 = use runtime.NumCPU()
			PreserveInsertionOrder: true,
			SeedMockData:           false,
		},
		API: APIConfig{
			DefaultLimit: 200,
			CORSOrigins:  []string{"*"},
		},
		Metrics: MetricsConfig{
			Enabled:        true,
			SampleInterval: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database threads must not be negative, got %d", c.Database.Threads)
	}
	if c.API.DefaultLimit < 1 || c.API.DefaultLimit > 1000 {
		return fmt.Errorf("api default limit must be 1-1000, got %d", c.API.DefaultLimit)
	}
	if c.Metrics.SampleInterval <= 0 {
		return fmt.Errorf("metrics sample interval must be positive, got %v", c.Metrics.SampleInterval)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (expected json or console)", c.Logging.Format)
	}
	return nil
}
