// Package config loads the gateway configuration. Values are layered with
// koanf, later layers winning: built-in defaults, configs/base.yaml,
// configs/{profile}.yaml, then GATEWAY_* environment variables.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the full gateway configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	API       APIConfig       `koanf:"api"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// Addr is the listen address, e.g. "0.0.0.0:8080".
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig selects the level (debug, info, warn, error) and the handler
// (json or text).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig describes how the gateway reaches AniList's GraphQL endpoint.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is exponential backoff: InitialInterval grows by Multiplier
// per attempt up to MaxInterval.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips after MaxFailures consecutive failures, stays
// open for Timeout, then lets HalfOpenLimit trial requests through.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig is the local token bucket in front of AniList. Zero
// RequestsPerSecond turns it off.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// APIConfig bounds what /api/v1 callers may ask for.
type APIConfig struct {
	DefaultPerPage  int `koanf:"default_per_page"`
	MaxPerPage      int `koanf:"max_per_page"`
	OverviewWorkers int `koanf:"overview_workers"`
}

// TelemetryConfig switches OpenTelemetry on and picks the exporter
// ("stdout" or "otlp") and, for OTLP, the collector endpoint.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
