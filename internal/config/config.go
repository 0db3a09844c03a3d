// Package config provides centralized configuration management for the dashboard.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	API      APIConfig
	View     ViewConfig
	Mutation MutationConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown, including the wait for an
	// in-flight product submission (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// APIConfig holds settings for the external product API.
type APIConfig struct {
	// BaseURL is the API root; product endpoints are BaseURL + "/products"
	BaseURL string `env:"PRODUCT_API_URL" envAlt:"API_BASE_URL" default:"https://api.escuelajs.co/api/v1"`

	// Timeout is the per-request timeout for API calls (default: 15s)
	Timeout time.Duration `env:"PRODUCT_API_TIMEOUT" default:"15s"`

	// UserAgent is sent with every API request
	UserAgent string `env:"PRODUCT_API_USER_AGENT" default:"catalogdash/1.0"`
}

// ViewConfig holds table view settings.
type ViewConfig struct {
	// PageSizes are the page sizes offered in the page-size selector
	PageSizes []int `env:"VIEW_PAGE_SIZES" default:"5,10,20,50"`

	// DefaultPageSize must be one of PageSizes (default: 10)
	DefaultPageSize int `env:"VIEW_DEFAULT_PAGE_SIZE" default:"10"`
}

// MutationConfig holds settings for create/update submissions.
type MutationConfig struct {
	// MaxWaitTime is how long a submission waits while another one is
	// still being saved (default: 10s)
	MaxWaitTime time.Duration `env:"MUTATION_MAX_WAIT_TIME" default:"10s"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 300)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"300"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
