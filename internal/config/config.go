// Package config provides environment-driven configuration for the wikigraph server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	// Server.
	Port        string
	ListenHost  string
	MetricsPort string
	CORSOrigins []string
	LogLevel    string

	// Persistence. An empty DatabaseURL disables saved explorations.
	DatabaseURL Secret
	DBMaxConns  int

	// Content provider.
	WikipediaRESTURL string
	WikipediaAPIURL  string
	WikipediaPageURL string
	UserAgent        string
	FetchTimeout     time.Duration
	FetchConcurrency int
	FetchRate        float64
	FetchMaxRetries  int
	ArticleCacheSize int

	// Graph engine.
	PathFetchLimit int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             envOrDefault("PORT", "8000"),
		ListenHost:       envOrDefault("LISTEN_HOST", "127.0.0.1"),
		MetricsPort:      envOrDefault("METRICS_PORT", "9091"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		DatabaseURL:      Secret(envOrDefault("DATABASE_URL", "")),
		WikipediaRESTURL: envOrDefault("WIKIPEDIA_REST_URL", "https://en.wikipedia.org/api/rest_v1"),
		WikipediaAPIURL:  envOrDefault("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php"),
		WikipediaPageURL: envOrDefault("WIKIPEDIA_PAGE_URL", "https://en.wikipedia.org/wiki/"),
		UserAgent:        envOrDefault("WIKIPEDIA_USER_AGENT", "Wikipedia-Graph-Explorer/1.0 (Educational Purpose)"),
	}

	var err error

	if cfg.DBMaxConns, err = envInt("DB_MAX_CONNS", 10, 2, 200); err != nil {
		return nil, err
	}

	if cfg.FetchConcurrency, err = envInt("FETCH_CONCURRENCY", 8, 1, 32); err != nil {
		return nil, err
	}

	if cfg.FetchMaxRetries, err = envInt("FETCH_MAX_RETRIES", 2, 0, 5); err != nil {
		return nil, err
	}

	if cfg.ArticleCacheSize, err = envInt("ARTICLE_CACHE_SIZE", 1000, 1, 100_000); err != nil {
		return nil, err
	}

	if cfg.PathFetchLimit, err = envInt("PATH_FETCH_LIMIT", 500, 1, 10_000); err != nil {
		return nil, err
	}

	rate, err := strconv.ParseFloat(envOrDefault("FETCH_RATE", "20"), 64)
	if err != nil || rate < 1 || rate > 200 {
		return nil, fmt.Errorf("FETCH_RATE must be a number between 1 and 200")
	}
	cfg.FetchRate = rate

	timeout, err := time.ParseDuration(envOrDefault("FETCH_TIMEOUT", "5s"))
	if err != nil || timeout < 100*time.Millisecond || timeout > time.Minute {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be a duration between 100ms and 1m")
	}
	cfg.FetchTimeout = timeout

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// MetricsAddr returns the dedicated metrics listen address.
func (c *Config) MetricsAddr() string {
	return c.ListenHost + ":" + c.MetricsPort
}

// PersistenceEnabled reports whether a database is configured.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL.Value() != ""
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// envInt reads an integer variable and checks it lies in [lo, hi].
func envInt(key string, fallback, lo, hi int) (int, error) {
	v, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%s must be an integer between %d and %d", key, lo, hi)
	}

	return v, nil
}
