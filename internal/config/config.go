// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST, HTTP_PORT
//   - HTTP_TIMEOUT: read and write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
//   - ENVIRONMENT: development, staging or production
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// LoggingConfig holds zerolog settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StoreConfig holds BadgerDB settings.
type StoreConfig struct {
	Path        string `koanf:"path"`
	InMemory    bool   `koanf:"in_memory"`
	SyncWrites  bool   `koanf:"sync_writes"`
	Compression bool   `koanf:"compression"`

	// SeedFile is a YAML file applied when the store is empty. Optional.
	SeedFile string `koanf:"seed_file"`

	GCInterval     time.Duration `koanf:"gc_interval"`
	GCDiscardRatio float64       `koanf:"gc_discard_ratio"`
}

// RecommendConfig holds recommendation engine tuning.
//
// The preference and rating weights must stay small enough that a
// restaurant accommodating more members always outranks one
// accommodating fewer; the engine rejects weights that break this.
type RecommendConfig struct {
	AccommodationWeight float64 `koanf:"accommodation_weight"`
	PreferenceWeight    float64 `koanf:"preference_weight"`
	RatingWeight        float64 `koanf:"rating_weight"`

	HighPreferenceLevel int     `koanf:"high_preference_level"`
	HighRatingThreshold float64 `koanf:"high_rating_threshold"`

	// DropOrder lists filter categories (cuisine, price, rating) in the
	// order they are relaxed.
	DropOrder              []string `koanf:"drop_order"`
	MinAccommodatedMembers int      `koanf:"min_accommodated_members"`
	MaxGroupSize           int      `koanf:"max_group_size"`

	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
