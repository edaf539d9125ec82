// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tablemate/internal/logging"
)

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
		c.validateStore,
		c.validateRecommend,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Security.RateLimitWindow < time.Second {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
		}
	}
	if c.Security.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.IsProduction() {
		for _, o := range c.Security.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain * in production")
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be a zerolog level such as debug, info or warn, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateStore() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required unless STORE_IN_MEMORY=true")
	}
	if c.Store.GCInterval < time.Minute {
		return fmt.Errorf("STORE_GC_INTERVAL must be at least 1m")
	}
	if c.Store.GCDiscardRatio <= 0 || c.Store.GCDiscardRatio >= 1 {
		return fmt.Errorf("STORE_GC_DISCARD_RATIO must be between 0 and 1 (exclusive)")
	}
	return nil
}

// validateRecommend checks ranges only. The engine validates the
// weights against each other when the service is built.
func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.AccommodationWeight <= 0 {
		return fmt.Errorf("RECOMMEND_ACCOMMODATION_WEIGHT must be positive")
	}
	if r.PreferenceWeight < 0 || r.RatingWeight < 0 {
		return fmt.Errorf("RECOMMEND_PREFERENCE_WEIGHT and RECOMMEND_RATING_WEIGHT must not be negative")
	}
	if r.HighPreferenceLevel < 1 || r.HighPreferenceLevel > 5 {
		return fmt.Errorf("RECOMMEND_HIGH_PREFERENCE_LEVEL must be between 1 and 5")
	}
	if r.HighRatingThreshold < 0 || r.HighRatingThreshold > 5 {
		return fmt.Errorf("RECOMMEND_HIGH_RATING_THRESHOLD must be between 0 and 5")
	}
	seen := make(map[string]bool, len(r.DropOrder))
	for _, cat := range r.DropOrder {
		switch cat {
		case "cuisine", "price", "rating":
		default:
			return fmt.Errorf("RECOMMEND_DROP_ORDER contains unknown category %q", cat)
		}
		if seen[cat] {
			return fmt.Errorf("RECOMMEND_DROP_ORDER lists %q twice", cat)
		}
		seen[cat] = true
	}
	if r.MaxGroupSize < 1 {
		return fmt.Errorf("RECOMMEND_MAX_GROUP_SIZE must be at least 1")
	}
	if r.MinAccommodatedMembers < 1 || r.MinAccommodatedMembers > r.MaxGroupSize {
		return fmt.Errorf("RECOMMEND_MIN_ACCOMMODATED_MEMBERS must be between 1 and RECOMMEND_MAX_GROUP_SIZE")
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	return nil
}
