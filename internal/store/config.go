// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package store

import (
	"fmt"
	"time"
)

// Config holds store configuration.
type Config struct {
	// Path is the directory where BadgerDB stores its files.
	// Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Data is lost on close.
	InMemory bool

	// SyncWrites forces fsync after every write.
	SyncWrites bool

	// Compression enables Snappy block compression.
	Compression bool

	// GCInterval is the time between value log GC passes.
	GCInterval time.Duration

	// GCRatio is the discard ratio passed to RunValueLogGC.
	GCRatio float64

	// SeedFile is an optional YAML file applied when the store is empty.
	SeedFile string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Path:        "/data/tablemate",
		SyncWrites:  true,
		Compression: false,
		GCInterval:  10 * time.Minute,
		GCRatio:     0.5,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !c.InMemory && c.Path == "" {
		return fmt.Errorf("store path is required when not in memory")
	}
	if c.GCRatio <= 0 || c.GCRatio >= 1 {
		return fmt.Errorf("GC ratio must be between 0 and 1 (exclusive), got %f", c.GCRatio)
	}
	if c.GCInterval < time.Minute {
		return fmt.Errorf("GC interval must be at least 1m, got %v", c.GCInterval)
	}
	return nil
}
