// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/tablemate/internal/config"
	"github.com/tomtom215/tablemate/internal/logging"
	"github.com/tomtom215/tablemate/internal/store"
)

// buildStoreConfig maps application config onto the store config.
func buildStoreConfig(cfg *config.Config) *store.Config {
	return &store.Config{
		Path:        cfg.Store.Path,
		InMemory:    cfg.Store.InMemory,
		SyncWrites:  cfg.Store.SyncWrites,
		Compression: cfg.Store.Compression,
		GCInterval:  cfg.Store.GCInterval,
		GCRatio:     cfg.Store.GCDiscardRatio,
		SeedFile:    cfg.Store.SeedFile,
	}
}

// initStore opens the store and applies the seed file when one is
// configured. A seed is only written into an empty store.
func initStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	st, err := store.Open(buildStoreConfig(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.Store.SeedFile == "" {
		return st, nil
	}

	seed, err := store.LoadSeedFile(cfg.Store.SeedFile)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	res, err := st.ApplySeed(ctx, seed)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply seed: %w", err)
	}
	if res.Skipped {
		logging.Info().Str("seed_file", cfg.Store.SeedFile).Msg("Store not empty, seed skipped")
	}
	return st, nil
}
