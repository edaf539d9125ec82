// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/tablemate/internal/config"
	"github.com/tomtom215/tablemate/internal/recommend"
)

// buildRecommendConfig maps application config onto the engine config.
func buildRecommendConfig(cfg *config.Config) *recommend.Config {
	rc := &cfg.Recommend

	dropOrder := make([]recommend.FilterCategory, 0, len(rc.DropOrder))
	for _, cat := range rc.DropOrder {
		dropOrder = append(dropOrder, recommend.FilterCategory(cat))
	}

	return &recommend.Config{
		Weights: recommend.ScoringWeights{
			Accommodation: rc.AccommodationWeight,
			Preference:    rc.PreferenceWeight,
			Rating:        rc.RatingWeight,
		},
		Thresholds: recommend.ReasonThresholds{
			HighPreferenceLevel: rc.HighPreferenceLevel,
			HighRatingThreshold: rc.HighRatingThreshold,
		},
		Relaxation: recommend.RelaxationConfig{
			DropOrder:              dropOrder,
			MinAccommodatedMembers: rc.MinAccommodatedMembers,
		},
		Limits: recommend.LimitsConfig{
			MaxGroupSize: rc.MaxGroupSize,
		},
	}
}

// initRecommend creates the recommendation service backed by the store.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, members recommend.MemberResolver, catalog recommend.CatalogProvider, logger zerolog.Logger) (*recommend.Service, error) {
	rc := buildRecommendConfig(cfg)

	logger.Info().
		Float64("accommodation_weight", rc.Weights.Accommodation).
		Float64("preference_weight", rc.Weights.Preference).
		Float64("rating_weight", rc.Weights.Rating).
		Strs("drop_order", cfg.Recommend.DropOrder).
		Int("min_accommodated_members", rc.Relaxation.MinAccommodatedMembers).
		Int("max_group_size", rc.Limits.MaxGroupSize).
		Msg("initializing recommendation engine")

	return recommend.NewService(rc, members, catalog, logger)
}
