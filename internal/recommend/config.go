// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"fmt"
)

// FilterCategory names one axis of the request filters.
type FilterCategory string

const (
	// FilterCuisine is the cuisine allow-list.
	FilterCuisine FilterCategory = "cuisine"

	// FilterPrice is the price ceiling.
	FilterPrice FilterCategory = "price"

	// FilterRating is the rating floor.
	FilterRating FilterCategory = "rating"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the contribution of each scoring axis.
	Weights ScoringWeights `json:"weights"`

	// Thresholds controls when qualitative reasons are emitted.
	Thresholds ReasonThresholds `json:"thresholds"`

	// Relaxation controls the order in which constraints are relaxed.
	Relaxation RelaxationConfig `json:"relaxation"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// ScoringWeights defines the relative contribution of each scoring axis.
// Each axis term is in [0, 1] before weighting.
type ScoringWeights struct {
	// Accommodation is the weight for the share of accommodated members.
	// This is the dominant axis.
	// Default: 1.0.
	Accommodation float64 `json:"accommodation"`

	// Preference is the weight for the mean cuisine preference level.
	// Default: 0.03.
	Preference float64 `json:"preference"`

	// Rating is the weight for the restaurant rating.
	// Default: 0.01.
	Rating float64 `json:"rating"`
}

// ReasonThresholds controls the qualitative reasons attached to a recommendation.
type ReasonThresholds struct {
	// HighPreferenceLevel is the level at or above which a member's
	// preference counts as a high cuisine match.
	// Default: 4.
	HighPreferenceLevel int `json:"high_preference_level"`

	// HighRatingThreshold is the rating at or above which a restaurant
	// is described as highly rated.
	// Default: 4.0.
	HighRatingThreshold float64 `json:"high_rating_threshold"`
}

// RelaxationConfig controls the relaxation ladder.
type RelaxationConfig struct {
	// DropOrder is the order in which filter categories are dropped
	// (cumulatively) before every filter is removed.
	// Default: cuisine, price, rating.
	DropOrder []FilterCategory `json:"drop_order"`

	// MinAccommodatedMembers is the number of accommodated members a
	// restaurant needs to count as a result, capped at the group size.
	// 1 admits partial matches; MaxGroupSize requires the whole group.
	// Default: 1.
	MinAccommodatedMembers int `json:"min_accommodated_members"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxGroupSize is the largest member group a request may name.
	// The accommodation axis dominates only for groups up to this size.
	// Default: 20.
	MaxGroupSize int `json:"max_group_size"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoringWeights{
			Accommodation: 1.0,
			Preference:    0.03,
			Rating:        0.01,
		},
		Thresholds: ReasonThresholds{
			HighPreferenceLevel: 4,
			HighRatingThreshold: 4.0,
		},
		Relaxation: RelaxationConfig{
			DropOrder:              []FilterCategory{FilterCuisine, FilterPrice, FilterRating},
			MinAccommodatedMembers: 1,
		},
		Limits: LimitsConfig{
			MaxGroupSize: 20,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Weights.Accommodation <= 0 {
		return fmt.Errorf("weights.accommodation must be positive, got %f", c.Weights.Accommodation)
	}
	if c.Weights.Preference < 0 {
		return fmt.Errorf("weights.preference must be non-negative, got %f", c.Weights.Preference)
	}
	if c.Weights.Rating < 0 {
		return fmt.Errorf("weights.rating must be non-negative, got %f", c.Weights.Rating)
	}

	if c.Limits.MaxGroupSize < 1 {
		return fmt.Errorf("limits.max_group_size must be positive, got %d", c.Limits.MaxGroupSize)
	}

	// One member's worth of accommodation must outweigh every secondary term.
	step := c.Weights.Accommodation / float64(c.Limits.MaxGroupSize)
	if c.Weights.Preference+c.Weights.Rating >= step {
		return fmt.Errorf("weights.preference + weights.rating must be < weights.accommodation / limits.max_group_size (%f), got %f",
			step, c.Weights.Preference+c.Weights.Rating)
	}

	if c.Thresholds.HighPreferenceLevel < 1 || c.Thresholds.HighPreferenceLevel > 5 {
		return fmt.Errorf("thresholds.high_preference_level must be in [1, 5], got %d", c.Thresholds.HighPreferenceLevel)
	}
	if c.Thresholds.HighRatingThreshold < 0 || c.Thresholds.HighRatingThreshold > 5 {
		return fmt.Errorf("thresholds.high_rating_threshold must be in [0, 5], got %f", c.Thresholds.HighRatingThreshold)
	}

	seen := make(map[FilterCategory]bool, len(c.Relaxation.DropOrder))
	for _, cat := range c.Relaxation.DropOrder {
		switch cat {
		case FilterCuisine, FilterPrice, FilterRating:
		default:
			return fmt.Errorf("relaxation.drop_order contains unknown category %q", cat)
		}
		if seen[cat] {
			return fmt.Errorf("relaxation.drop_order contains %q more than once", cat)
		}
		seen[cat] = true
	}
	if c.Relaxation.MinAccommodatedMembers < 0 {
		return fmt.Errorf("relaxation.min_accommodated_members must be non-negative, got %d", c.Relaxation.MinAccommodatedMembers)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Relaxation.DropOrder = append([]FilterCategory(nil), c.Relaxation.DropOrder...)
	return &out
}

