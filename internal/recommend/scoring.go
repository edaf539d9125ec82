// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tomtom215/tablemate/internal/models"
)

// Reason texts.
const (
	reasonAllAccommodated = "Accommodates all dietary restrictions"
)

// Scorer scores a single restaurant against a member group.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	weights    ScoringWeights
	thresholds ReasonThresholds
}

// NewScorer creates a scorer from the engine configuration.
func NewScorer(cfg *Config) *Scorer {
	return &Scorer{
		weights:    cfg.Weights,
		thresholds: cfg.Thresholds,
	}
}

// Score computes the recommendation for one restaurant.
//
// The result does not depend on the order of members, of their
// restrictions, or of the restaurant's accommodations.
func (s *Scorer) Score(r *models.Restaurant, members []models.FamilyMember) Recommendation {
	// Union of restrictions across the group, keyed by ID.
	union := make(map[int64]models.DietaryRestriction)
	for i := range members {
		for _, dr := range members[i].Restrictions {
			union[dr.ID] = dr
		}
	}

	accommodated := make(map[int64]bool, len(union))
	missed := make([]models.DietaryRestriction, 0)
	for id, dr := range union {
		ok := r.Accommodates(id)
		accommodated[id] = ok
		if !ok {
			missed = append(missed, dr)
		}
	}
	sort.Slice(missed, func(i, j int) bool {
		if missed[i].Name != missed[j].Name {
			return missed[i].Name < missed[j].Name
		}
		return missed[i].ID < missed[j].ID
	})

	accommodatedIDs := make([]int64, 0, len(members))
	for i := range members {
		if memberAccommodated(&members[i], accommodated) {
			accommodatedIDs = append(accommodatedIDs, members[i].ID)
		}
	}
	sort.Slice(accommodatedIDs, func(i, j int) bool { return accommodatedIDs[i] < accommodatedIDs[j] })

	var levelSum, expressed, highMatches int
	for i := range members {
		level, ok := members[i].PreferenceFor(r.Cuisine.ID)
		if !ok {
			continue
		}
		levelSum += level
		expressed++
		if level >= s.thresholds.HighPreferenceLevel {
			highMatches++
		}
	}

	var breakdown ScoreBreakdown
	if len(members) > 0 {
		breakdown.Accommodation = float64(len(accommodatedIDs)) / float64(len(members))
	}
	if expressed > 0 {
		breakdown.Preference = float64(levelSum) / float64(expressed) / float64(models.MaxPreferenceLevel)
	}
	breakdown.Rating = clampRating(r.Rating) / models.MaxRating

	score := s.weights.Accommodation*breakdown.Accommodation +
		s.weights.Preference*breakdown.Preference +
		s.weights.Rating*breakdown.Rating

	reasons := make([]string, 0, 3)
	if len(members) > 0 && len(accommodatedIDs) == len(members) {
		reasons = append(reasons, reasonAllAccommodated)
	}
	switch {
	case highMatches > 0:
		reasons = append(reasons, fmt.Sprintf("High cuisine match for %d %s", highMatches, pluralMembers(highMatches)))
	case expressed > 0:
		reasons = append(reasons, fmt.Sprintf("Cuisine preferred by %d %s", expressed, pluralMembers(expressed)))
	}
	if r.Rating >= s.thresholds.HighRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%s/5)", strconv.FormatFloat(r.Rating, 'f', -1, 64)))
	}

	return Recommendation{
		Restaurant:          *r,
		Score:               score,
		Scores:              breakdown,
		Reasons:             reasons,
		AccommodatedMembers: accommodatedIDs,
		MissedRestrictions:  missed,
	}
}

// memberAccommodated reports whether every restriction of the member is
// accommodated. A member with no restrictions is always accommodated.
func memberAccommodated(m *models.FamilyMember, accommodated map[int64]bool) bool {
	for _, dr := range m.Restrictions {
		if !accommodated[dr.ID] {
			return false
		}
	}
	return true
}

func clampRating(v float64) float64 {
	if v < models.MinRating {
		return models.MinRating
	}
	if v > models.MaxRating {
		return models.MaxRating
	}
	return v
}

func pluralMembers(n int) string {
	if n == 1 {
		return "member"
	}
	return "members"
}

// rankRecommendations orders recommendations lexicographically by
// accommodation, cuisine preference, rating, name, then restaurant ID.
// Score is reported but not used for ordering, so rating only separates
// restaurants tied on both accommodation and preference.
func rankRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := &recs[i], &recs[j]
		if a.Scores.Accommodation != b.Scores.Accommodation {
			return a.Scores.Accommodation > b.Scores.Accommodation
		}
		if a.Scores.Preference != b.Scores.Preference {
			return a.Scores.Preference > b.Scores.Preference
		}
		if a.Restaurant.Rating != b.Restaurant.Rating {
			return a.Restaurant.Rating > b.Restaurant.Rating
		}
		if a.Restaurant.Name != b.Restaurant.Name {
			return a.Restaurant.Name < b.Restaurant.Name
		}
		return a.Restaurant.ID < b.Restaurant.ID
	})
}
