// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"github.com/tomtom215/tablemate/internal/models"
)

// FilterRestaurants returns the restaurants that satisfy every set filter,
// preserving catalog order. Nil or empty filters admit the whole catalog.
//
// Restaurants without a rating are stored with rating 0 and therefore
// fail any positive rating floor.
func FilterRestaurants(restaurants []models.Restaurant, f *models.Filters) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(restaurants))
	if f.IsEmpty() {
		return append(out, restaurants...)
	}

	var allowed map[int64]struct{}
	if f.HasCuisineAllowList() {
		allowed = make(map[int64]struct{}, len(f.CuisineIDs))
		for _, id := range f.CuisineIDs {
			allowed[id] = struct{}{}
		}
	}

	for i := range restaurants {
		r := &restaurants[i]
		if f.HasPriceCeiling() && r.PriceRange > *f.MaxPriceRange {
			continue
		}
		if f.HasRatingFloor() && r.Rating < *f.MinRating {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[r.Cuisine.ID]; !ok {
				continue
			}
		}
		out = append(out, *r)
	}
	return out
}

// hasCategory reports whether a filter category is set.
func hasCategory(f *models.Filters, cat FilterCategory) bool {
	switch cat {
	case FilterCuisine:
		return f.HasCuisineAllowList()
	case FilterPrice:
		return f.HasPriceCeiling()
	case FilterRating:
		return f.HasRatingFloor()
	}
	return false
}

// dropCategory clears one filter category in place.
func dropCategory(f *models.Filters, cat FilterCategory) {
	switch cat {
	case FilterCuisine:
		f.CuisineIDs = nil
	case FilterPrice:
		f.MaxPriceRange = nil
	case FilterRating:
		f.MinRating = nil
	}
}
