// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package models

// Filters holds the optional hard constraints of a recommendation request.
// A nil pointer or an empty CuisineIDs slice leaves that axis unconstrained.
type Filters struct {
	MaxPriceRange *int     `json:"maxPriceRange,omitempty"`
	MinRating     *float64 `json:"minRating,omitempty"`
	CuisineIDs    []int64  `json:"cuisineIds,omitempty"`
}

// HasPriceCeiling reports whether a price ceiling is set.
func (f *Filters) HasPriceCeiling() bool {
	return f != nil && f.MaxPriceRange != nil
}

// HasRatingFloor reports whether a rating floor is set.
func (f *Filters) HasRatingFloor() bool {
	return f != nil && f.MinRating != nil
}

// HasCuisineAllowList reports whether a cuisine allow-list is set.
func (f *Filters) HasCuisineAllowList() bool {
	return f != nil && len(f.CuisineIDs) > 0
}

// IsEmpty reports whether no axis is constrained.
func (f *Filters) IsEmpty() bool {
	return !f.HasPriceCeiling() && !f.HasRatingFloor() && !f.HasCuisineAllowList()
}

// Clone returns a deep copy so callers can drop constraints without
// touching the original request.
func (f *Filters) Clone() Filters {
	if f == nil {
		return Filters{}
	}
	out := Filters{}
	if f.MaxPriceRange != nil {
		v := *f.MaxPriceRange
		out.MaxPriceRange = &v
	}
	if f.MinRating != nil {
		v := *f.MinRating
		out.MinRating = &v
	}
	if len(f.CuisineIDs) > 0 {
		out.CuisineIDs = append([]int64(nil), f.CuisineIDs...)
	}
	return out
}
