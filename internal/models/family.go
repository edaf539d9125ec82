// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package models

import "time"

// Family is the scope that owns members and a restaurant collection.
type Family struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// DietaryRestriction is shared reference data. Members and restaurant
// accommodations point at restrictions; they never own them.
type DietaryRestriction struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Cuisine is shared reference data.
type Cuisine struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CuisinePreference associates a member with a cuisine at a strength of 1-5.
type CuisinePreference struct {
	Cuisine Cuisine `json:"cuisine"`
	Level   int     `json:"level"`
}

// Preference level domain.
const (
	MinPreferenceLevel = 1
	MaxPreferenceLevel = 5
)

// FamilyMember is a fully hydrated member record: restriction and cuisine
// references are resolved to their reference data.
type FamilyMember struct {
	ID           int64                `json:"id"`
	FamilyID     string               `json:"familyId"`
	Name         string               `json:"name"`
	Restrictions []DietaryRestriction `json:"restrictions"`
	Preferences  []CuisinePreference  `json:"preferences"`
}

// RestrictionCount returns the number of distinct restrictions the member holds.
func (m *FamilyMember) RestrictionCount() int {
	seen := make(map[int64]struct{}, len(m.Restrictions))
	for _, r := range m.Restrictions {
		seen[r.ID] = struct{}{}
	}
	return len(seen)
}

// PreferenceFor returns the member's preference level for a cuisine.
func (m *FamilyMember) PreferenceFor(cuisineID int64) (int, bool) {
	for _, p := range m.Preferences {
		if p.Cuisine.ID == cuisineID {
			return p.Level, true
		}
	}
	return 0, false
}
