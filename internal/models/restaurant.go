// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package models

// Price range and rating domains.
const (
	MinPriceRange = 1
	MaxPriceRange = 4
	MinRating     = 0.0
	MaxRating     = 5.0
)

// DietaryAccommodation declares that a restaurant can serve a restriction.
// Notes are advisory ("ask for the GF crust") and never affect scoring.
type DietaryAccommodation struct {
	Restriction DietaryRestriction `json:"restriction"`
	Notes       string             `json:"notes,omitempty"`
}

// Restaurant is an entry in a family's restaurant collection.
//
// Accommodations are closed-world: a restriction that is not listed is
// treated as not accommodated, never as unknown.
type Restaurant struct {
	ID             int64                  `json:"id"`
	FamilyID       string                 `json:"familyId"`
	Name           string                 `json:"name"`
	Address        string                 `json:"address,omitempty"`
	Phone          string                 `json:"phone,omitempty"`
	Website        string                 `json:"website,omitempty"`
	Cuisine        Cuisine                `json:"cuisine"`
	PriceRange     int                    `json:"priceRange"`
	Rating         float64                `json:"rating"`
	Accommodations []DietaryAccommodation `json:"accommodations"`
}

// Accommodates reports whether the restaurant lists the restriction.
func (r *Restaurant) Accommodates(restrictionID int64) bool {
	for _, a := range r.Accommodations {
		if a.Restriction.ID == restrictionID {
			return true
		}
	}
	return false
}
