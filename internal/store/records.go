// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/tablemate/internal/models"
)

// Stored records keep references by ID. They are hydrated into models
// types on read so renamed reference data is always reflected.

type preferenceRecord struct {
	CuisineID int64 `json:"cuisine_id"`
	Level     int   `json:"level"`
}

type memberRecord struct {
	ID             int64              `json:"id"`
	FamilyID       string             `json:"family_id"`
	Name           string             `json:"name"`
	RestrictionIDs []int64            `json:"restriction_ids"`
	Preferences    []preferenceRecord `json:"preferences"`
}

type accommodationRecord struct {
	RestrictionID int64  `json:"restriction_id"`
	Notes         string `json:"notes,omitempty"`
}

type restaurantRecord struct {
	ID             int64                 `json:"id"`
	FamilyID       string                `json:"family_id"`
	Name           string                `json:"name"`
	Address        string                `json:"address,omitempty"`
	Phone          string                `json:"phone,omitempty"`
	Website        string                `json:"website,omitempty"`
	CuisineID      int64                 `json:"cuisine_id"`
	PriceRange     int                   `json:"price_range"`
	Rating         float64               `json:"rating"`
	Accommodations []accommodationRecord `json:"accommodations"`
}

// refs resolves reference data within a transaction, caching lookups.
type refs struct {
	txn          *badger.Txn
	restrictions map[int64]models.DietaryRestriction
	cuisines     map[int64]models.Cuisine
}

func newRefs(txn *badger.Txn) *refs {
	return &refs{
		txn:          txn,
		restrictions: make(map[int64]models.DietaryRestriction),
		cuisines:     make(map[int64]models.Cuisine),
	}
}

func (r *refs) restriction(id int64) (models.DietaryRestriction, error) {
	if dr, ok := r.restrictions[id]; ok {
		return dr, nil
	}
	var dr models.DietaryRestriction
	if err := getJSON(r.txn, idKey(restrictionKeyPrefix, id), &dr); err != nil {
		if errors.Is(err, ErrNotFound) {
			return dr, fmt.Errorf("%w: dietary restriction %d does not exist", ErrInvalidReference, id)
		}
		return dr, err
	}
	r.restrictions[id] = dr
	return dr, nil
}

func (r *refs) cuisine(id int64) (models.Cuisine, error) {
	if c, ok := r.cuisines[id]; ok {
		return c, nil
	}
	var c models.Cuisine
	if err := getJSON(r.txn, idKey(cuisineKeyPrefix, id), &c); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c, fmt.Errorf("%w: cuisine %d does not exist", ErrInvalidReference, id)
		}
		return c, err
	}
	r.cuisines[id] = c
	return c, nil
}

func (r *refs) hydrateMember(rec *memberRecord) (models.FamilyMember, error) {
	m := models.FamilyMember{
		ID:           rec.ID,
		FamilyID:     rec.FamilyID,
		Name:         rec.Name,
		Restrictions: make([]models.DietaryRestriction, 0, len(rec.RestrictionIDs)),
		Preferences:  make([]models.CuisinePreference, 0, len(rec.Preferences)),
	}
	for _, id := range rec.RestrictionIDs {
		dr, err := r.restriction(id)
		if err != nil {
			return m, err
		}
		m.Restrictions = append(m.Restrictions, dr)
	}
	for _, p := range rec.Preferences {
		c, err := r.cuisine(p.CuisineID)
		if err != nil {
			return m, err
		}
		m.Preferences = append(m.Preferences, models.CuisinePreference{Cuisine: c, Level: p.Level})
	}
	return m, nil
}

func (r *refs) hydrateRestaurant(rec *restaurantRecord) (models.Restaurant, error) {
	out := models.Restaurant{
		ID:             rec.ID,
		FamilyID:       rec.FamilyID,
		Name:           rec.Name,
		Address:        rec.Address,
		Phone:          rec.Phone,
		Website:        rec.Website,
		PriceRange:     rec.PriceRange,
		Rating:         rec.Rating,
		Accommodations: make([]models.DietaryAccommodation, 0, len(rec.Accommodations)),
	}
	c, err := r.cuisine(rec.CuisineID)
	if err != nil {
		return out, err
	}
	out.Cuisine = c
	for _, a := range rec.Accommodations {
		dr, err := r.restriction(a.RestrictionID)
		if err != nil {
			return out, err
		}
		out.Accommodations = append(out.Accommodations, models.DietaryAccommodation{Restriction: dr, Notes: a.Notes})
	}
	return out, nil
}
