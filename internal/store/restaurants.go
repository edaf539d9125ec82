// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/tablemate/internal/models"
)

// AccommodationInput declares that a restaurant can serve a restriction.
type AccommodationInput struct {
	RestrictionID int64
	Notes         string
}

// RestaurantInput holds the writable fields of a restaurant.
type RestaurantInput struct {
	Name           string
	Address        string
	Phone          string
	Website        string
	CuisineID      int64
	PriceRange     int
	Rating         float64
	Accommodations []AccommodationInput
}

func (in *RestaurantInput) toRecord(familyID string, id int64) (*restaurantRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: restaurant name is required", ErrInvalidInput)
	}
	if in.PriceRange < models.MinPriceRange || in.PriceRange > models.MaxPriceRange {
		return nil, fmt.Errorf("%w: price range %d must be between %d and %d",
			ErrInvalidInput, in.PriceRange, models.MinPriceRange, models.MaxPriceRange)
	}
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		return nil, fmt.Errorf("%w: rating %g must be between %g and %g",
			ErrInvalidInput, in.Rating, models.MinRating, models.MaxRating)
	}

	rec := &restaurantRecord{
		ID:             id,
		FamilyID:       familyID,
		Name:           name,
		Address:        strings.TrimSpace(in.Address),
		Phone:          strings.TrimSpace(in.Phone),
		Website:        strings.TrimSpace(in.Website),
		CuisineID:      in.CuisineID,
		PriceRange:     in.PriceRange,
		Rating:         in.Rating,
		Accommodations: make([]accommodationRecord, 0, len(in.Accommodations)),
	}

	seen := make(map[int64]bool, len(in.Accommodations))
	for _, a := range in.Accommodations {
		if seen[a.RestrictionID] {
			return nil, fmt.Errorf("%w: duplicate accommodation for restriction %d", ErrInvalidInput, a.RestrictionID)
		}
		seen[a.RestrictionID] = true
		rec.Accommodations = append(rec.Accommodations, accommodationRecord{
			RestrictionID: a.RestrictionID,
			Notes:         strings.TrimSpace(a.Notes),
		})
	}
	return rec, nil
}

// CreateRestaurant adds a restaurant to a family's collection.
func (s *Store) CreateRestaurant(ctx context.Context, familyID string, in RestaurantInput) (r *models.Restaurant, err error) {
	defer observe("create", entityRestaurant, time.Now(), &err)

	rec, err := in.toRecord(familyID, 0)
	if err != nil {
		return nil, err
	}
	id, err := s.nextID(entityRestaurant)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	return s.writeRestaurant(rec, false)
}

// UpdateRestaurant replaces the writable fields of an existing restaurant.
func (s *Store) UpdateRestaurant(ctx context.Context, familyID string, id int64, in RestaurantInput) (r *models.Restaurant, err error) {
	defer observe("update", entityRestaurant, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	rec, err := in.toRecord(familyID, id)
	if err != nil {
		return nil, err
	}
	return s.writeRestaurant(rec, true)
}

func (s *Store) writeRestaurant(rec *restaurantRecord, mustExist bool) (*models.Restaurant, error) {
	var out models.Restaurant
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := requireFamily(txn, rec.FamilyID); err != nil {
			return err
		}
		key := familyScopedKey(restaurantKeyPrefix, rec.FamilyID, rec.ID)
		if mustExist {
			ok, err := exists(txn, key)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: restaurant %d", ErrNotFound, rec.ID)
			}
		}

		hydrated, err := newRefs(txn).hydrateRestaurant(rec)
		if err != nil {
			return err
		}
		out = hydrated
		return setJSON(txn, key, rec)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRestaurant returns a hydrated restaurant.
func (s *Store) GetRestaurant(ctx context.Context, familyID string, id int64) (r *models.Restaurant, err error) {
	defer observe("get", entityRestaurant, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var out models.Restaurant
	err = s.db.View(func(txn *badger.Txn) error {
		var rec restaurantRecord
		if err := getJSON(txn, familyScopedKey(restaurantKeyPrefix, familyID, id), &rec); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: restaurant %d", ErrNotFound, id)
			}
			return err
		}
		hydrated, err := newRefs(txn).hydrateRestaurant(&rec)
		out = hydrated
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRestaurants returns a family's restaurant collection ordered by ID.
// An empty collection is not an error.
func (s *Store) ListRestaurants(ctx context.Context, familyID string) (list []models.Restaurant, err error) {
	defer observe("list", entityRestaurant, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	out := make([]models.Restaurant, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		r := newRefs(txn)
		return scanPrefix(txn, familyScopedPrefix(restaurantKeyPrefix, familyID), func(val []byte) error {
			var rec restaurantRecord
			if err := json.Unmarshal(val, &rec); err != nil {
				return err
			}
			hydrated, err := r.hydrateRestaurant(&rec)
			if err != nil {
				return err
			}
			out = append(out, hydrated)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return out, nil
}

// DeleteRestaurant removes a restaurant.
func (s *Store) DeleteRestaurant(ctx context.Context, familyID string, id int64) (err error) {
	defer observe("delete", entityRestaurant, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := familyScopedKey(restaurantKeyPrefix, familyID, id)
		ok, err := exists(txn, key)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: restaurant %d", ErrNotFound, id)
		}
		return txn.Delete(key)
	})
}
