// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/tablemate/internal/models"
)

// CreateRestriction adds a dietary restriction. Names are unique,
// compared case-insensitively.
func (s *Store) CreateRestriction(ctx context.Context, name, description string) (dr *models.DietaryRestriction, err error) {
	defer observe("create", entityRestriction, time.Now(), &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: restriction name is required", ErrInvalidInput)
	}

	s.refMu.Lock()
	defer s.refMu.Unlock()

	existing, err := s.ListRestrictions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if strings.EqualFold(existing[i].Name, name) {
			return nil, fmt.Errorf("%w: dietary restriction %q", ErrConflict, name)
		}
	}

	id, err := s.nextID(entityRestriction)
	if err != nil {
		return nil, err
	}
	out := models.DietaryRestriction{ID: id, Name: name, Description: strings.TrimSpace(description)}

	err = s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, idKey(restrictionKeyPrefix, id), &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRestriction returns a dietary restriction by ID.
func (s *Store) GetRestriction(ctx context.Context, id int64) (dr *models.DietaryRestriction, err error) {
	defer observe("get", entityRestriction, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var out models.DietaryRestriction
	err = s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, idKey(restrictionKeyPrefix, id), &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRestrictions returns all dietary restrictions ordered by ID.
func (s *Store) ListRestrictions(ctx context.Context) (list []models.DietaryRestriction, err error) {
	defer observe("list", entityRestriction, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	out := make([]models.DietaryRestriction, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, []byte(restrictionKeyPrefix), func(val []byte) error {
			var dr models.DietaryRestriction
			if err := json.Unmarshal(val, &dr); err != nil {
				return err
			}
			out = append(out, dr)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list restrictions: %w", err)
	}
	return out, nil
}

// CreateCuisine adds a cuisine. Names are unique, compared case-insensitively.
func (s *Store) CreateCuisine(ctx context.Context, name string) (c *models.Cuisine, err error) {
	defer observe("create", entityCuisine, time.Now(), &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: cuisine name is required", ErrInvalidInput)
	}

	s.refMu.Lock()
	defer s.refMu.Unlock()

	existing, err := s.ListCuisines(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if strings.EqualFold(existing[i].Name, name) {
			return nil, fmt.Errorf("%w: cuisine %q", ErrConflict, name)
		}
	}

	id, err := s.nextID(entityCuisine)
	if err != nil {
		return nil, err
	}
	out := models.Cuisine{ID: id, Name: name}

	err = s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, idKey(cuisineKeyPrefix, id), &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCuisine returns a cuisine by ID.
func (s *Store) GetCuisine(ctx context.Context, id int64) (c *models.Cuisine, err error) {
	defer observe("get", entityCuisine, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var out models.Cuisine
	err = s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, idKey(cuisineKeyPrefix, id), &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCuisines returns all cuisines ordered by ID.
func (s *Store) ListCuisines(ctx context.Context) (list []models.Cuisine, err error) {
	defer observe("list", entityCuisine, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	out := make([]models.Cuisine, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, []byte(cuisineKeyPrefix), func(val []byte) error {
			var c models.Cuisine
			if err := json.Unmarshal(val, &c); err != nil {
				return err
			}
			out = append(out, c)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list cuisines: %w", err)
	}
	return out, nil
}
