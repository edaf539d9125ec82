// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/tablemate/internal/models"
)

// CreateFamily creates a family with a generated ID.
func (s *Store) CreateFamily(ctx context.Context, name string) (f *models.Family, err error) {
	defer observe("create", entityFamily, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: family name is required", ErrInvalidInput)
	}

	out := models.Family{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, familyKey(out.ID), &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFamily returns a family by ID.
func (s *Store) GetFamily(ctx context.Context, id string) (f *models.Family, err error) {
	defer observe("get", entityFamily, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var out models.Family
	err = s.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, familyKey(id), &out); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: family %s", ErrNotFound, id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFamilies returns all families ordered by creation time, then ID.
func (s *Store) ListFamilies(ctx context.Context) (list []models.Family, err error) {
	defer observe("list", entityFamily, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	out := make([]models.Family, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, []byte(familyKeyPrefix), func(val []byte) error {
			var f models.Family
			if err := json.Unmarshal(val, &f); err != nil {
				return err
			}
			out = append(out, f)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// requireFamily returns ErrNotFound when the family does not exist.
func requireFamily(txn *badger.Txn, familyID string) error {
	ok, err := exists(txn, familyKey(familyID))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: family %s", ErrNotFound, familyID)
	}
	return nil
}

// IsEmpty reports whether the store holds no families and no reference data.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	if err := s.checkOpen(); err != nil {
		return false, err
	}

	empty := true
	err := s.db.View(func(txn *badger.Txn) error {
		for _, prefix := range []string{familyKeyPrefix, restrictionKeyPrefix, cuisineKeyPrefix} {
			err := scanPrefix(txn, []byte(prefix), func([]byte) error {
				return errStopScan
			})
			if errors.Is(err, errStopScan) {
				empty = false
				return nil
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("check empty: %w", err)
	}
	return empty, nil
}

var errStopScan = errors.New("stop scan")
