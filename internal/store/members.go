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

	"github.com/tomtom215/tablemate/internal/models"
)

// PreferenceInput is a cuisine preference on a member write.
type PreferenceInput struct {
	CuisineID int64
	Level     int
}

// MemberInput holds the writable fields of a family member.
type MemberInput struct {
	Name           string
	RestrictionIDs []int64
	Preferences    []PreferenceInput
}

// toRecord validates the input and builds the stored record. Restriction
// IDs are deduplicated and sorted; a cuisine may appear only once.
func (in *MemberInput) toRecord(familyID string, id int64) (*memberRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}

	rec := &memberRecord{
		ID:             id,
		FamilyID:       familyID,
		Name:           name,
		RestrictionIDs: make([]int64, 0, len(in.RestrictionIDs)),
		Preferences:    make([]preferenceRecord, 0, len(in.Preferences)),
	}

	seen := make(map[int64]bool, len(in.RestrictionIDs))
	for _, rid := range in.RestrictionIDs {
		if !seen[rid] {
			seen[rid] = true
			rec.RestrictionIDs = append(rec.RestrictionIDs, rid)
		}
	}
	sort.Slice(rec.RestrictionIDs, func(i, j int) bool { return rec.RestrictionIDs[i] < rec.RestrictionIDs[j] })

	cuisines := make(map[int64]bool, len(in.Preferences))
	for _, p := range in.Preferences {
		if p.Level < models.MinPreferenceLevel || p.Level > models.MaxPreferenceLevel {
			return nil, fmt.Errorf("%w: preference level %d for cuisine %d must be between %d and %d",
				ErrInvalidInput, p.Level, p.CuisineID, models.MinPreferenceLevel, models.MaxPreferenceLevel)
		}
		if cuisines[p.CuisineID] {
			return nil, fmt.Errorf("%w: duplicate preference for cuisine %d", ErrInvalidInput, p.CuisineID)
		}
		cuisines[p.CuisineID] = true
		rec.Preferences = append(rec.Preferences, preferenceRecord(p))
	}
	return rec, nil
}

// CreateMember adds a member to a family.
func (s *Store) CreateMember(ctx context.Context, familyID string, in MemberInput) (m *models.FamilyMember, err error) {
	defer observe("create", entityMember, time.Now(), &err)

	rec, err := in.toRecord(familyID, 0)
	if err != nil {
		return nil, err
	}
	id, err := s.nextID(entityMember)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	return s.writeMember(rec, false)
}

// UpdateMember replaces the writable fields of an existing member.
func (s *Store) UpdateMember(ctx context.Context, familyID string, id int64, in MemberInput) (m *models.FamilyMember, err error) {
	defer observe("update", entityMember, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	rec, err := in.toRecord(familyID, id)
	if err != nil {
		return nil, err
	}
	return s.writeMember(rec, true)
}

// writeMember validates references and stores the record in one transaction.
func (s *Store) writeMember(rec *memberRecord, mustExist bool) (*models.FamilyMember, error) {
	var out models.FamilyMember
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := requireFamily(txn, rec.FamilyID); err != nil {
			return err
		}
		key := familyScopedKey(memberKeyPrefix, rec.FamilyID, rec.ID)
		if mustExist {
			ok, err := exists(txn, key)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: member %d", ErrNotFound, rec.ID)
			}
		}

		hydrated, err := newRefs(txn).hydrateMember(rec)
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

// GetMember returns a hydrated member.
func (s *Store) GetMember(ctx context.Context, familyID string, id int64) (m *models.FamilyMember, err error) {
	defer observe("get", entityMember, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var out models.FamilyMember
	err = s.db.View(func(txn *badger.Txn) error {
		var rec memberRecord
		if err := getJSON(txn, familyScopedKey(memberKeyPrefix, familyID, id), &rec); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: member %d", ErrNotFound, id)
			}
			return err
		}
		hydrated, err := newRefs(txn).hydrateMember(&rec)
		out = hydrated
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMembers returns a family's members ordered by ID.
func (s *Store) ListMembers(ctx context.Context, familyID string) (list []models.FamilyMember, err error) {
	defer observe("list", entityMember, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	out := make([]models.FamilyMember, 0)
	err = s.db.View(func(txn *badger.Txn) error {
		r := newRefs(txn)
		return scanPrefix(txn, familyScopedPrefix(memberKeyPrefix, familyID), func(val []byte) error {
			var rec memberRecord
			if err := json.Unmarshal(val, &rec); err != nil {
				return err
			}
			m, err := r.hydrateMember(&rec)
			if err != nil {
				return err
			}
			out = append(out, m)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return out, nil
}

// DeleteMember removes a member.
func (s *Store) DeleteMember(ctx context.Context, familyID string, id int64) (err error) {
	defer observe("delete", entityMember, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := familyScopedKey(memberKeyPrefix, familyID, id)
		ok, err := exists(txn, key)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: member %d", ErrNotFound, id)
		}
		return txn.Delete(key)
	})
}

// ResolveMembers returns the family's members among ids, in the order
// requested. IDs that do not exist are omitted.
func (s *Store) ResolveMembers(ctx context.Context, familyID string, ids []int64) (list []models.FamilyMember, err error) {
	defer observe("resolve", entityMember, time.Now(), &err)

	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	out := make([]models.FamilyMember, 0, len(ids))
	err = s.db.View(func(txn *badger.Txn) error {
		r := newRefs(txn)
		for _, id := range ids {
			var rec memberRecord
			err := getJSON(txn, familyScopedKey(memberKeyPrefix, familyID, id), &rec)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			m, err := r.hydrateMember(&rec)
			if err != nil {
				return err
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve members: %w", err)
	}
	return out, nil
}
