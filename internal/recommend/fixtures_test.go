// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"context"
	"sync/atomic"

	"github.com/tomtom215/tablemate/internal/models"
)

var (
	vegan      = models.DietaryRestriction{ID: 1, Name: "Vegan"}
	glutenFree = models.DietaryRestriction{ID: 2, Name: "Gluten Free"}
	nutAllergy = models.DietaryRestriction{ID: 3, Name: "Nut Allergy"}
	dairyFree  = models.DietaryRestriction{ID: 4, Name: "Dairy Free"}

	italian = models.Cuisine{ID: 1, Name: "Italian"}
	mexican = models.Cuisine{ID: 2, Name: "Mexican"}
	thai    = models.Cuisine{ID: 3, Name: "Thai"}
	chinese = models.Cuisine{ID: 4, Name: "Chinese"}
)

const testFamily = "fam-1"

func member(id int64, name string, restrictions []models.DietaryRestriction, prefs ...models.CuisinePreference) models.FamilyMember {
	return models.FamilyMember{
		ID:           id,
		FamilyID:     testFamily,
		Name:         name,
		Restrictions: restrictions,
		Preferences:  prefs,
	}
}

func pref(c models.Cuisine, level int) models.CuisinePreference {
	return models.CuisinePreference{Cuisine: c, Level: level}
}

func restaurant(id int64, name string, c models.Cuisine, price int, rating float64, accommodates ...models.DietaryRestriction) models.Restaurant {
	r := models.Restaurant{
		ID:         id,
		FamilyID:   testFamily,
		Name:       name,
		Cuisine:    c,
		PriceRange: price,
		Rating:     rating,
	}
	for _, dr := range accommodates {
		r.Accommodations = append(r.Accommodations, models.DietaryAccommodation{Restriction: dr})
	}
	return r
}

func restrictions(rs ...models.DietaryRestriction) []models.DietaryRestriction {
	return rs
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// fakeStore implements MemberResolver and CatalogProvider for testing.
type fakeStore struct {
	members     []models.FamilyMember
	restaurants []models.Restaurant
	membersErr  error
	catalogErr  error

	resolveCalls atomic.Int32
	catalogCalls atomic.Int32
}

func (f *fakeStore) ResolveMembers(_ context.Context, familyID string, ids []int64) ([]models.FamilyMember, error) {
	f.resolveCalls.Add(1)
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.FamilyMember
	// Return in reverse store order to prove the service reorders.
	for i := len(f.members) - 1; i >= 0; i-- {
		m := f.members[i]
		if m.FamilyID == familyID && want[m.ID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) ListRestaurants(_ context.Context, familyID string) ([]models.Restaurant, error) {
	f.catalogCalls.Add(1)
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	var out []models.Restaurant
	for _, r := range f.restaurants {
		if r.FamilyID == familyID {
			out = append(out, r)
		}
	}
	return out, nil
}
