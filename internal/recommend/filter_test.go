// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"testing"

	"github.com/tomtom215/tablemate/internal/models"
)

func TestFilterRestaurants(t *testing.T) {
	t.Parallel()

	catalog := []models.Restaurant{
		restaurant(1, "Pizza Palace", italian, 2, 4.5),
		restaurant(2, "Veggie Delight", mexican, 1, 3.8),
		restaurant(3, "Golden Dragon", chinese, 3, 4.1),
		restaurant(4, "Unrated Cafe", thai, 1, 0),
		restaurant(5, "Steak Club", italian, 4, 4.9),
	}

	tests := []struct {
		name    string
		filters *models.Filters
		want    []int64
	}{
		{name: "nil filters admit everything", filters: nil, want: []int64{1, 2, 3, 4, 5}},
		{name: "empty cuisine list is unconstrained", filters: &models.Filters{CuisineIDs: []int64{}}, want: []int64{1, 2, 3, 4, 5}},
		{name: "price ceiling is inclusive", filters: &models.Filters{MaxPriceRange: intPtr(2)}, want: []int64{1, 2, 4}},
		{name: "rating floor is inclusive", filters: &models.Filters{MinRating: floatPtr(4.1)}, want: []int64{1, 3, 5}},
		{name: "unrated fails positive floor", filters: &models.Filters{MinRating: floatPtr(0.5)}, want: []int64{1, 2, 3, 5}},
		{name: "zero floor admits unrated", filters: &models.Filters{MinRating: floatPtr(0)}, want: []int64{1, 2, 3, 4, 5}},
		{name: "cuisine allow-list", filters: &models.Filters{CuisineIDs: []int64{italian.ID, thai.ID}}, want: []int64{1, 4, 5}},
		{
			name: "all filters combine",
			filters: &models.Filters{
				MaxPriceRange: intPtr(3),
				MinRating:     floatPtr(4.0),
				CuisineIDs:    []int64{italian.ID, chinese.ID},
			},
			want: []int64{1, 3},
		},
		{name: "no survivors", filters: &models.Filters{CuisineIDs: []int64{99}}, want: []int64{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterRestaurants(catalog, tt.filters)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d restaurants, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterRestaurants_EmptyCatalog(t *testing.T) {
	t.Parallel()

	got := FilterRestaurants(nil, &models.Filters{MaxPriceRange: intPtr(2)})
	if got == nil || len(got) != 0 {
		t.Errorf("FilterRestaurants(nil) = %v, want empty non-nil slice", got)
	}
}
