// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/tablemate/internal/models"
)

func TestScorer_Score(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())

	alice := member(1, "Alice", restrictions(glutenFree), pref(italian, 5))
	bob := member(2, "Bob", nil, pref(italian, 3))
	carol := member(3, "Carol", restrictions(vegan, nutAllergy))

	t.Run("full accommodation", func(t *testing.T) {
		t.Parallel()
		r := restaurant(1, "Pizza Palace", italian, 2, 4.5, glutenFree)
		rec := scorer.Score(&r, []models.FamilyMember{alice, bob})

		if rec.Scores.Accommodation != 1.0 {
			t.Errorf("Accommodation = %f, want 1.0", rec.Scores.Accommodation)
		}
		if rec.Scores.Preference != 0.8 {
			t.Errorf("Preference = %f, want 0.8", rec.Scores.Preference)
		}
		if rec.Scores.Rating != 0.9 {
			t.Errorf("Rating = %f, want 0.9", rec.Scores.Rating)
		}
		wantReasons := []string{
			"Accommodates all dietary restrictions",
			"High cuisine match for 1 member",
			"Highly rated (4.5/5)",
		}
		if !reflect.DeepEqual(rec.Reasons, wantReasons) {
			t.Errorf("Reasons = %q, want %q", rec.Reasons, wantReasons)
		}
		if !reflect.DeepEqual(rec.AccommodatedMembers, []int64{1, 2}) {
			t.Errorf("AccommodatedMembers = %v, want [1 2]", rec.AccommodatedMembers)
		}
		if len(rec.MissedRestrictions) != 0 {
			t.Errorf("MissedRestrictions = %v, want none", rec.MissedRestrictions)
		}
	})

	t.Run("partial accommodation lists missed restrictions by name", func(t *testing.T) {
		t.Parallel()
		r := restaurant(2, "Veggie Delight", mexican, 1, 3.0, vegan)
		rec := scorer.Score(&r, []models.FamilyMember{alice, bob, carol})

		// Only Bob (no restrictions) is accommodated.
		if !reflect.DeepEqual(rec.AccommodatedMembers, []int64{2}) {
			t.Errorf("AccommodatedMembers = %v, want [2]", rec.AccommodatedMembers)
		}
		want := []models.DietaryRestriction{glutenFree, nutAllergy}
		if !reflect.DeepEqual(rec.MissedRestrictions, want) {
			t.Errorf("MissedRestrictions = %v, want %v", rec.MissedRestrictions, want)
		}
		if rec.Scores.Preference != 0 {
			t.Errorf("Preference = %f, want 0 without expressed preferences", rec.Scores.Preference)
		}
		if len(rec.Reasons) != 0 {
			t.Errorf("Reasons = %q, want none", rec.Reasons)
		}
	})

	t.Run("moderate preferences", func(t *testing.T) {
		t.Parallel()
		m1 := member(10, "Dan", nil, pref(thai, 3))
		m2 := member(11, "Eve", nil, pref(thai, 2))
		r := restaurant(3, "Thai Garden", thai, 2, 3.9)
		rec := scorer.Score(&r, []models.FamilyMember{m1, m2})

		want := []string{"Accommodates all dietary restrictions", "Cuisine preferred by 2 members"}
		if !reflect.DeepEqual(rec.Reasons, want) {
			t.Errorf("Reasons = %q, want %q", rec.Reasons, want)
		}
	})

	t.Run("unknown accommodation is not accommodated", func(t *testing.T) {
		t.Parallel()
		r := restaurant(4, "Mystery Diner", chinese, 2, 4.0)
		rec := scorer.Score(&r, []models.FamilyMember{alice})
		if rec.Scores.Accommodation != 0 {
			t.Errorf("Accommodation = %f, want 0", rec.Scores.Accommodation)
		}
	})
}

func TestScorer_ScoreIsWeightedSum(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	scorer := NewScorer(cfg)
	group := []models.FamilyMember{
		member(1, "Alice", restrictions(glutenFree), pref(italian, 4)),
		member(2, "Bob", restrictions(vegan), pref(italian, 2)),
		member(3, "Carol", nil),
	}
	catalog := []models.Restaurant{
		restaurant(1, "Pizza Palace", italian, 2, 4.2, glutenFree),
		restaurant(2, "Green Fork", italian, 3, 3.7, glutenFree, vegan),
		restaurant(3, "Taco Town", mexican, 1, 0),
	}

	for i := range catalog {
		rec := scorer.Score(&catalog[i], group)
		want := cfg.Weights.Accommodation*rec.Scores.Accommodation +
			cfg.Weights.Preference*rec.Scores.Preference +
			cfg.Weights.Rating*rec.Scores.Rating
		if rec.Score != want {
			t.Errorf("%s: Score = %v, want %v", catalog[i].Name, rec.Score, want)
		}
		for name, v := range map[string]float64{
			"accommodation": rec.Scores.Accommodation,
			"preference":    rec.Scores.Preference,
			"rating":        rec.Scores.Rating,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s: %s term = %f, want within [0, 1]", catalog[i].Name, name, v)
			}
		}
	}
}

func TestScorer_OrderInvariance(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())

	a := member(1, "Alice", restrictions(glutenFree, dairyFree), pref(thai, 5))
	b := member(2, "Bob", restrictions(vegan), pref(thai, 2))
	c := member(3, "Carol", restrictions(nutAllergy))

	r1 := restaurant(1, "Thai Garden", thai, 2, 4.4, vegan, glutenFree)
	r2 := restaurant(1, "Thai Garden", thai, 2, 4.4, glutenFree, vegan)

	aSwapped := a
	aSwapped.Restrictions = restrictions(dairyFree, glutenFree)

	base := scorer.Score(&r1, []models.FamilyMember{a, b, c})
	shuffled := scorer.Score(&r2, []models.FamilyMember{c, aSwapped, b})

	if base.Score != shuffled.Score {
		t.Errorf("Score = %v vs %v", base.Score, shuffled.Score)
	}
	if base.Scores != shuffled.Scores {
		t.Errorf("Scores = %+v vs %+v", base.Scores, shuffled.Scores)
	}
	if !reflect.DeepEqual(base.Reasons, shuffled.Reasons) {
		t.Errorf("Reasons = %q vs %q", base.Reasons, shuffled.Reasons)
	}
	if !reflect.DeepEqual(base.AccommodatedMembers, shuffled.AccommodatedMembers) {
		t.Errorf("AccommodatedMembers = %v vs %v", base.AccommodatedMembers, shuffled.AccommodatedMembers)
	}
	if !reflect.DeepEqual(base.MissedRestrictions, shuffled.MissedRestrictions) {
		t.Errorf("MissedRestrictions = %v vs %v", base.MissedRestrictions, shuffled.MissedRestrictions)
	}
}

func TestScorer_AccommodationMonotonic(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	group := []models.FamilyMember{
		member(1, "Alice", restrictions(glutenFree)),
		member(2, "Bob", restrictions(vegan, nutAllergy)),
	}

	steps := [][]models.DietaryRestriction{
		nil,
		{glutenFree},
		{glutenFree, vegan},
		{glutenFree, vegan, nutAllergy},
	}

	prev := -1.0
	for _, acc := range steps {
		r := restaurant(1, "Step", mexican, 2, 3.5, acc...)
		rec := scorer.Score(&r, group)
		if rec.Score < prev {
			t.Errorf("adding accommodations %v lowered score to %v from %v", acc, rec.Score, prev)
		}
		prev = rec.Score
	}
}

func TestScorer_AccommodationDominates(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	group := []models.FamilyMember{
		member(1, "Alice", restrictions(vegan), pref(italian, 5)),
		member(2, "Bob", restrictions(glutenFree), pref(italian, 5)),
		member(3, "Carol", restrictions(nutAllergy), pref(italian, 5)),
	}

	// Two members accommodated, nothing else going for it.
	plain := restaurant(1, "Plain Thai", thai, 2, 0, vegan, glutenFree)
	// One member accommodated, perfect on every secondary axis.
	loved := restaurant(2, "Beloved Trattoria", italian, 2, 5, vegan)

	p := scorer.Score(&plain, group)
	l := scorer.Score(&loved, group)
	if p.Score <= l.Score {
		t.Errorf("more accommodated members must outrank secondary axes: %v <= %v", p.Score, l.Score)
	}
}

func TestRankRecommendations(t *testing.T) {
	t.Parallel()

	rec := func(id int64, name string, acc, pref, rating float64) Recommendation {
		return Recommendation{
			Restaurant: models.Restaurant{ID: id, Name: name, Rating: rating},
			Scores:     ScoreBreakdown{Accommodation: acc, Preference: pref, Rating: rating / models.MaxRating},
		}
	}
	recs := []Recommendation{
		rec(4, "Bistro", 1, 0.6, 4),
		rec(3, "Alpha", 1, 0.6, 4),
		rec(2, "Zeta", 1, 0.6, 4.5),
		rec(1, "Alpha", 1, 0.6, 4),
		rec(5, "Loved", 1, 0.8, 1),
		rec(6, "Half", 0.5, 1, 5),
	}
	rankRecommendations(recs)

	want := []int64{5, 2, 1, 3, 4, 6}
	if got := restaurantIDs(recs); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRankRecommendations_PreferenceBeforeRating(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())
	group := []models.FamilyMember{
		member(1, "Alice", nil, pref(italian, 3), pref(thai, 4)),
	}

	tests := []struct {
		name    string
		catalog []models.Restaurant
		want    []string
	}{
		{
			name: "one level of preference beats a four point rating gap",
			catalog: []models.Restaurant{
				restaurant(1, "Trattoria", italian, 2, 5.0),
				restaurant(2, "Thai House", thai, 2, 1.0),
			},
			want: []string{"Thai House", "Trattoria"},
		},
		{
			name: "rating breaks a preference tie",
			catalog: []models.Restaurant{
				restaurant(1, "Trattoria", italian, 2, 3.0),
				restaurant(2, "Osteria", italian, 2, 4.5),
			},
			want: []string{"Osteria", "Trattoria"},
		},
		{
			name: "no expressed preference ranks below any preference",
			catalog: []models.Restaurant{
				restaurant(1, "Dragon Wok", chinese, 2, 5.0),
				restaurant(2, "Trattoria", italian, 2, 0),
			},
			want: []string{"Trattoria", "Dragon Wok"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			recs := make([]Recommendation, 0, len(tt.catalog))
			for i := range tt.catalog {
				recs = append(recs, scorer.Score(&tt.catalog[i], group))
			}
			rankRecommendations(recs)

			got := make([]string, len(recs))
			for i := range recs {
				got[i] = recs[i].Restaurant.Name
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestController_RanksByPreferenceBeforeRating(t *testing.T) {
	t.Parallel()

	c := newTestController(t, nil)
	group := []models.FamilyMember{
		member(1, "Alice", restrictions(vegan), pref(italian, 3), pref(thai, 4)),
		member(2, "Bob", nil, pref(thai, 4)),
	}
	catalog := []models.Restaurant{
		restaurant(1, "Trattoria", italian, 2, 5.0, vegan),
		restaurant(2, "Thai House", thai, 2, 1.0, vegan),
	}

	out := c.Run(group, catalog, nil)

	if got := restaurantIDs(out.Recommendations); !reflect.DeepEqual(got, []int64{2, 1}) {
		t.Errorf("order = %v, want [2 1]", got)
	}
}

// Missed restrictions and the group restrictions a restaurant accommodates
// partition the union of restrictions held by the group. Accommodated
// members hold only accommodated restrictions, and a member is accommodated
// exactly when none of their restrictions is missed.
func TestScorer_MissedAndAccommodatedCoverUnion(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(DefaultConfig())

	tests := []struct {
		name    string
		group   []models.FamilyMember
		catalog []models.Restaurant
	}{
		{
			name: "no restrictions",
			group: []models.FamilyMember{
				member(1, "Alice", nil),
				member(2, "Bob", nil),
			},
			catalog: []models.Restaurant{
				restaurant(1, "Plain", italian, 1, 3),
				restaurant(2, "Everything", thai, 2, 4, vegan, glutenFree, nutAllergy, dairyFree),
			},
		},
		{
			name: "disjoint restrictions",
			group: []models.FamilyMember{
				member(1, "Alice", restrictions(vegan)),
				member(2, "Bob", restrictions(glutenFree)),
				member(3, "Carol", restrictions(nutAllergy)),
			},
			catalog: []models.Restaurant{
				restaurant(1, "None", italian, 1, 3),
				restaurant(2, "Vegan Only", thai, 2, 4, vegan),
				restaurant(3, "Two", mexican, 2, 4, vegan, nutAllergy),
				restaurant(4, "All", chinese, 3, 5, vegan, glutenFree, nutAllergy),
			},
		},
		{
			name: "shared and overlapping restrictions",
			group: []models.FamilyMember{
				member(1, "Alice", restrictions(vegan, glutenFree)),
				member(2, "Bob", restrictions(glutenFree)),
				member(3, "Carol", restrictions(glutenFree, nutAllergy, dairyFree)),
				member(4, "Dan", nil),
			},
			catalog: []models.Restaurant{
				restaurant(1, "Gluten Free", italian, 1, 3, glutenFree),
				restaurant(2, "Vegan", thai, 2, 4, vegan),
				restaurant(3, "Almost", mexican, 2, 4, glutenFree, nutAllergy, dairyFree),
				restaurant(4, "Extra", chinese, 3, 5, vegan, glutenFree, dairyFree),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			union := make(map[int64]bool)
			for _, m := range tt.group {
				for _, dr := range m.Restrictions {
					union[dr.ID] = true
				}
			}

			for i := range tt.catalog {
				r := &tt.catalog[i]
				rec := scorer.Score(r, tt.group)

				missed := make(map[int64]bool, len(rec.MissedRestrictions))
				for _, dr := range rec.MissedRestrictions {
					if !union[dr.ID] {
						t.Errorf("%s: missed restriction %s is not held by the group", r.Name, dr.Name)
					}
					missed[dr.ID] = true
				}

				rebuilt := make(map[int64]bool, len(union))
				for id := range missed {
					rebuilt[id] = true
				}
				for id := range union {
					if !r.Accommodates(id) {
						continue
					}
					if missed[id] {
						t.Errorf("%s: restriction %d is both missed and accommodated", r.Name, id)
					}
					rebuilt[id] = true
				}
				if !reflect.DeepEqual(rebuilt, union) {
					t.Errorf("%s: missed + accommodated = %v, want %v", r.Name, rebuilt, union)
				}

				accommodated := make(map[int64]bool, len(rec.AccommodatedMembers))
				for _, id := range rec.AccommodatedMembers {
					accommodated[id] = true
				}
				for _, m := range tt.group {
					hitsMissed := false
					for _, dr := range m.Restrictions {
						if missed[dr.ID] {
							hitsMissed = true
						}
					}
					if accommodated[m.ID] == hitsMissed {
						t.Errorf("%s: member %s accommodated=%v but holds missed restriction=%v",
							r.Name, m.Name, accommodated[m.ID], hitsMissed)
					}
				}
			}
		})
	}
}
