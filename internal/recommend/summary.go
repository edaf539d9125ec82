// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"sort"

	"github.com/tomtom215/tablemate/internal/models"
)

// Summarize aggregates the dietary and cuisine profile of a member group.
//
// Shared restrictions are those held by at least two members, ordered by
// count descending then name. Cuisine preferences average the levels of
// the members who expressed one, ordered by average descending then name.
func Summarize(members []models.FamilyMember) Summary {
	type restrictionTally struct {
		restriction models.DietaryRestriction
		count       int
	}
	type cuisineTally struct {
		cuisine models.Cuisine
		sum     int
		count   int
	}

	restrictions := make(map[int64]*restrictionTally)
	cuisines := make(map[int64]*cuisineTally)

	for i := range members {
		seen := make(map[int64]bool, len(members[i].Restrictions))
		for _, dr := range members[i].Restrictions {
			if seen[dr.ID] {
				continue
			}
			seen[dr.ID] = true
			t, ok := restrictions[dr.ID]
			if !ok {
				t = &restrictionTally{restriction: dr}
				restrictions[dr.ID] = t
			}
			t.count++
		}

		for _, p := range members[i].Preferences {
			t, ok := cuisines[p.Cuisine.ID]
			if !ok {
				t = &cuisineTally{cuisine: p.Cuisine}
				cuisines[p.Cuisine.ID] = t
			}
			t.sum += p.Level
			t.count++
		}
	}

	shared := make([]SharedRestriction, 0)
	for _, t := range restrictions {
		if t.count >= 2 {
			shared = append(shared, SharedRestriction{Restriction: t.restriction, Count: t.count})
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		a, b := shared[i], shared[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Restriction.Name != b.Restriction.Name {
			return a.Restriction.Name < b.Restriction.Name
		}
		return a.Restriction.ID < b.Restriction.ID
	})

	affinities := make([]CuisineAffinity, 0, len(cuisines))
	for _, t := range cuisines {
		affinities = append(affinities, CuisineAffinity{
			Cuisine:      t.cuisine,
			AverageLevel: float64(t.sum) / float64(t.count),
			MemberCount:  t.count,
		})
	}
	sort.Slice(affinities, func(i, j int) bool {
		a, b := affinities[i], affinities[j]
		if a.AverageLevel != b.AverageLevel {
			return a.AverageLevel > b.AverageLevel
		}
		if a.Cuisine.Name != b.Cuisine.Name {
			return a.Cuisine.Name < b.Cuisine.Name
		}
		return a.Cuisine.ID < b.Cuisine.ID
	})

	return Summary{
		TotalMembers:       len(members),
		MemberIDs:          memberIDs(members),
		SharedRestrictions: shared,
		CuisinePreferences: affinities,
	}
}
