// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tablemate/internal/models"
)

// canonicalCategories lists every filter category.
var canonicalCategories = []FilterCategory{FilterCuisine, FilterPrice, FilterRating}

// Attempt is one rung of the relaxation ladder.
type Attempt struct {
	Stage   Stage
	Filters models.Filters
	Dropped []FilterCategory
}

// BuildLadder returns the filter attempts for a request, strictest first.
//
// Set categories are dropped cumulatively in dropOrder. When two or more
// categories were set, the drop that would leave no filter at all is the
// all-filters-removed rung instead; a request with a single filter reaches
// an unfiltered attempt through the filters-removed rung.
func BuildLadder(filters *models.Filters, dropOrder []FilterCategory) []Attempt {
	current := filters.Clone()
	ladder := []Attempt{{Stage: StageStrict, Filters: current.Clone()}}

	set := 0
	for _, cat := range canonicalCategories {
		if hasCategory(&current, cat) {
			set++
		}
	}

	var dropped []FilterCategory
	for _, cat := range dropOrder {
		if !hasCategory(&current, cat) {
			continue
		}
		dropCategory(&current, cat)
		if current.IsEmpty() && set > 1 {
			break
		}
		dropped = append(dropped, cat)
		ladder = append(ladder, Attempt{
			Stage:   StageFiltersRemoved,
			Filters: current.Clone(),
			Dropped: append([]FilterCategory(nil), dropped...),
		})
	}

	if !ladder[len(ladder)-1].Filters.IsEmpty() {
		ladder = append(ladder, Attempt{
			Stage:   StageAllFiltersRemoved,
			Filters: models.Filters{},
			Dropped: allDropped(filters, dropped, dropOrder),
		})
	}

	return ladder
}

// allDropped lists every set category: those already dropped, then the
// rest in drop order, then any left over in canonical order.
func allDropped(filters *models.Filters, dropped, dropOrder []FilterCategory) []FilterCategory {
	all := append([]FilterCategory(nil), dropped...)
	seen := make(map[FilterCategory]bool, len(canonicalCategories))
	for _, cat := range dropped {
		seen[cat] = true
	}
	for _, order := range [][]FilterCategory{dropOrder, canonicalCategories} {
		for _, cat := range order {
			if !seen[cat] && hasCategory(filters, cat) {
				seen[cat] = true
				all = append(all, cat)
			}
		}
	}
	return all
}

// Outcome is the controller's terminal state before summarization.
type Outcome struct {
	Recommendations []Recommendation

	// Members is the group the recommendations were computed for.
	Members []models.FamilyMember

	// Relaxation is nil when the strict stage succeeded.
	Relaxation *Relaxation
}

// Controller drives the relaxation ladder and member-removal fallback.
type Controller struct {
	scorer          *Scorer
	dropOrder       []FilterCategory
	minAccommodated int
	logger          zerolog.Logger
}

// NewController creates a controller from a validated configuration.
//
//nolint:gocritic // hugeParam: zerolog.Logger is passed by value per zerolog convention
func NewController(cfg *Config, logger zerolog.Logger) *Controller {
	return &Controller{
		scorer:          NewScorer(cfg),
		dropOrder:       append([]FilterCategory(nil), cfg.Relaxation.DropOrder...),
		minAccommodated: cfg.Relaxation.MinAccommodatedMembers,
		logger:          logger,
	}
}

// Run produces recommendations for the group, relaxing constraints until
// a stage yields results.
//
// Filters are relaxed first. If no stage yields a viable restaurant, the
// member with the most distinct restrictions is removed and the ladder is
// climbed once more; the outcome is terminal either way.
func (c *Controller) Run(members []models.FamilyMember, restaurants []models.Restaurant, filters *models.Filters) Outcome {
	if len(members) == 0 {
		return Outcome{Recommendations: []Recommendation{}, Members: members}
	}

	ladder := BuildLadder(filters, c.dropOrder)

	recs, attempt, ok := c.climb(ladder, members, restaurants)
	if ok {
		out := Outcome{Recommendations: recs, Members: members}
		if attempt.Stage != StageStrict {
			out.Relaxation = &Relaxation{
				Mode:            FallbackMode(attempt.Stage),
				DroppedFilters:  attempt.Dropped,
				OriginalFilters: originalFilters(filters),
			}
		}
		return out
	}

	removed, remaining := selectMemberForRemoval(members)
	c.logger.Debug().
		Int64("member_id", removed.ID).
		Int("restriction_count", removed.RestrictionCount()).
		Int("remaining_members", len(remaining)).
		Msg("No viable restaurant for group, removing member")

	relaxation := &Relaxation{
		Mode:            FallbackMemberRemoved,
		OriginalFilters: originalFilters(filters),
		RemovedMember: &RemovedMember{
			ID:               removed.ID,
			Name:             removed.Name,
			RestrictionCount: removed.RestrictionCount(),
		},
		OriginalMemberIDs: memberIDs(members),
	}

	recs = []Recommendation{}
	if len(remaining) > 0 {
		if r, a, found := c.climb(ladder, remaining, restaurants); found {
			recs = r
			relaxation.DroppedFilters = a.Dropped
		}
	}

	return Outcome{Recommendations: recs, Members: remaining, Relaxation: relaxation}
}

// climb walks the ladder and returns the first non-empty ranked result.
func (c *Controller) climb(ladder []Attempt, members []models.FamilyMember, restaurants []models.Restaurant) ([]Recommendation, Attempt, bool) {
	for _, attempt := range ladder {
		candidates := FilterRestaurants(restaurants, &attempt.Filters)
		recs := c.scoreAll(candidates, members)

		c.logger.Debug().
			Str("stage", string(attempt.Stage)).
			Int("candidates", len(candidates)).
			Int("viable", len(recs)).
			Int("members", len(members)).
			Msg("Relaxation attempt")

		if len(recs) > 0 {
			return recs, attempt, true
		}
	}
	return nil, ladder[len(ladder)-1], false
}

// scoreAll scores candidates, keeps the viable ones and ranks them. A
// restaurant is viable when it accommodates at least minAccommodated
// members, capped at the group size.
func (c *Controller) scoreAll(candidates []models.Restaurant, members []models.FamilyMember) []Recommendation {
	need := c.minAccommodated
	if need > len(members) {
		need = len(members)
	}

	recs := make([]Recommendation, 0, len(candidates))
	for i := range candidates {
		rec := c.scorer.Score(&candidates[i], members)
		if len(rec.AccommodatedMembers) < need {
			continue
		}
		recs = append(recs, rec)
	}
	rankRecommendations(recs)
	return recs
}

// selectMemberForRemoval picks the member with the most distinct
// restrictions, lowest ID on ties, and returns the rest in their
// original order. members must be non-empty.
func selectMemberForRemoval(members []models.FamilyMember) (models.FamilyMember, []models.FamilyMember) {
	best := 0
	bestCount := members[0].RestrictionCount()
	for i := 1; i < len(members); i++ {
		n := members[i].RestrictionCount()
		if n > bestCount || (n == bestCount && members[i].ID < members[best].ID) {
			best, bestCount = i, n
		}
	}

	remaining := make([]models.FamilyMember, 0, len(members)-1)
	remaining = append(remaining, members[:best]...)
	remaining = append(remaining, members[best+1:]...)
	return members[best], remaining
}

func originalFilters(f *models.Filters) *models.Filters {
	if f.IsEmpty() {
		return nil
	}
	c := f.Clone()
	return &c
}

func memberIDs(members []models.FamilyMember) []int64 {
	ids := make([]int64, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}
	return ids
}

// Explain returns the human-readable summary message for a relaxation
// that produced the given number of recommendations.
func (r *Relaxation) Explain(results int) string {
	if r == nil {
		return ""
	}
	switch r.Mode {
	case FallbackFiltersRemoved:
		return fmt.Sprintf("No restaurants matched all filters; relaxed %s", joinCategories(r.DroppedFilters))
	case FallbackAllFiltersRemoved:
		return "No restaurants matched the filters; all filters were removed"
	case FallbackMemberRemoved:
		who := fmt.Sprintf("%s (%d dietary %s)",
			r.RemovedMember.Name, r.RemovedMember.RestrictionCount, pluralRestrictions(r.RemovedMember.RestrictionCount))
		if results == 0 {
			return "No restaurant accommodates the group, even after excluding " + who
		}
		return "No restaurant accommodates the whole group; excluded " + who
	}
	return ""
}

func joinCategories(cats []FilterCategory) string {
	s := ""
	for i, c := range cats {
		if i > 0 {
			s += ", "
		}
		s += string(c)
	}
	return s
}

func pluralRestrictions(n int) string {
	if n == 1 {
		return "restriction"
	}
	return "restrictions"
}
