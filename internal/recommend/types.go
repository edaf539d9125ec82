// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"github.com/tomtom215/tablemate/internal/models"
)

// Request is a recommendation request for a subset of a family's members.
type Request struct {
	// FamilyID scopes member resolution and the restaurant catalog.
	FamilyID string `json:"familyId"`

	// MemberIDs lists the members who are dining. Must be non-empty and
	// contain no duplicates.
	MemberIDs []int64 `json:"memberIds"`

	// Filters holds optional hard constraints. Nil means unconstrained.
	Filters *models.Filters `json:"filters,omitempty"`
}

// ScoreBreakdown holds the unweighted axis terms behind a score.
// Each term is in [0, 1].
type ScoreBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Preference    float64 `json:"preference"`
	Rating        float64 `json:"rating"`
}

// Recommendation is a scored restaurant.
type Recommendation struct {
	Restaurant models.Restaurant `json:"restaurant"`

	// Score is the weighted sum of the breakdown terms.
	Score float64 `json:"score"`

	// Scores is the per-axis breakdown that Score is computed from.
	Scores ScoreBreakdown `json:"scores"`

	// Reasons are human-readable explanations.
	Reasons []string `json:"reasons"`

	// AccommodatedMembers lists the IDs of members whose every restriction
	// the restaurant accommodates, ascending.
	AccommodatedMembers []int64 `json:"accommodatedMembers"`

	// MissedRestrictions lists restrictions held by at least one member
	// that the restaurant does not accommodate, ordered by name.
	MissedRestrictions []models.DietaryRestriction `json:"missedRestrictions"`
}

// SharedRestriction is a restriction held by two or more members of the group.
type SharedRestriction struct {
	Restriction models.DietaryRestriction `json:"restriction"`
	Count       int                       `json:"count"`
}

// CuisineAffinity is the group's aggregate preference for a cuisine.
type CuisineAffinity struct {
	Cuisine      models.Cuisine `json:"cuisine"`
	AverageLevel float64        `json:"averageLevel"`
	MemberCount  int            `json:"memberCount"`
}

// Summary describes the group the recommendations were produced for.
type Summary struct {
	TotalMembers       int                 `json:"totalMembers"`
	MemberIDs          []int64             `json:"memberIds"`
	SharedRestrictions []SharedRestriction `json:"sharedRestrictions"`
	CuisinePreferences []CuisineAffinity   `json:"cuisinePreferences"`
	Message            string              `json:"message,omitempty"`
}

// FallbackMode identifies how a relaxed result was reached.
type FallbackMode string

const (
	// FallbackFiltersRemoved means one or more filter categories were dropped.
	FallbackFiltersRemoved FallbackMode = "filters_removed"

	// FallbackAllFiltersRemoved means every filter was dropped.
	FallbackAllFiltersRemoved FallbackMode = "all_filters_removed"

	// FallbackMemberRemoved means a member was excluded from the group.
	FallbackMemberRemoved FallbackMode = "member_removed"
)

// Stage is a step of the relaxation ladder.
type Stage string

const (
	// StageStrict applies every filter as given.
	StageStrict Stage = "strict"

	// StageFiltersRemoved has dropped a prefix of the configured drop order.
	StageFiltersRemoved Stage = "filters_removed"

	// StageAllFiltersRemoved has no filters left.
	StageAllFiltersRemoved Stage = "all_filters_removed"
)

// RemovedMember identifies the member excluded by member-removal fallback.
type RemovedMember struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	RestrictionCount int    `json:"restrictionCount"`
}

// Relaxation records which constraints were relaxed to produce a result.
type Relaxation struct {
	Mode FallbackMode `json:"mode"`

	// DroppedFilters lists the filter categories that were not applied to
	// the returned recommendations, in the order they were dropped.
	DroppedFilters []FilterCategory `json:"droppedFilters,omitempty"`

	// OriginalFilters is the request's filters, when it had any.
	OriginalFilters *models.Filters `json:"originalFilters,omitempty"`

	// RemovedMember is set only for FallbackMemberRemoved.
	RemovedMember *RemovedMember `json:"removedMember,omitempty"`

	// OriginalMemberIDs is the requested group, set only for FallbackMemberRemoved.
	OriginalMemberIDs []int64 `json:"originalMemberIds,omitempty"`
}

// Result is the outcome of a recommendation request. It is either a
// *PlainResult or a *RelaxedResult; a relaxed outcome can only be
// expressed with relaxation metadata attached.
type Result interface {
	isResult()
}

// PlainResult is returned when the strict stage produced recommendations.
type PlainResult struct {
	Recommendations []Recommendation
	Summary         Summary
}

// RelaxedResult is returned when constraints had to be relaxed.
type RelaxedResult struct {
	Recommendations []Recommendation
	Summary         Summary
	Relaxation      Relaxation
}

func (*PlainResult) isResult()   {}
func (*RelaxedResult) isResult() {}

// Response is the wire form of a Result.
type Response struct {
	Recommendations   []Recommendation `json:"recommendations"`
	Summary           Summary          `json:"summary"`
	FallbackMode      FallbackMode     `json:"fallbackMode,omitempty"`
	DroppedFilters    []FilterCategory `json:"droppedFilters,omitempty"`
	OriginalFilters   *models.Filters  `json:"originalFilters,omitempty"`
	RemovedMember     *RemovedMember   `json:"removedMember,omitempty"`
	OriginalMemberIDs []int64          `json:"originalMemberIds,omitempty"`
}

// ToResponse flattens a Result into its wire form.
func ToResponse(r Result) Response {
	var resp Response
	switch v := r.(type) {
	case *PlainResult:
		resp.Recommendations = v.Recommendations
		resp.Summary = v.Summary
	case *RelaxedResult:
		resp.Recommendations = v.Recommendations
		resp.Summary = v.Summary
		resp.FallbackMode = v.Relaxation.Mode
		resp.DroppedFilters = v.Relaxation.DroppedFilters
		resp.OriginalFilters = v.Relaxation.OriginalFilters
		resp.RemovedMember = v.Relaxation.RemovedMember
		resp.OriginalMemberIDs = v.Relaxation.OriginalMemberIDs
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []Recommendation{}
	}
	return resp
}

// RecommendationsOf returns the recommendations carried by a Result.
func RecommendationsOf(r Result) []Recommendation {
	switch v := r.(type) {
	case *PlainResult:
		return v.Recommendations
	case *RelaxedResult:
		return v.Recommendations
	}
	return nil
}

// FallbackModeOf returns the fallback mode of a Result, or "" for a plain result.
func FallbackModeOf(r Result) FallbackMode {
	if v, ok := r.(*RelaxedResult); ok {
		return v.Relaxation.Mode
	}
	return ""
}
