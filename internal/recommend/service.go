// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tablemate/internal/models"
)

// Note: This package has no dependencies on other internal packages besides
// models. The MemberResolver and CatalogProvider interfaces let the store
// plug in without creating circular imports.

// MemberResolver resolves member IDs within a family to hydrated records.
type MemberResolver interface {
	// ResolveMembers returns the members that exist among ids. Missing IDs
	// are omitted rather than reported as errors.
	ResolveMembers(ctx context.Context, familyID string, ids []int64) ([]models.FamilyMember, error)
}

// CatalogProvider supplies a family's restaurant collection.
type CatalogProvider interface {
	// ListRestaurants returns every restaurant in the family's collection.
	// An empty collection is not an error.
	ListRestaurants(ctx context.Context, familyID string) ([]models.Restaurant, error)
}

// Stats holds service counters.
type Stats struct {
	Requests          int64 `json:"requests"`
	Errors            int64 `json:"errors"`
	Plain             int64 `json:"plain"`
	FiltersRemoved    int64 `json:"filters_removed"`
	AllFiltersRemoved int64 `json:"all_filters_removed"`
	MemberRemoved     int64 `json:"member_removed"`
}

// Service orchestrates a recommendation request: validation, member and
// catalog resolution, the relaxation controller and summarization.
// It is safe for concurrent use.
type Service struct {
	config     *Config
	controller *Controller
	members    MemberResolver
	catalog    CatalogProvider
	logger     zerolog.Logger

	requests          atomic.Int64
	errors            atomic.Int64
	plain             atomic.Int64
	filtersRemoved    atomic.Int64
	allFiltersRemoved atomic.Int64
	memberRemoved     atomic.Int64
}

// NewService creates a recommendation service. A nil config uses DefaultConfig.
//
//nolint:gocritic // hugeParam: zerolog.Logger is passed by value per zerolog convention
func NewService(cfg *Config, members MemberResolver, catalog CatalogProvider, logger zerolog.Logger) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if members == nil {
		return nil, fmt.Errorf("member resolver is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog provider is required")
	}

	cfg = cfg.Clone()
	log := logger.With().Str("component", "recommend").Logger()

	return &Service{
		config:     cfg,
		controller: NewController(cfg, log),
		members:    members,
		catalog:    catalog,
		logger:     log,
	}, nil
}

// Config returns a copy of the active configuration.
func (s *Service) Config() *Config {
	return s.config.Clone()
}

// Recommend produces ranked recommendations for the requested members.
//
// Errors wrap ErrInvalidRequest, ErrUnknownMember, or the failure of a
// collaborator. Relaxation never surfaces as an error.
func (s *Service) Recommend(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	s.requests.Add(1)

	if err := s.ValidateRequest(req); err != nil {
		s.errors.Add(1)
		return nil, err
	}

	resolved, err := s.members.ResolveMembers(ctx, req.FamilyID, req.MemberIDs)
	if err != nil {
		s.errors.Add(1)
		return nil, fmt.Errorf("resolve members: %w", err)
	}
	members, err := orderMembers(req, resolved)
	if err != nil {
		s.errors.Add(1)
		return nil, err
	}

	restaurants, err := s.catalog.ListRestaurants(ctx, req.FamilyID)
	if err != nil {
		s.errors.Add(1)
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	outcome := s.controller.Run(members, restaurants, req.Filters)

	summary := Summarize(outcome.Members)
	summary.Message = outcome.Relaxation.Explain(len(outcome.Recommendations))

	var result Result
	if outcome.Relaxation == nil {
		s.plain.Add(1)
		result = &PlainResult{Recommendations: outcome.Recommendations, Summary: summary}
	} else {
		s.countMode(outcome.Relaxation.Mode)
		result = &RelaxedResult{
			Recommendations: outcome.Recommendations,
			Summary:         summary,
			Relaxation:      *outcome.Relaxation,
		}
	}

	s.logger.Debug().
		Str("family_id", req.FamilyID).
		Int("members", len(members)).
		Int("restaurants", len(restaurants)).
		Int("results", len(outcome.Recommendations)).
		Str("fallback_mode", string(FallbackModeOf(result))).
		Dur("duration", time.Since(start)).
		Msg("Generated recommendations")

	return result, nil
}

// ValidateRequest checks a request without resolving it.
func (s *Service) ValidateRequest(req Request) error {
	if req.FamilyID == "" {
		return invalid("familyId", "is required")
	}
	if len(req.MemberIDs) == 0 {
		return invalid("memberIds", "must not be empty")
	}
	if len(req.MemberIDs) > s.config.Limits.MaxGroupSize {
		return invalid("memberIds", fmt.Sprintf("must not contain more than %d members", s.config.Limits.MaxGroupSize))
	}

	seen := make(map[int64]bool, len(req.MemberIDs))
	for _, id := range req.MemberIDs {
		if id <= 0 {
			return invalid("memberIds", fmt.Sprintf("contains non-positive id %d", id))
		}
		if seen[id] {
			return invalid("memberIds", fmt.Sprintf("contains duplicate id %d", id))
		}
		seen[id] = true
	}

	f := req.Filters
	if f.HasPriceCeiling() && (*f.MaxPriceRange < models.MinPriceRange || *f.MaxPriceRange > models.MaxPriceRange) {
		return invalid("filters.maxPriceRange", fmt.Sprintf("must be between %d and %d", models.MinPriceRange, models.MaxPriceRange))
	}
	if f.HasRatingFloor() && (*f.MinRating < models.MinRating || *f.MinRating > models.MaxRating) {
		return invalid("filters.minRating", fmt.Sprintf("must be between %g and %g", models.MinRating, models.MaxRating))
	}
	if f != nil {
		for _, id := range f.CuisineIDs {
			if id <= 0 {
				return invalid("filters.cuisineIds", fmt.Sprintf("contains non-positive id %d", id))
			}
		}
	}
	return nil
}

// Stats returns a snapshot of the service counters.
func (s *Service) Stats() Stats {
	return Stats{
		Requests:          s.requests.Load(),
		Errors:            s.errors.Load(),
		Plain:             s.plain.Load(),
		FiltersRemoved:    s.filtersRemoved.Load(),
		AllFiltersRemoved: s.allFiltersRemoved.Load(),
		MemberRemoved:     s.memberRemoved.Load(),
	}
}

func (s *Service) countMode(mode FallbackMode) {
	switch mode {
	case FallbackFiltersRemoved:
		s.filtersRemoved.Add(1)
	case FallbackAllFiltersRemoved:
		s.allFiltersRemoved.Add(1)
	case FallbackMemberRemoved:
		s.memberRemoved.Add(1)
	}
}

// orderMembers returns the resolved members in request order and reports
// the first requested ID that did not resolve.
func orderMembers(req Request, resolved []models.FamilyMember) ([]models.FamilyMember, error) {
	byID := make(map[int64]models.FamilyMember, len(resolved))
	for i := range resolved {
		byID[resolved[i].ID] = resolved[i]
	}

	members := make([]models.FamilyMember, 0, len(req.MemberIDs))
	for _, id := range req.MemberIDs {
		m, ok := byID[id]
		if !ok {
			return nil, &UnknownMemberError{FamilyID: req.FamilyID, MemberID: id}
		}
		members = append(members, m)
	}
	return members, nil
}
