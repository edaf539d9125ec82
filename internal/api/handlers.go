// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"context"
	"time"

	"github.com/tomtom215/tablemate/internal/models"
	"github.com/tomtom215/tablemate/internal/recommend"
	"github.com/tomtom215/tablemate/internal/store"
)

// ReferenceStore manages shared restrictions and cuisines.
type ReferenceStore interface {
	CreateRestriction(ctx context.Context, name, description string) (*models.DietaryRestriction, error)
	ListRestrictions(ctx context.Context) ([]models.DietaryRestriction, error)
	CreateCuisine(ctx context.Context, name string) (*models.Cuisine, error)
	ListCuisines(ctx context.Context) ([]models.Cuisine, error)
}

// FamilyStore manages families and their members and restaurants.
type FamilyStore interface {
	CreateFamily(ctx context.Context, name string) (*models.Family, error)
	GetFamily(ctx context.Context, id string) (*models.Family, error)
	ListFamilies(ctx context.Context) ([]models.Family, error)

	CreateMember(ctx context.Context, familyID string, in store.MemberInput) (*models.FamilyMember, error)
	UpdateMember(ctx context.Context, familyID string, id int64, in store.MemberInput) (*models.FamilyMember, error)
	GetMember(ctx context.Context, familyID string, id int64) (*models.FamilyMember, error)
	ListMembers(ctx context.Context, familyID string) ([]models.FamilyMember, error)
	DeleteMember(ctx context.Context, familyID string, id int64) error

	CreateRestaurant(ctx context.Context, familyID string, in store.RestaurantInput) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, familyID string, id int64, in store.RestaurantInput) (*models.Restaurant, error)
	GetRestaurant(ctx context.Context, familyID string, id int64) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context, familyID string) ([]models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, familyID string, id int64) error
}

// Store is everything the handlers need from persistence.
type Store interface {
	ReferenceStore
	FamilyStore
	Ping(ctx context.Context) error
}

// Recommender produces recommendations. Implemented by *recommend.Service.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (recommend.Result, error)
	Stats() recommend.Stats
}

// HandlerConfig holds handler settings.
type HandlerConfig struct {
	// Version is reported by the liveness probe.
	Version string

	// RecommendTimeout bounds a single recommendation request.
	RecommendTimeout time.Duration
}

// Handler serves the Tablemate HTTP API.
type Handler struct {
	store       Store
	recommender Recommender
	config      HandlerConfig
	startTime   time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(st, svc, api.HandlerConfig{RecommendTimeout: 5 * time.Second})
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(st Store, recommender Recommender, cfg HandlerConfig) *Handler {
	if cfg.RecommendTimeout <= 0 {
		cfg.RecommendTimeout = 5 * time.Second
	}
	return &Handler{
		store:       st,
		recommender: recommender,
		config:      cfg,
		startTime:   time.Now(),
	}
}
