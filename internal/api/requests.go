// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"github.com/tomtom215/tablemate/internal/models"
	"github.com/tomtom215/tablemate/internal/recommend"
	"github.com/tomtom215/tablemate/internal/store"
)

// Request bodies validated with go-playground/validator tags. Field names
// in validation errors come from the json tags.

// CreateRestrictionRequest is the body of POST /restrictions.
type CreateRestrictionRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CreateCuisineRequest is the body of POST /cuisines.
type CreateCuisineRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// CreateFamilyRequest is the body of POST /families.
type CreateFamilyRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// PreferenceRequest is a cuisine preference on a member write.
type PreferenceRequest struct {
	CuisineID int64 `json:"cuisineId" validate:"required,gt=0"`
	Level     int   `json:"level" validate:"required,min=1,max=5"`
}

// MemberRequest is the body of member create and update.
type MemberRequest struct {
	Name           string              `json:"name" validate:"required,notblank,max=100"`
	RestrictionIDs []int64             `json:"restrictionIds" validate:"omitempty,max=50,dive,gt=0"`
	Preferences    []PreferenceRequest `json:"preferences" validate:"omitempty,max=50,dive"`
}

func (req *MemberRequest) toInput() store.MemberInput {
	in := store.MemberInput{
		Name:           req.Name,
		RestrictionIDs: req.RestrictionIDs,
		Preferences:    make([]store.PreferenceInput, 0, len(req.Preferences)),
	}
	for _, p := range req.Preferences {
		in.Preferences = append(in.Preferences, store.PreferenceInput{CuisineID: p.CuisineID, Level: p.Level})
	}
	return in
}

// AccommodationRequest declares that a restaurant serves a restriction.
type AccommodationRequest struct {
	RestrictionID int64  `json:"restrictionId" validate:"required,gt=0"`
	Notes         string `json:"notes" validate:"max=500"`
}

// RestaurantRequest is the body of restaurant create and update.
type RestaurantRequest struct {
	Name           string                 `json:"name" validate:"required,notblank,max=200"`
	Address        string                 `json:"address" validate:"max=300"`
	Phone          string                 `json:"phone" validate:"max=50"`
	Website        string                 `json:"website" validate:"omitempty,url,max=500"`
	CuisineID      int64                  `json:"cuisineId" validate:"required,gt=0"`
	PriceRange     int                    `json:"priceRange" validate:"required,min=1,max=4"`
	Rating         float64                `json:"rating" validate:"gte=0,lte=5"`
	Accommodations []AccommodationRequest `json:"accommodations" validate:"omitempty,max=50,dive"`
}

func (req *RestaurantRequest) toInput() store.RestaurantInput {
	in := store.RestaurantInput{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Website:        req.Website,
		CuisineID:      req.CuisineID,
		PriceRange:     req.PriceRange,
		Rating:         req.Rating,
		Accommodations: make([]store.AccommodationInput, 0, len(req.Accommodations)),
	}
	for _, a := range req.Accommodations {
		in.Accommodations = append(in.Accommodations, store.AccommodationInput{RestrictionID: a.RestrictionID, Notes: a.Notes})
	}
	return in
}

// FiltersRequest holds optional recommendation filters.
type FiltersRequest struct {
	MaxPriceRange *int     `json:"maxPriceRange" validate:"omitempty,min=1,max=4"`
	MinRating     *float64 `json:"minRating" validate:"omitempty,gte=0,lte=5"`
	CuisineIDs    []int64  `json:"cuisineIds" validate:"omitempty,unique,dive,gt=0"`
}

// RecommendationRequest is the body of POST /families/{familyID}/recommendations.
type RecommendationRequest struct {
	MemberIDs []int64         `json:"memberIds" validate:"required,min=1,unique,dive,gt=0"`
	Filters   *FiltersRequest `json:"filters"`
}

func (req *RecommendationRequest) toRequest(familyID string) recommend.Request {
	out := recommend.Request{
		FamilyID:  familyID,
		MemberIDs: req.MemberIDs,
	}
	if req.Filters != nil {
		out.Filters = &models.Filters{
			MaxPriceRange: req.Filters.MaxPriceRange,
			MinRating:     req.Filters.MinRating,
			CuisineIDs:    req.Filters.CuisineIDs,
		}
	}
	return out
}
