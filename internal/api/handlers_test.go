// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/tablemate/internal/models"
)

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	env := a.mustDo(http.MethodGet, "/api/v1/health/live", nil, http.StatusOK)
	var live HealthStatus
	decodeData(t, env, &live)
	if live.Status != "alive" || live.Version != "test" {
		t.Errorf("live = %+v, want status alive and version test", live)
	}

	env = a.mustDo(http.MethodGet, "/api/v1/health/ready", nil, http.StatusOK)
	var ready HealthStatus
	decodeData(t, env, &ready)
	if !ready.StoreConnected {
		t.Error("ready.StoreConnected = false, want true")
	}

	if err := a.store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	env = a.mustDo(http.MethodGet, "/api/v1/health/ready", nil, http.StatusServiceUnavailable)
	if env.Error == nil || env.Error.Code != CodeUnavailable {
		t.Errorf("error = %+v, want %s", env.Error, CodeUnavailable)
	}
}

func TestReferenceData(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	env := a.mustDo(http.MethodPost, "/api/v1/restrictions",
		CreateRestrictionRequest{Name: "Vegan", Description: "No animal products"}, http.StatusCreated)
	var vegan models.DietaryRestriction
	decodeData(t, env, &vegan)
	if vegan.ID <= 0 || vegan.Name != "Vegan" {
		t.Errorf("created restriction = %+v", vegan)
	}

	t.Run("duplicate name conflicts", func(t *testing.T) {
		env := a.mustDo(http.MethodPost, "/api/v1/restrictions", CreateRestrictionRequest{Name: "vegan"}, http.StatusConflict)
		if env.Error.Code != CodeConflict {
			t.Errorf("code = %s, want %s", env.Error.Code, CodeConflict)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		env := a.mustDo(http.MethodPost, "/api/v1/cuisines", CreateCuisineRequest{Name: "   "}, http.StatusBadRequest)
		if env.Error.Code != CodeValidation {
			t.Errorf("code = %s, want %s", env.Error.Code, CodeValidation)
		}
		if env.Error.Details["field"] != "name" {
			t.Errorf("details = %v, want field name", env.Error.Details)
		}
	})

	a.mustDo(http.MethodPost, "/api/v1/cuisines", CreateCuisineRequest{Name: "Thai"}, http.StatusCreated)
	a.mustDo(http.MethodPost, "/api/v1/cuisines", CreateCuisineRequest{Name: "Italian"}, http.StatusCreated)

	env = a.mustDo(http.MethodGet, "/api/v1/cuisines", nil, http.StatusOK)
	var cuisines []models.Cuisine
	decodeData(t, env, &cuisines)
	if len(cuisines) != 2 || env.Metadata.Count != 2 {
		t.Fatalf("cuisines = %+v (count %d), want 2", cuisines, env.Metadata.Count)
	}

	env = a.mustDo(http.MethodGet, "/api/v1/restrictions", nil, http.StatusOK)
	var restrictions []models.DietaryRestriction
	decodeData(t, env, &restrictions)
	if len(restrictions) != 1 {
		t.Errorf("restrictions = %+v, want 1", restrictions)
	}
}

func TestFamilies(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	env := a.mustDo(http.MethodGet, "/api/v1/families", nil, http.StatusOK)
	if string(env.Data) != "[]" {
		t.Errorf("empty family list = %s, want []", env.Data)
	}

	env = a.mustDo(http.MethodPost, "/api/v1/families", CreateFamilyRequest{Name: "Garcias"}, http.StatusCreated)
	var created models.Family
	decodeData(t, env, &created)

	env = a.mustDo(http.MethodGet, "/api/v1/families/"+created.ID, nil, http.StatusOK)
	var got models.Family
	decodeData(t, env, &got)
	if got.ID != created.ID || got.Name != "Garcias" {
		t.Errorf("GetFamily = %+v, want %+v", got, created)
	}

	tests := []string{
		"/api/v1/families/does-not-exist",
		"/api/v1/families/does-not-exist/members",
		"/api/v1/families/does-not-exist/restaurants/1",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			env := a.mustDo(http.MethodGet, path, nil, http.StatusNotFound)
			if env.Error.Code != CodeNotFound {
				t.Errorf("code = %s, want %s", env.Error.Code, CodeNotFound)
			}
		})
	}
}

func TestMembers(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	f := a.seedFixture()
	base := "/api/v1/families/" + f.familyID + "/members"

	env := a.mustDo(http.MethodPost, base, MemberRequest{
		Name:           "Cleo",
		RestrictionIDs: []int64{f.vegan, f.glutenFree},
		Preferences:    []PreferenceRequest{{CuisineID: f.italian, Level: 3}},
	}, http.StatusCreated)
	var cleo models.FamilyMember
	decodeData(t, env, &cleo)
	if len(cleo.Restrictions) != 2 || cleo.Preferences[0].Cuisine.Name != "Italian" {
		t.Errorf("created member not hydrated: %+v", cleo)
	}

	memberPath := fmt.Sprintf("%s/%d", base, cleo.ID)

	env = a.mustDo(http.MethodPut, memberPath, MemberRequest{Name: "Cleo B."}, http.StatusOK)
	var updated models.FamilyMember
	decodeData(t, env, &updated)
	if updated.Name != "Cleo B." || len(updated.Restrictions) != 0 {
		t.Errorf("updated member = %+v", updated)
	}

	env = a.mustDo(http.MethodGet, base, nil, http.StatusOK)
	if env.Metadata.Count != 3 {
		t.Errorf("member count = %d, want 3", env.Metadata.Count)
	}

	rec, _ := a.do(http.MethodDelete, memberPath, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want 204", rec.Code)
	}
	a.mustDo(http.MethodGet, memberPath, nil, http.StatusNotFound)
	a.mustDo(http.MethodDelete, memberPath, nil, http.StatusNotFound)

	t.Run("unknown restriction", func(t *testing.T) {
		env := a.mustDo(http.MethodPost, base, MemberRequest{Name: "X", RestrictionIDs: []int64{999}}, http.StatusBadRequest)
		if env.Error.Code != CodeInvalidReference {
			t.Errorf("code = %s, want %s", env.Error.Code, CodeInvalidReference)
		}
	})

	t.Run("duplicate preference", func(t *testing.T) {
		env := a.mustDo(http.MethodPost, base, MemberRequest{
			Name: "X",
			Preferences: []PreferenceRequest{
				{CuisineID: f.thai, Level: 2},
				{CuisineID: f.thai, Level: 3},
			},
		}, http.StatusBadRequest)
		if env.Error.Code != CodeValidation {
			t.Errorf("code = %s, want %s", env.Error.Code, CodeValidation)
		}
	})

	t.Run("preference level out of range", func(t *testing.T) {
		env := a.mustDo(http.MethodPost, base, MemberRequest{
			Name:        "X",
			Preferences: []PreferenceRequest{{CuisineID: f.thai, Level: 6}},
		}, http.StatusBadRequest)
		if env.Error.Details["field"] != "preferences[0].level" {
			t.Errorf("details = %v, want field preferences[0].level", env.Error.Details)
		}
	})

	t.Run("invalid member id", func(t *testing.T) {
		env := a.mustDo(http.MethodGet, base+"/abc", nil, http.StatusBadRequest)
		if env.Error.Code != CodeInvalidID {
			t.Errorf("code = %s, want %s", env.Error.Code, CodeInvalidID)
		}
	})

	t.Run("members are family scoped", func(t *testing.T) {
		env := a.mustDo(http.MethodPost, "/api/v1/families", CreateFamilyRequest{Name: "Other"}, http.StatusCreated)
		var other models.Family
		decodeData(t, env, &other)
		a.mustDo(http.MethodGet, fmt.Sprintf("/api/v1/families/%s/members/%d", other.ID, f.ana), nil, http.StatusNotFound)
	})
}

func TestRestaurants(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	f := a.seedFixture()
	base := "/api/v1/families/" + f.familyID + "/restaurants"

	env := a.mustDo(http.MethodPost, base, RestaurantRequest{
		Name:           "Noodle Bar",
		Website:        "https://noodles.example.com",
		CuisineID:      f.thai,
		PriceRange:     1,
		Rating:         3.5,
		Accommodations: []AccommodationRequest{{RestrictionID: f.glutenFree, Notes: "rice noodles"}},
	}, http.StatusCreated)
	var noodle models.Restaurant
	decodeData(t, env, &noodle)
	if noodle.Cuisine.Name != "Thai" || len(noodle.Accommodations) != 1 || noodle.Accommodations[0].Notes != "rice noodles" {
		t.Errorf("created restaurant = %+v", noodle)
	}

	path := fmt.Sprintf("%s/%d", base, noodle.ID)
	env = a.mustDo(http.MethodPut, path, RestaurantRequest{
		Name:       "Noodle Bar",
		CuisineID:  f.thai,
		PriceRange: 2,
		Rating:     4.2,
	}, http.StatusOK)
	var updated models.Restaurant
	decodeData(t, env, &updated)
	if updated.PriceRange != 2 || len(updated.Accommodations) != 0 {
		t.Errorf("updated restaurant = %+v", updated)
	}

	env = a.mustDo(http.MethodGet, base, nil, http.StatusOK)
	if env.Metadata.Count != 3 {
		t.Errorf("restaurant count = %d, want 3", env.Metadata.Count)
	}

	a.mustDo(http.MethodDelete, path, nil, http.StatusNoContent)
	a.mustDo(http.MethodPut, path, RestaurantRequest{Name: "Gone", CuisineID: f.thai, PriceRange: 1}, http.StatusNotFound)

	tests := []struct {
		name      string
		body      RestaurantRequest
		wantCode  string
		wantField string
	}{
		{
			name:      "price range above domain",
			body:      RestaurantRequest{Name: "X", CuisineID: f.thai, PriceRange: 5},
			wantCode:  CodeValidation,
			wantField: "priceRange",
		},
		{
			name:      "rating above domain",
			body:      RestaurantRequest{Name: "X", CuisineID: f.thai, PriceRange: 1, Rating: 5.5},
			wantCode:  CodeValidation,
			wantField: "rating",
		},
		{
			name:      "invalid website",
			body:      RestaurantRequest{Name: "X", CuisineID: f.thai, PriceRange: 1, Website: "not a url"},
			wantCode:  CodeValidation,
			wantField: "website",
		},
		{
			name:     "unknown cuisine",
			body:     RestaurantRequest{Name: "X", CuisineID: 999, PriceRange: 1},
			wantCode: CodeInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := a.mustDo(http.MethodPost, base, tt.body, http.StatusBadRequest)
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", env.Error.Code, tt.wantCode)
			}
			if tt.wantField != "" && env.Error.Details["field"] != tt.wantField {
				t.Errorf("details = %v, want field %s", env.Error.Details, tt.wantField)
			}
		})
	}
}

func TestRequestBodyErrors(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed json", "{", http.StatusBadRequest, CodeInvalidJSON},
		{"trailing value", `{"name":"A"} {"name":"B"}`, http.StatusBadRequest, CodeInvalidJSON},
		{"empty body", "", http.StatusBadRequest, CodeInvalidJSON},
		{"oversized body", `{"name":"` + strings.Repeat("a", 5000) + `"}`, http.StatusRequestEntityTooLarge, CodeBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := a.mustDo(http.MethodPost, "/api/v1/families", tt.body, tt.wantStatus)
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRouting(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	env := a.mustDo(http.MethodGet, "/api/v1/nope", nil, http.StatusNotFound)
	if env.Status != "error" || env.Error.Code != CodeNotFound {
		t.Errorf("unknown route envelope = %+v", env)
	}

	a.mustDo(http.MethodPatch, "/api/v1/families", nil, http.StatusMethodNotAllowed)

	rec, _ := a.do(http.MethodGet, "/api/v1/cuisines", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers on API routes")
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("expected ETag header")
	}
}
