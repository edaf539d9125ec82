// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/tablemate/internal/logging"
	"github.com/tomtom215/tablemate/internal/models"
	"github.com/tomtom215/tablemate/internal/recommend"
	"github.com/tomtom215/tablemate/internal/store"
)

// testEnvelope decodes the response envelope with raw data.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type testAPI struct {
	t       *testing.T
	store   *store.Store
	service *recommend.Service
	router  http.Handler
}

// newTestAPI wires an in-memory store, a recommend service and the full
// router with rate limiting disabled.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := store.DefaultConfig()
	cfg.InMemory = true
	cfg.Path = ""
	cfg.SyncWrites = false

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	svc, err := recommend.NewService(nil, st, st, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("recommend.NewService failed: %v", err)
	}

	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = []string{"https://app.example.com"}
	mwConfig.RateLimitDisabled = true
	mwConfig.MaxBodyBytes = 4096

	handler := NewHandler(st, svc, HandlerConfig{Version: "test"})
	return &testAPI{
		t:       t,
		store:   st,
		service: svc,
		router:  NewRouter(handler, NewChiMiddleware(mwConfig)).SetupChi(),
	}
}

// do sends a request with an optional JSON body. A string body is sent as-is.
func (a *testAPI) do(method, path string, body interface{}) (*httptest.ResponseRecorder, testEnvelope) {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			a.t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			a.t.Fatalf("%s %s: decode response %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, env
}

// mustDo sends a request and fails unless the status matches.
func (a *testAPI) mustDo(method, path string, body interface{}, wantStatus int) testEnvelope {
	a.t.Helper()
	rec, env := a.do(method, path, body)
	if rec.Code != wantStatus {
		a.t.Fatalf("%s %s: status = %d, want %d; body = %s", method, path, rec.Code, wantStatus, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env testEnvelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

// fixture holds IDs created by seedFixture.
type fixture struct {
	familyID   string
	vegan      int64
	glutenFree int64
	italian    int64
	thai       int64
	ana        int64 // vegan
	ben        int64 // gluten-free
	trattoria  int64 // italian, price 2, rating 4.5, vegan + gluten-free
	thaiOrchid int64 // thai, price 3, rating 4.0, vegan only
}

// seedFixture creates reference data, a family with two members and two
// restaurants directly in the store.
func (a *testAPI) seedFixture() fixture {
	a.t.Helper()
	ctx := context.Background()
	var f fixture

	must := func(err error) {
		a.t.Helper()
		if err != nil {
			a.t.Fatalf("seed fixture: %v", err)
		}
	}

	vegan, err := a.store.CreateRestriction(ctx, "Vegan", "")
	must(err)
	gf, err := a.store.CreateRestriction(ctx, "Gluten-Free", "")
	must(err)
	italian, err := a.store.CreateCuisine(ctx, "Italian")
	must(err)
	thai, err := a.store.CreateCuisine(ctx, "Thai")
	must(err)
	f.vegan, f.glutenFree, f.italian, f.thai = vegan.ID, gf.ID, italian.ID, thai.ID

	fam, err := a.store.CreateFamily(ctx, "Testers")
	must(err)
	f.familyID = fam.ID

	ana, err := a.store.CreateMember(ctx, fam.ID, store.MemberInput{
		Name:           "Ana",
		RestrictionIDs: []int64{f.vegan},
		Preferences:    []store.PreferenceInput{{CuisineID: f.thai, Level: 5}},
	})
	must(err)
	ben, err := a.store.CreateMember(ctx, fam.ID, store.MemberInput{
		Name:           "Ben",
		RestrictionIDs: []int64{f.glutenFree},
		Preferences:    []store.PreferenceInput{{CuisineID: f.italian, Level: 4}},
	})
	must(err)
	f.ana, f.ben = ana.ID, ben.ID

	tr, err := a.store.CreateRestaurant(ctx, fam.ID, store.RestaurantInput{
		Name:       "Trattoria",
		CuisineID:  f.italian,
		PriceRange: 2,
		Rating:     4.5,
		Accommodations: []store.AccommodationInput{
			{RestrictionID: f.vegan},
			{RestrictionID: f.glutenFree, Notes: "GF pasta"},
		},
	})
	must(err)
	to, err := a.store.CreateRestaurant(ctx, fam.ID, store.RestaurantInput{
		Name:           "Thai Orchid",
		CuisineID:      f.thai,
		PriceRange:     3,
		Rating:         4.0,
		Accommodations: []store.AccommodationInput{{RestrictionID: f.vegan}},
	})
	must(err)
	f.trattoria, f.thaiOrchid = tr.ID, to.ID

	return f
}
