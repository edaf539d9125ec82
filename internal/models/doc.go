// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

/*
Package models defines data structures for the Tablemate application.

This package contains the domain records shared by the store, the recommendation
engine and the HTTP API. It serves as the single source of truth for data structure
definitions and has no dependencies on other internal packages.

Key Components:

  - Family: Scope that owns members and a restaurant collection
  - FamilyMember: Member with hydrated dietary restrictions and cuisine preferences
  - Restaurant: Catalog entry with cuisine, price range, rating and accommodations
  - DietaryRestriction, Cuisine: Shared reference data
  - Filters: Optional hard constraints of a recommendation request
  - APIResponse: Standard response wrapper

Model Categories:

1. Reference Data:
  - DietaryRestriction: identity, display name, optional description
  - Cuisine: identity and display name

2. Family Data:
  - Family, FamilyMember, CuisinePreference
  - Restaurant, DietaryAccommodation

3. Request Models:
  - Filters: maxPriceRange (1-4), minRating (0-5), cuisineIds

4. API Response Models:
  - APIResponse, APIError, Metadata

Accommodation Semantics:

Restaurant accommodations are closed-world. A restriction missing from a
restaurant's accommodation list is not accommodated; there is no "unknown" state.

Thread Safety:

All models are plain value types. Records handed to the recommendation engine are
treated as read-only for the duration of a request.
*/
package models
