// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

// Package validation validates API request bodies with go-playground/validator.
//
// A single validator instance is shared by all handlers. Error field names
// come from json tags, so a client that sent "memberIds" sees "memberIds" in
// the error, and nested fields appear as "filters.minRating".
//
// Besides the built-in tags, "notblank" rejects strings that are empty after
// trimming whitespace.
//
//	type createMemberRequest struct {
//	    Name           string  `json:"name" validate:"required,notblank,max=100"`
//	    RestrictionIDs []int64 `json:"restrictionIds" validate:"omitempty,unique,dive,gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
