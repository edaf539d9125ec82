// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned for malformed requests.
	ErrInvalidRequest = errors.New("invalid recommendation request")

	// ErrUnknownMember is returned when a requested member does not exist
	// in the family.
	ErrUnknownMember = errors.New("unknown family member")
)

// InvalidRequestError describes which request field was rejected.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest, e.Field, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

// UnknownMemberError names the first member ID that could not be resolved.
type UnknownMemberError struct {
	FamilyID string
	MemberID int64
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("%s: member %d not found in family %q", ErrUnknownMember, e.MemberID, e.FamilyID)
}

func (e *UnknownMemberError) Unwrap() error {
	return ErrUnknownMember
}

func invalid(field, reason string) error {
	return &InvalidRequestError{Field: field, Reason: reason}
}
