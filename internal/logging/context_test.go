// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Error("request IDs should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("request ID %q is not a UUID: %v", a, err)
	}
}

func TestContextValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || FamilyIDFromContext(ctx) != "" {
		t.Fatal("empty context should carry no IDs")
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithFamilyID(ctx, "fam-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", got)
	}
	if got := FamilyIDFromContext(ctx); got != "fam-1" {
		t.Errorf("FamilyIDFromContext = %q, want fam-1", got)
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithFamilyID(ctx, "fam-7")

	Ctx(ctx).Info().Msg("served")
	CtxErr(ctx, errors.New("store down")).Msg("failed")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"family_id":"fam-7"`, `"message":"served"`, `"error":"store down"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestCtx_WithoutValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	Ctx(ctx).Info().Msg("plain")

	out := buf.String()
	if strings.Contains(out, "request_id") || strings.Contains(out, "family_id") {
		t.Errorf("unexpected context fields: %s", out)
	}
}
