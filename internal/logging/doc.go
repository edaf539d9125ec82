// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

// Package logging provides the zerolog-based global logger used across
// Tablemate.
//
// Call Init once from main with values from the config package, then log
// through the package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Error().Err(err).Msg("Store GC failed")
//
// Request-scoped code logs through Ctx, which adds the request_id and
// family_id placed in the context by the HTTP middleware:
//
//	logging.Ctx(r.Context()).Warn().Msg("No restaurant accommodates the group")
//
// SlogHandler bridges log/slog to zerolog so that sutureslog can report
// supervisor events through the same output.
//
// Always finish an event with Msg or Send; an unfinished event is never written.
package logging
