// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

// Package store persists Tablemate data in BadgerDB.
//
// # Layout
//
// Records are JSON values under prefixed keys:
//
//	family:{uuid}
//	restriction:{id}
//	cuisine:{id}
//	member:{familyID}:{id}
//	restaurant:{familyID}:{id}
//
// Numeric IDs are zero-padded so prefix scans return records in ID order,
// and are allocated from BadgerDB sequences. Members and restaurants store
// reference IDs and are hydrated on read; a write that references missing
// reference data fails with ErrInvalidReference.
//
// The Store implements recommend.MemberResolver and recommend.CatalogProvider.
//
// # Seeding
//
// A YAML seed file (see configs/seed.yaml) can be applied to an empty store
// with LoadSeedFile and ApplySeed. Seed records reference each other by name.
package store
