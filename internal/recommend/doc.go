// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

// Package recommend implements dietary-aware restaurant recommendations for
// a group of family members.
//
// # Architecture
//
// A request flows through four stages:
//
//   - Service: validates the request, resolves members and the catalog
//   - Controller: walks the relaxation ladder and member-removal fallback
//   - Scorer: scores one restaurant against the group
//   - Summarize: aggregates the group's restrictions and cuisine preferences
//
// # Scoring
//
// A restaurant's score is a weighted sum of three terms in [0, 1]:
//
//	score = W_acc*accommodation + W_pref*preference + W_rating*rating
//
// accommodation is the share of members whose every restriction the
// restaurant accommodates. preference is the mean level (divided by 5) among
// members who expressed a preference for the restaurant's cuisine. rating is
// the restaurant rating divided by 5. Config.Validate enforces
// W_pref + W_rating < W_acc / MaxGroupSize, so accommodating more members
// always yields a higher score.
//
// Results are ranked by accommodation, then preference, then rating, then
// name and ID. The score is reported alongside but does not decide the order,
// so rating never outranks a preference difference.
//
// # Relaxation
//
// When the strict stage yields no viable restaurant, filter categories are
// dropped cumulatively in the configured order, then every filter is removed.
// If that still yields nothing, the member with the most distinct restrictions
// (lowest ID on ties) is removed and the ladder is climbed once more. Any
// relaxed outcome is returned as a *RelaxedResult carrying the relaxation.
//
// A restaurant is viable when it accommodates at least
// Relaxation.MinAccommodatedMembers members (capped at the group size). The
// default of 1 returns partial matches. Set it to Limits.MaxGroupSize to
// require whole-group accommodation: member removal then runs whenever no
// restaurant feeds everyone, and the reduced group is served by any
// restaurant that feeds all remaining members.
//
// # Usage
//
//	svc, err := recommend.NewService(recommend.DefaultConfig(), store, store, logger)
//	if err != nil {
//	    return err
//	}
//	result, err := svc.Recommend(ctx, recommend.Request{
//	    FamilyID:  familyID,
//	    MemberIDs: []int64{1, 2, 3},
//	})
//	resp := recommend.ToResponse(result)
//
// # Thread Safety
//
// The service holds no per-request state and is safe for concurrent use.
// Identical inputs produce identical outputs.
package recommend
