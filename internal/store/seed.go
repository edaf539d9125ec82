// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/tablemate/internal/logging"
)

// Seed is initial data applied to an empty store. References between
// records are by name so the file does not depend on generated IDs.
type Seed struct {
	Restrictions []SeedRestriction `koanf:"restrictions"`
	Cuisines     []SeedCuisine     `koanf:"cuisines"`
	Families     []SeedFamily      `koanf:"families"`
}

// SeedRestriction is a dietary restriction in a seed file.
type SeedRestriction struct {
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
}

// SeedCuisine is a cuisine in a seed file.
type SeedCuisine struct {
	Name string `koanf:"name"`
}

// SeedFamily is a family with its members and restaurants.
type SeedFamily struct {
	Name        string           `koanf:"name"`
	Members     []SeedMember     `koanf:"members"`
	Restaurants []SeedRestaurant `koanf:"restaurants"`
}

// SeedMember references restrictions and cuisines by name.
type SeedMember struct {
	Name         string           `koanf:"name"`
	Restrictions []string         `koanf:"restrictions"`
	Preferences  []SeedPreference `koanf:"preferences"`
}

// SeedPreference is a cuisine preference by cuisine name.
type SeedPreference struct {
	Cuisine string `koanf:"cuisine"`
	Level   int    `koanf:"level"`
}

// SeedRestaurant references its cuisine and accommodations by name.
type SeedRestaurant struct {
	Name           string              `koanf:"name"`
	Address        string              `koanf:"address"`
	Phone          string              `koanf:"phone"`
	Website        string              `koanf:"website"`
	Cuisine        string              `koanf:"cuisine"`
	PriceRange     int                 `koanf:"price_range"`
	Rating         float64             `koanf:"rating"`
	Accommodations []SeedAccommodation `koanf:"accommodations"`
}

// SeedAccommodation is an accommodation by restriction name.
type SeedAccommodation struct {
	Restriction string `koanf:"restriction"`
	Notes       string `koanf:"notes"`
}

// SeedResult reports what ApplySeed created.
type SeedResult struct {
	Skipped      bool
	Restrictions int
	Cuisines     int
	Families     int
	Members      int
	Restaurants  int
}

// LoadSeedFile parses a YAML seed file.
func LoadSeedFile(path string) (*Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", path, err)
	}

	var seed Seed
	if err := k.Unmarshal("", &seed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
	}
	return &seed, nil
}

// ApplySeed writes the seed into the store if it is empty. A non-empty
// store is left untouched and the result is marked skipped.
func (s *Store) ApplySeed(ctx context.Context, seed *Seed) (SeedResult, error) {
	var res SeedResult

	empty, err := s.IsEmpty(ctx)
	if err != nil {
		return res, err
	}
	if !empty {
		res.Skipped = true
		return res, nil
	}

	restrictionIDs := make(map[string]int64, len(seed.Restrictions))
	for _, r := range seed.Restrictions {
		dr, err := s.CreateRestriction(ctx, r.Name, r.Description)
		if err != nil {
			return res, fmt.Errorf("seed restriction %q: %w", r.Name, err)
		}
		restrictionIDs[strings.ToLower(dr.Name)] = dr.ID
		res.Restrictions++
	}

	cuisineIDs := make(map[string]int64, len(seed.Cuisines))
	for _, c := range seed.Cuisines {
		cu, err := s.CreateCuisine(ctx, c.Name)
		if err != nil {
			return res, fmt.Errorf("seed cuisine %q: %w", c.Name, err)
		}
		cuisineIDs[strings.ToLower(cu.Name)] = cu.ID
		res.Cuisines++
	}

	lookup := func(ids map[string]int64, kind, name string) (int64, error) {
		id, ok := ids[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidReference, kind, name)
		}
		return id, nil
	}

	for _, sf := range seed.Families {
		fam, err := s.CreateFamily(ctx, sf.Name)
		if err != nil {
			return res, fmt.Errorf("seed family %q: %w", sf.Name, err)
		}
		res.Families++

		for _, sm := range sf.Members {
			in := MemberInput{Name: sm.Name}
			for _, name := range sm.Restrictions {
				id, err := lookup(restrictionIDs, "restriction", name)
				if err != nil {
					return res, fmt.Errorf("seed member %q: %w", sm.Name, err)
				}
				in.RestrictionIDs = append(in.RestrictionIDs, id)
			}
			for _, p := range sm.Preferences {
				id, err := lookup(cuisineIDs, "cuisine", p.Cuisine)
				if err != nil {
					return res, fmt.Errorf("seed member %q: %w", sm.Name, err)
				}
				in.Preferences = append(in.Preferences, PreferenceInput{CuisineID: id, Level: p.Level})
			}
			if _, err := s.CreateMember(ctx, fam.ID, in); err != nil {
				return res, fmt.Errorf("seed member %q: %w", sm.Name, err)
			}
			res.Members++
		}

		for _, sr := range sf.Restaurants {
			cuisineID, err := lookup(cuisineIDs, "cuisine", sr.Cuisine)
			if err != nil {
				return res, fmt.Errorf("seed restaurant %q: %w", sr.Name, err)
			}
			in := RestaurantInput{
				Name:       sr.Name,
				Address:    sr.Address,
				Phone:      sr.Phone,
				Website:    sr.Website,
				CuisineID:  cuisineID,
				PriceRange: sr.PriceRange,
				Rating:     sr.Rating,
			}
			for _, a := range sr.Accommodations {
				id, err := lookup(restrictionIDs, "restriction", a.Restriction)
				if err != nil {
					return res, fmt.Errorf("seed restaurant %q: %w", sr.Name, err)
				}
				in.Accommodations = append(in.Accommodations, AccommodationInput{RestrictionID: id, Notes: a.Notes})
			}
			if _, err := s.CreateRestaurant(ctx, fam.ID, in); err != nil {
				return res, fmt.Errorf("seed restaurant %q: %w", sr.Name, err)
			}
			res.Restaurants++
		}
	}

	logging.Info().
		Int("restrictions", res.Restrictions).
		Int("cuisines", res.Cuisines).
		Int("families", res.Families).
		Int("members", res.Members).
		Int("restaurants", res.Restaurants).
		Msg("Store seeded")
	return res, nil
}
