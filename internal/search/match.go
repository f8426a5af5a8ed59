// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/confsearch/internal/registry"
)

// MatchVenue maps a free-text venue string from a DBLP hit to a
// registered conference. Venue strings vary wildly in casing and
// abbreviation, so matching is case-insensitive substring containment,
// applied in three passes of decreasing specificity:
//
//  1. the conference's DBLP venue identifier,
//  2. its known alternate names and abbreviations,
//  3. its registry key or short display name.
//
// Each pass scans the full registry (top tier, then second) before the
// next pass runs, so an exact venue-identifier match anywhere in the
// registry always beats a looser short-name match. Returns ok=false when
// no conference matches under any rule; an unmatched venue is not an
// error.
func MatchVenue(venue string, reg *registry.Registry) (registry.Conference, bool) {
	text := strings.ToLower(venue)
	if strings.TrimSpace(text) == "" {
		return registry.Conference{}, false
	}

	keys := reg.Keys(registry.TierAll)

	for _, key := range keys {
		c, _ := reg.Info(key)
		if strings.Contains(text, strings.ToLower(c.Venue)) {
			return c, true
		}
	}

	for _, key := range keys {
		c, _ := reg.Info(key)
		for _, alias := range c.Aliases {
			if strings.Contains(text, strings.ToLower(alias)) {
				return c, true
			}
		}
	}

	for _, key := range keys {
		c, _ := reg.Info(key)
		if strings.Contains(text, c.Key) || strings.Contains(text, strings.ToLower(c.ShortName)) {
			return c, true
		}
	}

	return registry.Conference{}, false
}
