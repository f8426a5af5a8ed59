// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry holds the static security-conference table: display
// names, tiers, DBLP venue identifiers, alternate names, and per-year
// conference sites. The table is embedded at build time, decoded once at
// startup, and immutable afterwards; components receive the Registry as an
// explicit value, never as ambient state.
package registry

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// Tier classifies a conference's prestige bucket.
type Tier string

const (
	TierTop    Tier = "top"
	TierSecond Tier = "second"
	TierAll    Tier = "all"
)

// ParseTier normalizes a tier string, defaulting to TierAll for empty
// input. Unknown values are reported as errors so callers can reject bad
// requests before any upstream work.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return TierAll, nil
	case TierTop:
		return TierTop, nil
	case TierSecond:
		return TierSecond, nil
	case TierAll:
		return TierAll, nil
	default:
		return "", fmt.Errorf("unknown tier %q: want top, second, or all", s)
	}
}

// Conference is one registry entry.
type Conference struct {
	// Key is the short stable identifier used in requests (e.g. "sp").
	Key string `yaml:"key"`

	// Name is the full display name.
	Name string `yaml:"name"`

	// ShortName is the common abbreviation (e.g. "S&P").
	ShortName string `yaml:"short_name"`

	// Venue is the DBLP venue identifier, used both for query
	// construction and for matching result venue text.
	Venue string `yaml:"venue"`

	// Aliases are alternate names and abbreviations recognized during
	// venue matching (e.g. "oakland" for S&P).
	Aliases []string `yaml:"aliases"`

	// Websites maps a year (as string) to the conference site for that
	// edition.
	Websites map[string]string `yaml:"websites"`

	// Tier is set during load from the section the entry appears in.
	Tier Tier `yaml:"-"`
}

// Registry is the immutable conference table.
type Registry struct {
	order  []string // keys, top tier first, then second, declaration order
	byKey  map[string]Conference
	topLen int
}

//go:embed conferences.yaml
var conferencesYAML []byte

type registryFile struct {
	Top    []Conference `yaml:"top"`
	Second []Conference `yaml:"second"`
}

// Load decodes the embedded conference table. It fails on duplicate keys
// or entries without a venue identifier; neither occurs in a well-formed
// table, so a Load error means the embedded data is broken.
func Load() (*Registry, error) {
	var rf registryFile
	if err := yaml.Unmarshal(conferencesYAML, &rf); err != nil {
		return nil, fmt.Errorf("parsing conference table: %w", err)
	}

	r := &Registry{byKey: make(map[string]Conference)}
	add := func(c Conference, tier Tier) error {
		key := strings.ToLower(c.Key)
		if key == "" {
			return fmt.Errorf("conference %q has no key", c.Name)
		}
		if c.Venue == "" {
			return fmt.Errorf("conference %q has no venue identifier", c.Key)
		}
		if _, dup := r.byKey[key]; dup {
			return fmt.Errorf("duplicate conference key %q", c.Key)
		}
		c.Key = key
		c.Tier = tier
		r.byKey[key] = c
		r.order = append(r.order, key)
		return nil
	}

	for _, c := range rf.Top {
		if err := add(c, TierTop); err != nil {
			return nil, err
		}
	}
	r.topLen = len(r.order)
	for _, c := range rf.Second {
		if err := add(c, TierSecond); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// All returns every registered conference keyed by registry key.
func (r *Registry) All() map[string]Conference {
	return r.ByTier(TierAll)
}

// ByTier returns the conferences in the given tier; TierAll returns the
// full union.
func (r *Registry) ByTier(tier Tier) map[string]Conference {
	out := make(map[string]Conference)
	for _, key := range r.Keys(tier) {
		out[key] = r.byKey[key]
	}
	return out
}

// Keys returns registry keys for the tier in scan order: top tier first,
// then second, each in declaration order.
func (r *Registry) Keys(tier Tier) []string {
	switch tier {
	case TierTop:
		return append([]string(nil), r.order[:r.topLen]...)
	case TierSecond:
		return append([]string(nil), r.order[r.topLen:]...)
	default:
		return append([]string(nil), r.order...)
	}
}

// Info looks up a conference by key, case-insensitively. An unknown key
// yields ok=false, never an error.
func (r *Registry) Info(key string) (Conference, bool) {
	c, ok := r.byKey[strings.ToLower(strings.TrimSpace(key))]
	return c, ok
}

// WebsiteURL returns the conference site for the given year, if the
// registry has one.
func (r *Registry) WebsiteURL(key string, year int) (string, bool) {
	c, ok := r.Info(key)
	if !ok {
		return "", false
	}
	u, ok := c.Websites[strconv.Itoa(year)]
	return u, ok
}

// Years returns the years the registry has a site for, ascending.
func (c Conference) Years() []int {
	years := make([]int, 0, len(c.Websites))
	for y := range c.Websites {
		n, err := strconv.Atoi(y)
		if err != nil {
			continue
		}
		years = append(years, n)
	}
	sort.Ints(years)
	return years
}

// FloorYear is the earliest year requests may target.
const FloorYear = 2020

// YearRange returns the inclusive span of years requests may target:
// FloorYear through one year past now, admitting upcoming editions that
// already have accepted papers.
func YearRange(now time.Time) (from, to int) {
	return FloorYear, now.Year() + 1
}
