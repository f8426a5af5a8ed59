// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/confsearch/internal/registry"
)

// Request holds the structured search parameters.
type Request struct {
	// Keyword is free text matched against titles.
	Keyword string

	// Author filters by author name.
	Author string

	// YearFrom and YearTo bound the publication year inclusively; zero
	// leaves that end open. Year bounds are applied locally after results
	// return, not in the upstream query.
	YearFrom int
	YearTo   int

	// Conferences is an explicit allow-list of registry keys. When empty
	// the effective set is derived from Tier.
	Conferences []string

	// Tier selects the default conference set; empty means all.
	Tier registry.Tier

	// Limit caps the number of hits requested upstream (default 50).
	Limit int
}

// BuildQuery translates a Request into a single DBLP query string:
// keyword, then an author-qualified term, then a disjunction of venue
// qualifiers over the effective conference set. Keys that do not resolve
// in the registry are discarded; if none resolve the venue clause is
// omitted and the search runs unconstrained.
func BuildQuery(req Request, reg *registry.Registry) string {
	var parts []string

	if req.Keyword != "" {
		parts = append(parts, req.Keyword)
	}
	if req.Author != "" {
		// DBLP tokenizes on whitespace, so the name is folded into one
		// author-qualified term.
		parts = append(parts, "author:"+strings.Join(strings.Fields(req.Author), "_"))
	}
	if clause := venueClause(req, reg); clause != "" {
		parts = append(parts, clause)
	}

	return strings.Join(parts, " ")
}

// venueClause ORs the venue identifiers of the effective conference set
// into one DBLP term (e.g. "venue:SP|venue:CCS").
func venueClause(req Request, reg *registry.Registry) string {
	var qualifiers []string
	for _, key := range effectiveConferences(req, reg) {
		c, ok := reg.Info(key)
		if !ok {
			continue
		}
		qualifiers = append(qualifiers, "venue:"+c.Venue)
	}
	return strings.Join(qualifiers, "|")
}

// effectiveConferences resolves the registry keys a request targets: the
// explicit list when non-empty, otherwise every key in the request's tier.
func effectiveConferences(req Request, reg *registry.Registry) []string {
	if len(req.Conferences) > 0 {
		return req.Conferences
	}
	tier := req.Tier
	if tier == "" {
		tier = registry.TierAll
	}
	return reg.Keys(tier)
}
