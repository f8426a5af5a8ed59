// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search translates structured requests into DBLP queries and
// normalizes the returned records against the conference registry.
package search

import (
	"context"
	"strconv"
	"strings"

	"github.com/pdiddy/confsearch/internal/httputil"
	"github.com/pdiddy/confsearch/internal/registry"
	"github.com/pdiddy/confsearch/pkg/types"
)

const (
	// DefaultLimit is the result limit when a request does not set one.
	DefaultLimit = 50

	// MaxLimit bounds the hits requested upstream in a single call.
	MaxLimit = 100
)

// Searcher runs searches against DBLP and normalizes the results. It
// holds no per-call state; a single Searcher is safe for concurrent use.
type Searcher struct {
	reg          *registry.Registry
	client       *Client
	defaultLimit int
}

// New builds a Searcher around the given registry and HTTP settings.
func New(reg *registry.Registry, cfg types.SearchConfig) *Searcher {
	s := NewWithClient(reg, &Client{HTTP: httputil.NewClient(cfg.Timeout, cfg.UserAgent)})
	if cfg.MaxResults > 0 {
		s.defaultLimit = cfg.MaxResults
	}
	return s
}

// NewWithClient builds a Searcher around an existing DBLP client.
func NewWithClient(reg *registry.Registry, client *Client) *Searcher {
	return &Searcher{reg: reg, client: client, defaultLimit: DefaultLimit}
}

// Search issues one upstream query for the request and returns normalized
// papers in upstream order. Year bounds and the explicit conference
// allow-list are enforced locally: DBLP's venue filter matches by
// substring and its grammar has no reliable year bounds, so both are
// post-filters. Hits whose year field does not parse are excluded, since
// they cannot be checked against the year range.
func (s *Searcher) Search(ctx context.Context, req Request) ([]types.Paper, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	hits, err := s.client.Search(ctx, BuildQuery(req, s.reg), limit)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(req.Conferences))
	for _, key := range req.Conferences {
		allowed[strings.ToLower(strings.TrimSpace(key))] = true
	}

	papers := make([]types.Paper, 0, len(hits))
	for _, hit := range hits {
		year, err := strconv.Atoi(strings.TrimSpace(hit.Year))
		if err != nil {
			continue
		}
		if req.YearFrom > 0 && year < req.YearFrom {
			continue
		}
		if req.YearTo > 0 && year > req.YearTo {
			continue
		}

		conf, matched := MatchVenue(hit.Venue, s.reg)

		// The allow-list only excludes hits that matched some other
		// registered conference; unmatched venues always pass through.
		if matched && len(allowed) > 0 && !allowed[conf.Key] {
			continue
		}

		papers = append(papers, buildPaper(hit, conf, matched, year, s.reg))
	}
	return papers, nil
}

// SearchByConference returns papers for one exact conference edition. An
// unregistered key fails with *UnknownConferenceError before any network
// call.
func (s *Searcher) SearchByConference(ctx context.Context, key string, year int) ([]types.Paper, error) {
	if _, ok := s.reg.Info(key); !ok {
		return nil, &UnknownConferenceError{Key: key}
	}
	return s.Search(ctx, Request{
		Conferences: []string{key},
		YearFrom:    year,
		YearTo:      year,
		Limit:       MaxLimit,
	})
}

// Registry returns the conference table the Searcher was built with.
func (s *Searcher) Registry() *registry.Registry { return s.reg }

// buildPaper assembles the normalized record for one hit. The fallback
// for unmatched venues is deliberate: the raw venue text stands in for
// both conference names and the tier defaults to "second".
func buildPaper(hit Hit, conf registry.Conference, matched bool, year int, reg *registry.Registry) types.Paper {
	p := types.Paper{
		Title:   hit.Title,
		Authors: hit.Authors,
		Year:    year,
		DOI:     hit.DOI,
	}

	// Prefer the electronic edition over the generic record URL.
	p.Link = hit.EE
	if p.Link == "" {
		p.Link = hit.URL
	}

	if matched {
		p.Conference = conf.ShortName
		p.FullName = conf.Name
		p.Tier = string(conf.Tier)
		if site, ok := reg.WebsiteURL(conf.Key, year); ok {
			p.Website = site
		}
	} else {
		p.Conference = hit.Venue
		p.FullName = hit.Venue
		p.Tier = string(registry.TierSecond)
	}
	return p
}
