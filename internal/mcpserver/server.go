// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the search layer as MCP tools over stdio.
// Tool failures are reported as error-flagged text results; handler
// errors never propagate past this boundary.
package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/confsearch/internal/registry"
	"github.com/pdiddy/confsearch/internal/search"
)

// Server wires the registry and searcher into MCP tool handlers. The
// core holds no cross-call state, so concurrent tool invocations from the
// host are safe.
type Server struct {
	reg      *registry.Registry
	searcher *search.Searcher
	log      zerolog.Logger
	now      func() time.Time
}

// New builds a Server. The clock is injectable for tests.
func New(reg *registry.Registry, searcher *search.Searcher, log zerolog.Logger) *Server {
	return &Server{reg: reg, searcher: searcher, log: log, now: time.Now}
}

// Run serves the tools over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context, version string) error {
	srv := mcp.NewServer(&mcp.Implementation{Name: "confsearch", Version: version}, nil)
	s.register(srv)
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// SearchPapersArgs are the arguments for the search_papers tool.
type SearchPapersArgs struct {
	Keyword     string   `json:"keyword,omitempty"`
	Author      string   `json:"author,omitempty"`
	YearFrom    int      `json:"year_from,omitempty"`
	YearTo      int      `json:"year_to,omitempty"`
	Conferences []string `json:"conferences,omitempty"`
	Tier        string   `json:"tier,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// ConferencePapersArgs are the arguments for the get_conference_papers tool.
type ConferencePapersArgs struct {
	Conference string `json:"conference"`
	Year       int    `json:"year"`
}

// ListConferencesArgs are the arguments for the list_conferences tool.
type ListConferencesArgs struct{}

// StatsArgs are the arguments for the get_stats tool.
type StatsArgs struct {
	Keyword string `json:"keyword,omitempty"`
	Tier    string `json:"tier,omitempty"`
}

func (s *Server) register(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name: "search_papers",
		Description: "Search security-conference papers on DBLP by keyword, author, " +
			"year range, conference keys, and tier.",
	}, s.handleSearchPapers)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_conference_papers",
		Description: "List the papers of one conference edition (registry key + year).",
	}, s.handleConferencePapers)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_conferences",
		Description: "List the registered conferences per tier and the searchable year range.",
	}, s.handleListConferences)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_stats",
		Description: "Count matching papers by year and by conference.",
	}, s.handleStats)
}

func (s *Server) handleSearchPapers(ctx context.Context, req *mcp.CallToolRequest, args SearchPapersArgs) (*mcp.CallToolResult, any, error) {
	s.log.Info().Str("tool", "search_papers").Str("keyword", args.Keyword).
		Str("author", args.Author).Str("tier", args.Tier).Msg("tool call")

	tier, err := registry.ParseTier(args.Tier)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	yearFrom, yearTo, err := s.validateYears(args.YearFrom, args.YearTo)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	papers, err := s.searcher.Search(ctx, search.Request{
		Keyword:     args.Keyword,
		Author:      args.Author,
		YearFrom:    yearFrom,
		YearTo:      yearTo,
		Conferences: args.Conferences,
		Tier:        tier,
		Limit:       clampLimit(args.Limit),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("tool", "search_papers").Msg("search failed")
		return errorResult("search failed: " + err.Error()), nil, nil
	}

	return textResult(search.FormatList(papers)), nil, nil
}

func (s *Server) handleConferencePapers(ctx context.Context, req *mcp.CallToolRequest, args ConferencePapersArgs) (*mcp.CallToolResult, any, error) {
	s.log.Info().Str("tool", "get_conference_papers").
		Str("conference", args.Conference).Int("year", args.Year).Msg("tool call")

	if args.Year == 0 {
		return errorResult("year is required"), nil, nil
	}
	if _, _, err := s.validateYears(args.Year, args.Year); err != nil {
		return errorResult(err.Error()), nil, nil
	}

	papers, err := s.searcher.SearchByConference(ctx, args.Conference, args.Year)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", "get_conference_papers").Msg("search failed")
		return errorResult(err.Error()), nil, nil
	}

	return textResult(search.FormatList(papers)), nil, nil
}

func (s *Server) handleListConferences(ctx context.Context, req *mcp.CallToolRequest, args ListConferencesArgs) (*mcp.CallToolResult, any, error) {
	s.log.Info().Str("tool", "list_conferences").Msg("tool call")
	return textResult(search.FormatConferences(s.reg, s.now())), nil, nil
}

func (s *Server) handleStats(ctx context.Context, req *mcp.CallToolRequest, args StatsArgs) (*mcp.CallToolResult, any, error) {
	s.log.Info().Str("tool", "get_stats").Str("keyword", args.Keyword).
		Str("tier", args.Tier).Msg("tool call")

	tier, err := registry.ParseTier(args.Tier)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	papers, err := s.searcher.Search(ctx, search.Request{
		Keyword: args.Keyword,
		Tier:    tier,
		Limit:   search.MaxLimit,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("tool", "get_stats").Msg("search failed")
		return errorResult("search failed: " + err.Error()), nil, nil
	}

	return textResult(search.FormatStats(search.Aggregate(papers))), nil, nil
}

// validateYears checks requested year bounds against the searchable
// range. Zero values stay zero (open bound).
func (s *Server) validateYears(from, to int) (int, int, error) {
	floor, ceil := registry.YearRange(s.now())
	for _, y := range []int{from, to} {
		if y != 0 && (y < floor || y > ceil) {
			return 0, 0, fmt.Errorf("year %d out of range: want %d-%d", y, floor, ceil)
		}
	}
	if from != 0 && to != 0 && from > to {
		return 0, 0, fmt.Errorf("year_from %d is after year_to %d", from, to)
	}
	return from, to, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return search.DefaultLimit
	}
	if limit > search.MaxLimit {
		return search.MaxLimit
	}
	return limit
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
