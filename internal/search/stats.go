// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"

	"github.com/pdiddy/confsearch/pkg/types"
)

// YearCount is the number of papers published in one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// ConferenceCount is the number of papers at one conference.
type ConferenceCount struct {
	Conference string `json:"conference"`
	Count      int    `json:"count"`
}

// Stats aggregates a result list by year and by conference.
type Stats struct {
	Total        int               `json:"total"`
	ByYear       []YearCount       `json:"by_year"`
	ByConference []ConferenceCount `json:"by_conference"`
}

// Aggregate reduces a result list into counts: years descending,
// conferences by descending count with name as tie-break.
func Aggregate(papers []types.Paper) Stats {
	years := make(map[int]int)
	confs := make(map[string]int)
	for _, p := range papers {
		years[p.Year]++
		confs[p.Conference]++
	}

	stats := Stats{Total: len(papers)}
	for y, n := range years {
		stats.ByYear = append(stats.ByYear, YearCount{Year: y, Count: n})
	}
	sort.Slice(stats.ByYear, func(i, j int) bool {
		return stats.ByYear[i].Year > stats.ByYear[j].Year
	})

	for c, n := range confs {
		stats.ByConference = append(stats.ByConference, ConferenceCount{Conference: c, Count: n})
	}
	sort.Slice(stats.ByConference, func(i, j int) bool {
		a, b := stats.ByConference[i], stats.ByConference[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Conference < b.Conference
	})

	return stats
}
