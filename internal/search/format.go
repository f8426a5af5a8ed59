// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/confsearch/internal/registry"
	"github.com/pdiddy/confsearch/pkg/types"
)

// FormatTable writes results as a human-readable table to w.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-4s  %-16s  %s\n",
		"Rank", "Title", "Authors", "Year", "Conference", "Tier")
	fmt.Fprintln(w, strings.Repeat("-", 116))

	for i, p := range papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		conf := p.Conference
		if len(conf) > 16 {
			conf = conf[:13] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-4d  %-16s  %s\n",
			i+1, title, formatAuthors(p.Authors), p.Year, conf, p.Tier)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// FormatList renders results as a numbered plain-text list, one block per
// paper, for the tool-adapter boundary.
func FormatList(papers []types.Paper) string {
	if len(papers) == 0 {
		return "No papers found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d paper(s):\n", len(papers))
	for i, p := range papers {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, p.Title)
		if len(p.Authors) > 0 {
			fmt.Fprintf(&b, "   Authors: %s\n", strings.Join(p.Authors, ", "))
		}
		fmt.Fprintf(&b, "   Conference: %s (%s, %s tier)\n", p.Conference, p.FullName, p.Tier)
		fmt.Fprintf(&b, "   Year: %d\n", p.Year)
		if p.Link != "" {
			fmt.Fprintf(&b, "   Link: %s\n", p.Link)
		}
		if p.DOI != "" {
			fmt.Fprintf(&b, "   DOI: %s\n", p.DOI)
		}
		if p.Website != "" {
			fmt.Fprintf(&b, "   Website: %s\n", p.Website)
		}
	}
	return b.String()
}

// FormatConferences renders the registry listing per tier, with each
// conference's year coverage and the year range requests may target. No
// network call is involved.
func FormatConferences(reg *registry.Registry, now time.Time) string {
	var b strings.Builder

	writeTier := func(title string, tier registry.Tier) {
		fmt.Fprintf(&b, "%s:\n", title)
		for _, key := range reg.Keys(tier) {
			c, _ := reg.Info(key)
			years := c.Years()
			span := ""
			if len(years) > 0 {
				span = fmt.Sprintf(", %d-%d", years[0], years[len(years)-1])
			}
			fmt.Fprintf(&b, "  %-8s  %s (%s%s)\n", c.Key, c.Name, c.ShortName, span)
		}
	}

	writeTier("Top tier", registry.TierTop)
	b.WriteString("\n")
	writeTier("Second tier", registry.TierSecond)

	from, to := registry.YearRange(now)
	fmt.Fprintf(&b, "\nSearchable years: %d-%d\n", from, to)
	return b.String()
}

// FormatStats renders aggregate counts as plain text.
func FormatStats(stats Stats) string {
	if stats.Total == 0 {
		return "No papers found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total papers: %d\n", stats.Total)

	b.WriteString("\nBy year:\n")
	for _, yc := range stats.ByYear {
		fmt.Fprintf(&b, "  %d: %d\n", yc.Year, yc.Count)
	}

	b.WriteString("\nBy conference:\n")
	for _, cc := range stats.ByConference {
		fmt.Fprintf(&b, "  %s: %d\n", cc.Conference, cc.Count)
	}
	return b.String()
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
