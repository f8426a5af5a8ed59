// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/confsearch/pkg/types"
)

func TestFormatListIncludesFields(t *testing.T) {
	papers := []types.Paper{{
		Title:      "Deep Attack",
		Authors:    []string{"Alice", "Bob"},
		Year:       2024,
		Conference: "S&P",
		FullName:   "IEEE Symposium on Security and Privacy",
		Tier:       "top",
		Link:       "https://doi.org/10.9/x",
		DOI:        "10.9/x",
		Website:    "https://www.ieee-security.org/TC/SP2024/",
	}}

	out := FormatList(papers)
	for _, want := range []string{
		"Found 1 paper(s)",
		"Deep Attack",
		"Alice, Bob",
		"S&P",
		"top tier",
		"2024",
		"https://doi.org/10.9/x",
		"10.9/x",
		"https://www.ieee-security.org/TC/SP2024/",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatList output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatListEmpty(t *testing.T) {
	if got := FormatList(nil); got != "No papers found." {
		t.Errorf("FormatList(nil) = %q", got)
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable([]types.Paper{
		{Title: "Paper", Authors: []string{"Ada Lovelace", "Alan Turing"}, Year: 2024, Conference: "CCS", Tier: "top"},
	}, &buf)

	out := buf.String()
	if !strings.Contains(out, "Paper") || !strings.Contains(out, "et al.") {
		t.Errorf("unexpected table output:\n%s", out)
	}
	if !strings.Contains(out, "1 papers") {
		t.Errorf("missing count line:\n%s", out)
	}
}

func TestFormatConferences(t *testing.T) {
	reg := testRegistry(t)
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	out := FormatConferences(reg, now)
	for _, want := range []string{
		"Top tier",
		"Second tier",
		"sp",
		"esorics",
		"Searchable years: 2020-2026",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatConferences output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(Stats{
		Total:        3,
		ByYear:       []YearCount{{2024, 2}, {2023, 1}},
		ByConference: []ConferenceCount{{"CCS", 2}, {"NDSS", 1}},
	})
	for _, want := range []string{"Total papers: 3", "2024: 2", "CCS: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatStats output missing %q:\n%s", want, out)
		}
	}

	if got := FormatStats(Stats{}); got != "No papers found." {
		t.Errorf("FormatStats(zero) = %q", got)
	}
}
