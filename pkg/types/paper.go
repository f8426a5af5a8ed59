// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for confsearch: the
// normalized Paper record returned to callers and the configuration
// structs read from the config file.
package types

// Paper is one normalized search result. The conference fields hold the
// matched registry entry when venue matching succeeds; otherwise they fall
// back to the raw upstream venue text with tier "second", so co-located
// workshops still surface as results.
type Paper struct {
	// Title is the paper title as returned by the upstream API.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in upstream order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Conference is the matched conference's short name (e.g. "S&P"),
	// or the raw venue text when no registered conference matched.
	Conference string `json:"conference" yaml:"conference"`

	// FullName is the matched conference's full display name, or the raw
	// venue text when no registered conference matched.
	FullName string `json:"full_name" yaml:"full_name"`

	// Tier is "top" or "second".
	Tier string `json:"tier" yaml:"tier"`

	// Link is the canonical link for the paper: the electronic edition
	// when the upstream provides one, otherwise the generic record URL.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// DOI is the paper DOI, when present upstream.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Website is the matched conference's site for the paper's year,
	// when the registry has one.
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}
