// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for upstream requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. A hanging upstream call fails
	// with an upstream error once the timeout expires.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with upstream requests
	// (e.g. "confsearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search layer.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the default result limit per search (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
