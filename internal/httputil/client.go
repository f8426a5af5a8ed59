// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP client construction shared across the
// module.
package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds upstream requests when no timeout is configured.
// A hanging upstream call fails with the client's timeout error instead
// of blocking the caller indefinitely.
const DefaultTimeout = 30 * time.Second

// NewClient returns an HTTP client with an explicit timeout and a
// transport that stamps the given User-Agent on every request. The client
// is safe for concurrent use.
func NewClient(timeout time.Duration, userAgent string) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: userAgent,
		},
	}
}

// userAgentTransport sets the User-Agent header unless the request
// already carries one.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}
