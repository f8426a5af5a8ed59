// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "fmt"

// UnknownConferenceError reports a request for a conference key that is
// not in the registry. It is raised before any upstream call is made.
type UnknownConferenceError struct {
	Key string
}

func (e *UnknownConferenceError) Error() string {
	return fmt.Sprintf("unknown conference %q", e.Key)
}

// UpstreamError reports a failed DBLP request: a non-success HTTP status,
// a transport failure, or a timeout. Status is zero when the request never
// produced a response.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("DBLP returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("DBLP request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// DecodeError reports a DBLP response body that does not match the
// expected envelope shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("parsing DBLP response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
