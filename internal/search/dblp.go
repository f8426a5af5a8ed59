// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// dblpAPIBase is the DBLP publication search endpoint. Declared as a var
// so tests can substitute an httptest server.
var dblpAPIBase = "https://dblp.org/search/publ/api"

// Client issues publication searches against the DBLP API.
type Client struct {
	HTTP *http.Client

	// BaseURL overrides the DBLP endpoint; empty means the real API.
	BaseURL string
}

// Hit is one raw DBLP record, pre-normalization.
type Hit struct {
	Title   string
	Authors []string
	Year    string
	Venue   string
	URL     string
	DOI     string
	EE      string
}

// Search runs one bounded query against DBLP and returns the raw hits.
// A non-success status or transport failure yields an *UpstreamError; a
// body that does not match the expected envelope yields a *DecodeError.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"h":      {fmt.Sprintf("%d", limit)},
	}
	base := c.BaseURL
	if base == "" {
		base = dblpAPIBase
	}
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var dr dblpResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, &DecodeError{Err: err}
	}

	hits := make([]Hit, 0, len(dr.Result.Hits.Hit))
	for _, h := range dr.Result.Hits.Hit {
		info := h.Info
		hit := Hit{
			Title: strings.TrimSpace(info.Title),
			Year:  info.Year,
			Venue: info.Venue,
			URL:   info.URL,
			DOI:   info.DOI,
			EE:    info.EE,
		}
		for _, a := range info.Authors.Author {
			if name := strings.TrimSpace(a.Text); name != "" {
				hit.Authors = append(hit.Authors, name)
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// DBLP search API JSON structures.
type dblpResponse struct {
	Result struct {
		Hits struct {
			Hit []dblpHit `json:"hit"`
		} `json:"hits"`
	} `json:"result"`
}

type dblpHit struct {
	Info dblpInfo `json:"info"`
}

type dblpInfo struct {
	Title   string      `json:"title"`
	Authors dblpAuthors `json:"authors"`
	Year    string      `json:"year"`
	Venue   string      `json:"venue"`
	URL     string      `json:"url"`
	DOI     string      `json:"doi"`
	EE      string      `json:"ee"`
}

type dblpAuthors struct {
	Author authorList `json:"author"`
}

// authorList absorbs DBLP's two encodings of the author field: a single
// object when a paper has one author, a list otherwise.
type authorList []dblpAuthor

func (a *authorList) UnmarshalJSON(data []byte) error {
	var list []dblpAuthor
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}
	var one dblpAuthor
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*a = authorList{one}
	return nil
}

type dblpAuthor struct {
	Text string `json:"text"`
}

// UnmarshalJSON accepts both the object form {"text": "Name"} and a bare
// string, which older DBLP records still use.
func (a *dblpAuthor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Text = s
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Text = obj.Text
	return nil
}
