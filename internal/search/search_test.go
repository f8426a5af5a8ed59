// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) *Searcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithClient(testRegistry(t), &Client{HTTP: srv.Client(), BaseURL: srv.URL})
}

func serveBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}
}

func TestSearchMatchedConference(t *testing.T) {
	body := envelope(`{"title":"Deep Attack","authors":{"author":{"text":"Alice"}},"year":"2024","venue":"IEEE Symposium on Security and Privacy (SP)","url":"https://dblp.org/rec/x","ee":"https://doi.org/10.9/x"}`)
	s := newTestSearcher(t, serveBody(body))

	papers, err := s.Search(context.Background(), Request{
		Conferences: []string{"sp"},
		YearFrom:    2024,
		YearTo:      2024,
	})
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}

	p := papers[0]
	if p.Conference != "S&P" {
		t.Errorf("Conference = %q, want S&P", p.Conference)
	}
	if p.Tier != "top" {
		t.Errorf("Tier = %q, want top", p.Tier)
	}
	if p.Year != 2024 {
		t.Errorf("Year = %d, want 2024", p.Year)
	}
	// Electronic edition outranks the generic record URL.
	if p.Link != "https://doi.org/10.9/x" {
		t.Errorf("Link = %q, want the ee link", p.Link)
	}
	if p.Website != "https://www.ieee-security.org/TC/SP2024/" {
		t.Errorf("Website = %q, want the SP 2024 site", p.Website)
	}
}

func TestSearchUnmatchedVenueFallsBack(t *testing.T) {
	body := envelope(`{"title":"Workshop Paper","authors":{"author":{"text":"Bob"}},"year":"2023","venue":"Proceedings of WORKSHOP-XYZ 2023","url":"https://dblp.org/rec/y"}`)
	s := newTestSearcher(t, serveBody(body))

	papers, err := s.Search(context.Background(), Request{Tier: "all"})
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}

	p := papers[0]
	if p.Conference != "Proceedings of WORKSHOP-XYZ 2023" {
		t.Errorf("Conference = %q, want the raw venue text", p.Conference)
	}
	if p.FullName != "Proceedings of WORKSHOP-XYZ 2023" {
		t.Errorf("FullName = %q, want the raw venue text", p.FullName)
	}
	if p.Tier != "second" {
		t.Errorf("Tier = %q, want second", p.Tier)
	}
	if p.Link != "https://dblp.org/rec/y" {
		t.Errorf("Link = %q, want the record URL", p.Link)
	}
	if p.Website != "" {
		t.Errorf("Website = %q, want empty for unmatched venue", p.Website)
	}
}

// The allow-list drops hits matched to some other registered conference,
// but never drops unmatched hits.
func TestSearchAllowList(t *testing.T) {
	body := envelope(
		`{"title":"CCS Paper","authors":{"author":{"text":"A"}},"year":"2024","venue":"CCS"}`,
		`{"title":"Workshop Paper","authors":{"author":{"text":"B"}},"year":"2024","venue":"Proceedings of WORKSHOP-XYZ 2023"}`,
	)
	s := newTestSearcher(t, serveBody(body))

	papers, err := s.Search(context.Background(), Request{Conferences: []string{"sp"}})
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}
	if papers[0].Title != "Workshop Paper" {
		t.Errorf("kept %q, want the unmatched workshop paper", papers[0].Title)
	}
}

func TestSearchYearFilters(t *testing.T) {
	body := envelope(
		`{"title":"Too Old","authors":{"author":{"text":"A"}},"year":"2019","venue":"CCS"}`,
		`{"title":"In Range","authors":{"author":{"text":"B"}},"year":"2024","venue":"CCS"}`,
		`{"title":"No Year","authors":{"author":{"text":"C"}},"year":"forthcoming","venue":"CCS"}`,
	)
	s := newTestSearcher(t, serveBody(body))

	papers, err := s.Search(context.Background(), Request{YearFrom: 2020, YearTo: 2025})
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}
	if papers[0].Title != "In Range" {
		t.Errorf("kept %q, want the 2024 paper", papers[0].Title)
	}
}

func TestSearchPreservesUpstreamOrder(t *testing.T) {
	body := envelope(
		`{"title":"First","authors":{"author":{"text":"A"}},"year":"2024","venue":"CCS"}`,
		`{"title":"Second","authors":{"author":{"text":"B"}},"year":"2023","venue":"SP"}`,
		`{"title":"Third","authors":{"author":{"text":"C"}},"year":"2022","venue":"NDSS"}`,
	)
	s := newTestSearcher(t, serveBody(body))

	papers, err := s.Search(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	var titles []string
	for _, p := range papers {
		titles = append(titles, p.Title)
	}
	if !reflect.DeepEqual(titles, []string{"First", "Second", "Third"}) {
		t.Errorf("titles = %v, upstream order not preserved", titles)
	}
}

func TestSearchLimitClamping(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{"default when unset", 0, "50"},
		{"clamped to maximum", 500, "100"},
		{"passed through", 30, "30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query().Get("h")
				fmt.Fprint(w, envelope())
			})
			if _, err := s.Search(context.Background(), Request{Limit: tt.limit}); err != nil {
				t.Fatalf("Search() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("h = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchIdempotent(t *testing.T) {
	body := envelope(
		`{"title":"Stable","authors":{"author":{"text":"A"}},"year":"2024","venue":"CCS","doi":"10.1/s"}`,
	)
	s := newTestSearcher(t, serveBody(body))

	req := Request{Keyword: "stable", YearFrom: 2020, YearTo: 2025}
	first, err := s.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("first Search() failed: %v", err)
	}
	second, err := s.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("second Search() failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated search differs: %+v vs %+v", first, second)
	}
}

func TestSearchByConferenceUnknownKey(t *testing.T) {
	calls := 0
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, envelope())
	})

	_, err := s.SearchByConference(context.Background(), "doesnotexist", 2024)

	var uce *UnknownConferenceError
	if !errors.As(err, &uce) {
		t.Fatalf("err = %v, want *UnknownConferenceError", err)
	}
	if uce.Key != "doesnotexist" {
		t.Errorf("Key = %q, want doesnotexist", uce.Key)
	}
	if calls != 0 {
		t.Errorf("upstream called %d times, want 0", calls)
	}
}

func TestSearchByConferenceScopesQuery(t *testing.T) {
	var query, limit string
	body := envelope(
		`{"title":"NDSS Paper","authors":{"author":{"text":"A"}},"year":"2024","venue":"NDSS"}`,
		`{"title":"Stray Year","authors":{"author":{"text":"B"}},"year":"2023","venue":"NDSS"}`,
	)
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		limit = r.URL.Query().Get("h")
		fmt.Fprint(w, body)
	})

	papers, err := s.SearchByConference(context.Background(), "NDSS", 2024)
	if err != nil {
		t.Fatalf("SearchByConference() failed: %v", err)
	}

	if query != "venue:NDSS" {
		t.Errorf("q = %q, want venue:NDSS", query)
	}
	if limit != "100" {
		t.Errorf("h = %q, want the wide limit 100", limit)
	}
	if len(papers) != 1 || papers[0].Title != "NDSS Paper" {
		t.Errorf("papers = %+v, want only the 2024 hit", papers)
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusInternalServerError)
	})

	_, err := s.Search(context.Background(), Request{Keyword: "x"})

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
}
