package gtr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

func searchPayload(count int, prefix string) searchResponse {
	results := make([]SearchResult, count)
	for i := range results {
		results[i] = SearchResult{
			ProjectComposition: &ProjectComposition{
				Project: &Project{
					Title: fmt.Sprintf("%s project %d", prefix, i),
					Fund: &Fund{
						ValuePounds: 1000,
						Funder:      &Organisation{Name: "Test Funder"},
					},
				},
				LeadResearchOrganisation: &Organisation{Name: "Test Org"},
			},
		}
	}
	return searchResponse{
		FacetedSearchResultBean: &struct {
			Results []SearchResult `json:"results"`
		}{Results: results},
	}
}

func TestSearchTruncation(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	pagesSeen := make(map[int]int)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		mu.Lock()
		pagesSeen[page]++
		mu.Unlock()
		json.NewEncoder(w).Encode(searchPayload(PageSize, fmt.Sprintf("page%d", page)))
	}))
	defer server.Close()

	client := NewClient(NewClientParams{BaseURL: server.URL})
	got := client.Search(context.Background(), "manufacturing", 150)

	if len(got) != 150 {
		t.Errorf("Search() returned %d results, want 150", len(got))
	}

	mu.Lock()
	defer mu.Unlock()
	if len(pagesSeen) != 2 {
		t.Errorf("Search() hit %d distinct pages, want 2", len(pagesSeen))
	}
	for page, hits := range pagesSeen {
		if page != 1 && page != 2 {
			t.Errorf("Search() requested unexpected page %d", page)
		}
		if hits != 1 {
			t.Errorf("page %d requested %d times, want 1", page, hits)
		}
	}
}

func TestSearchPageOrderPreserved(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(searchPayload(PageSize, "p"+page))
	}))
	defer server.Close()

	client := NewClient(NewClientParams{BaseURL: server.URL})
	got := client.Search(context.Background(), "energy", 200)

	if len(got) != 200 {
		t.Fatalf("Search() returned %d results, want 200", len(got))
	}
	if title := got[0].ProjectComposition.Project.Title; title != "p1 project 0" {
		t.Errorf("first result = %q, want page 1 first item", title)
	}
	if title := got[100].ProjectComposition.Project.Title; title != "p2 project 0" {
		t.Errorf("result 100 = %q, want page 2 first item", title)
	}
}

func TestSearchFailureTolerance(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(searchPayload(PageSize, fmt.Sprintf("page%d", page)))
	}))
	defer server.Close()

	client := NewClient(NewClientParams{BaseURL: server.URL})
	got := client.Search(context.Background(), "robotics", 500)

	// 5 pages requested, one failed; the other 4 come back unaffected.
	if len(got) != 4*PageSize {
		t.Errorf("Search() returned %d results, want %d", len(got), 4*PageSize)
	}
}

func TestSearchPageSoftFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "missing results field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"somethingElse": {}}`)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"facetedSearchResultBean": [`)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := NewClient(NewClientParams{BaseURL: server.URL})
			if got := client.SearchPage(context.Background(), "term", 1, PageSize); len(got) != 0 {
				t.Errorf("SearchPage() = %d results, want 0", len(got))
			}
		})
	}
}

func TestSearchAllPagesFailed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(NewClientParams{BaseURL: server.URL})
	if got := client.Search(context.Background(), "nothing", 300); len(got) != 0 {
		t.Errorf("Search() = %d results, want 0", len(got))
	}
}
