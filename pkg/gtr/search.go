package gtr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"strconv"

	"fundgraph/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type searchResponse struct {
	FacetedSearchResultBean *struct {
		Results []SearchResult `json:"results"`
	} `json:"facetedSearchResultBean"`
}

// SearchPage fetches a single page of project search results, sorted by
// award value descending. Pages are 1-based. Any failure (transport error,
// non-200 status, missing results field) resolves to an empty slice.
func (c *Client) SearchPage(ctx context.Context, term string, page, pageSize int) []SearchResult {
	query := url.Values{}
	query.Set("term", term)
	query.Set("page", strconv.Itoa(page))
	query.Set("fetchSize", strconv.Itoa(pageSize))
	query.Set("selectedSortableField", "pro.am")
	query.Set("selectedSortOrder", "DESC")
	query.Set("selectedFacets", "")
	query.Set("fields", "project.abs")

	endpoint := fmt.Sprintf("%s/search/project?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Debug("[GtR] Failed to build search request", "page", page, "err", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("[GtR] Search request failed", "page", page, "err", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("[GtR] Search returned non-200 status", "page", page, "status", resp.StatusCode)
		return nil
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Debug("[GtR] Failed to decode search response", "page", page, "err", err)
		return nil
	}
	if body.FacetedSearchResultBean == nil {
		return nil
	}

	return body.FacetedSearchResultBean.Results
}

// Search issues as many concurrent page requests as needed to cover limit
// results and returns the concatenation of all non-empty pages, truncated to
// limit. Page order is preserved in the output. An empty slice means every
// page failed or the term matched nothing.
func (c *Client) Search(ctx context.Context, term string, limit int) []SearchResult {
	if limit <= 0 {
		return nil
	}

	pageCount := (limit + PageSize - 1) / PageSize
	pages := make([][]SearchResult, pageCount)

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.fanout())
	for i := 0; i < pageCount; i++ {
		idx := i
		eg.Go(func() error {
			pages[idx] = c.SearchPage(gCtx, term, idx+1, PageSize)
			return nil
		})
	}
	// Tasks never return errors; Wait is a pure join barrier.
	_ = eg.Wait()

	results := make([]SearchResult, 0, limit)
	for _, page := range pages {
		results = append(results, page...)
	}
	if len(results) > limit {
		results = results[:limit]
	}

	logger.Debug("[GtR] Search finished", "term", term, "pages", pageCount, "results", len(results))
	return results
}

func (c *Client) fanout() int {
	if c.parallel > 0 {
		return c.parallel
	}
	return runtime.NumCPU()
}
