package gtr

import (
	"context"
	"errors"
)

// ErrNoResults is returned by Collect when the whole pipeline produced
// nothing usable. Callers surface it as a single "request failed" notice
// rather than showing a partial graph.
var ErrNoResults = errors.New("gtr: no results")

// Collect runs the full acquisition pipeline for a search term: paginated
// search, normalization, detail lookup, and augmentation. Individual page or
// detail failures degrade completeness silently; only a completely empty
// outcome is an error.
func (c *Client) Collect(ctx context.Context, term string, limit int) ([]Record, error) {
	projects := c.Search(ctx, term, limit)
	if len(projects) == 0 {
		return nil, ErrNoResults
	}

	records := ParseProjects(projects)
	if len(records) == 0 {
		return nil, ErrNoResults
	}

	details := c.FetchDetails(ctx, records)
	if len(details) == 0 {
		return nil, ErrNoResults
	}

	return Augment(records, details), nil
}
