package gtr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"fundgraph/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type detailResponse struct {
	ProjectOverview *ProjectDetail `json:"projectOverview"`
}

// ProjectDetail fetches the detail payload for one grant reference.
// Failures resolve to nil under the same soft-fail contract as SearchPage.
func (c *Client) ProjectDetail(ctx context.Context, grantReference string) *ProjectDetail {
	query := url.Values{}
	query.Set("ref", grantReference)

	endpoint := fmt.Sprintf("%s/projects?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Debug("[GtR] Failed to build detail request", "ref", grantReference, "err", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("[GtR] Detail request failed", "ref", grantReference, "err", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("[GtR] Detail returned non-200 status", "ref", grantReference, "status", resp.StatusCode)
		return nil
	}

	var body detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Debug("[GtR] Failed to decode detail response", "ref", grantReference, "err", err)
		return nil
	}

	return body.ProjectOverview
}

// FetchDetails looks up detail payloads for the distinct non-empty grant
// references of the given records, concurrently. The returned map is keyed by
// the grant reference each payload identifies itself with; failed or
// incomplete lookups are simply absent.
func (c *Client) FetchDetails(ctx context.Context, records []Record) map[string]*ProjectDetail {
	seen := make(map[string]struct{}, len(records))
	refs := make([]string, 0, len(records))
	for _, record := range records {
		ref := record.ProjectGrantReference
		if ref == "" {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	details := make([]*ProjectDetail, len(refs))

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.fanout())
	for i, ref := range refs {
		idx, r := i, ref
		eg.Go(func() error {
			details[idx] = c.ProjectDetail(gCtx, r)
			return nil
		})
	}
	_ = eg.Wait()

	lookup := make(map[string]*ProjectDetail, len(refs))
	for _, detail := range details {
		if ref := detail.GrantReference(); ref != "" {
			lookup[ref] = detail
		}
	}

	logger.Debug("[GtR] Detail lookup finished", "requested", len(refs), "resolved", len(lookup))
	return lookup
}

// Augment returns a copy of records with detail payloads attached where the
// lookup has one. Callers treat a nil Detail as "no augmentation available".
func Augment(records []Record, details map[string]*ProjectDetail) []Record {
	augmented := make([]Record, len(records))
	for i, record := range records {
		record.Detail = details[record.ProjectGrantReference]
		augmented[i] = record
	}
	return augmented
}
