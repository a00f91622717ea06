// Package gtr is a read-only client for the UKRI Gateway to Research
// registry. It covers the paginated project search, record normalization,
// and per-project detail lookup that feed graph construction.
//
// Every network call is a single attempt with a fixed deadline. Failures are
// soft: a failed page or detail lookup resolves to an empty result at that
// granularity and never aborts a whole fetch.
package gtr

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the public registry API root.
	DefaultBaseURL = "https://gtr.ukri.org/api"

	// PageSize is the fixed page size used by the paginated search.
	PageSize = 100

	requestTimeout = 10 * time.Second
)

// Client talks to the registry. The zero value is not usable; create one
// with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	parallel   int
}

// NewClientParams configures a Client. Zero values fall back to the public
// registry endpoint, a client with the standard request timeout, and a
// fan-out width equal to the number of CPUs.
type NewClientParams struct {
	BaseURL    string
	HTTPClient *http.Client
	Parallel   int
}

// NewClient creates a registry client.
func NewClient(params NewClientParams) *Client {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		parallel:   params.Parallel,
	}
}
