package ollama

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"fundgraph/pkg/ai"

	"github.com/ollama/ollama/api"
	"golang.org/x/sync/semaphore"
)

// ChatOllamaClient implements ai.ChatClient against a locally hosted
// Ollama instance. Concurrent requests are capped by a weighted semaphore
// so a small local model is not overwhelmed.
type ChatOllamaClient struct {
	chatModel string

	reqLock *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	baseURL    *url.URL
	httpClient *http.Client

	Client *api.Client
}

// NewChatOllamaClientParams configures a ChatOllamaClient.
type NewChatOllamaClientParams struct {
	Model   string
	BaseURL string
	APIKey  string

	MaxConcurrentRequests int64
}

type headerTransport struct {
	headers map[string]string
	rt      http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so original request isn't modified
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(r)
}

// NewChatOllamaClient creates a chat client for an Ollama endpoint.
func NewChatOllamaClient(params NewChatOllamaClientParams) (*ChatOllamaClient, error) {
	u, err := url.Parse(params.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base URL: %w", err)
	}

	httpClient := http.DefaultClient
	if params.APIKey != "" {
		httpClient = &http.Client{
			Transport: &headerTransport{
				headers: map[string]string{
					"Authorization": "Bearer " + params.APIKey,
				},
				rt: http.DefaultTransport,
			},
		}
	}

	maxConcurrent := params.MaxConcurrentRequests
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &ChatOllamaClient{
		chatModel: params.Model,

		reqLock: semaphore.NewWeighted(maxConcurrent),

		metricsLock: sync.Mutex{},

		baseURL:    u,
		httpClient: httpClient,

		Client: api.NewClient(u, httpClient),
	}, nil
}
