package openai

import (
	"sync"

	"fundgraph/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ChatOpenAIClient implements ai.ChatClient against any OpenAI-compatible
// chat completion endpoint.
type ChatOpenAIClient struct {
	chatModel string
	chatURL   string
	chatKey   string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	Client *openai.Client
}

// NewChatOpenAIClientParams configures a ChatOpenAIClient. An empty BaseURL
// targets the public OpenAI API.
type NewChatOpenAIClientParams struct {
	Model   string
	BaseURL string
	APIKey  string
}

// NewChatOpenAIClient creates a chat client for an OpenAI-compatible endpoint.
func NewChatOpenAIClient(params NewChatOpenAIClientParams) *ChatOpenAIClient {
	options := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
	}
	if params.BaseURL != "" {
		options = append(options, option.WithBaseURL(params.BaseURL))
	}
	client := openai.NewClient(options...)

	return &ChatOpenAIClient{
		chatModel: params.Model,
		chatURL:   params.BaseURL,
		chatKey:   params.APIKey,

		metricsLock: sync.Mutex{},

		Client: &client,
	}
}
