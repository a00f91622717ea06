package middleware

import (
	"github.com/labstack/echo/v4"

	"fundgraph/internal/store"
	"fundgraph/internal/util"
	"fundgraph/pkg/ai"
	oai "fundgraph/pkg/ai/ollama"
	gai "fundgraph/pkg/ai/openai"
	"fundgraph/pkg/gtr"
	"fundgraph/pkg/logger"
)

// App bundles the shared collaborators handlers reach through the request
// context: the graph registry, the funding data client and the chat model.
type App struct {
	Registry *store.Registry
	Gtr      *gtr.Client
	AiClient ai.ChatClient
}

type AppContext struct {
	echo.Context
	App *App
}

// NewAIClient builds the chat client selected by the AI_ADAPTER environment
// variable. The default is the OpenAI-compatible adapter.
func NewAIClient() ai.ChatClient {
	adapter := util.GetEnv("AI_ADAPTER")

	switch adapter {
	case "ollama":
		client, err := oai.NewChatOllamaClient(oai.NewChatOllamaClientParams{
			Model:   util.GetEnv("AI_CHAT_MODEL"),
			BaseURL: util.GetEnv("AI_CHAT_URL"),
			APIKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewChatOpenAIClient(gai.NewChatOpenAIClientParams{
			Model:   util.GetEnv("AI_CHAT_MODEL"),
			BaseURL: util.GetEnv("AI_CHAT_URL"),
			APIKey:  util.GetEnv("AI_CHAT_KEY"),
		})
	}
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
