package ollama

import (
	"context"

	"fundgraph/pkg/ai"

	"github.com/ollama/ollama/api"
)

// GenerateChat sends a multi-turn chat conversation to the model and
// returns the assistant's reply as plain text.
func (c *ChatOllamaClient) GenerateChat(
	ctx context.Context,
	messages []ai.ChatMessage,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.GenerateOptions{
		Model:         c.chatModel,
		SystemPrompts: []string{},
		Temperature:   0,
	}
	for _, o := range opts {
		o(&options)
	}

	msgs := make([]api.Message, 0, len(messages)+len(options.SystemPrompts))
	for _, prompt := range options.SystemPrompts {
		msgs = append(msgs, api.Message{Role: "system", Content: prompt})
	}
	for _, message := range messages {
		switch message.Role {
		case "user", "assistant":
			msgs = append(msgs, api.Message{Role: message.Role, Content: message.Message})
		}
	}

	stream := false
	req := &api.ChatRequest{
		Model:    options.Model,
		Messages: msgs,
		Stream:   &stream,
		Options:  map[string]any{"temperature": options.Temperature},
	}

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.reqLock.Release(1)

	var final api.ChatResponse
	if err := c.Client.Chat(ctx, req, func(cr api.ChatResponse) error {
		final.Message.Content += cr.Message.Content
		if cr.Done {
			final.Done = true
			final.Metrics = cr.Metrics
		}
		return nil
	}); err != nil {
		return "", err
	}

	c.modifyMetrics(ai.ModelMetrics{
		InputTokens:  final.Metrics.PromptEvalCount,
		OutputTokens: final.Metrics.EvalCount,
		TotalTokens:  final.Metrics.PromptEvalCount + final.Metrics.EvalCount,
		DurationMs:   final.Metrics.TotalDuration.Milliseconds(),
	})

	return final.Message.Content, nil
}
