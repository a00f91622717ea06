// Package ai abstracts the chat model behind the graph query layer.
// Two adapters exist: openai (any OpenAI-compatible endpoint) and ollama
// (locally hosted models), selected via the AI_ADAPTER environment variable.
package ai

import "context"

// ChatMessage represents a single message in a chat conversation.
//
// Role must be one of:
//   - "user"      → a user-provided message
//   - "assistant" → a message from the AI assistant
type ChatMessage struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// GenerateOptions holds configuration for chat generation requests.
type GenerateOptions struct {
	Model         string   // Model identifier to use for generation
	SystemPrompts []string // System prompts prepended to the request
	Temperature   float64  // Sampling temperature (0.0-2.0)
}

// GenerateOption is a functional option for configuring generation requests.
type GenerateOption func(*GenerateOptions)

// WithModel sets the model to use for generation.
func WithModel(model string) GenerateOption {
	return func(o *GenerateOptions) {
		o.Model = model
	}
}

// WithSystemPrompts prepends system prompts to the request.
func WithSystemPrompts(prompts ...string) GenerateOption {
	return func(o *GenerateOptions) {
		o.SystemPrompts = append(o.SystemPrompts, prompts...)
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temperature
	}
}

// ModelMetrics contains accumulated usage metrics from model operations.
type ModelMetrics struct {
	InputTokens    int     `json:"input_tokens"`
	OutputTokens   int     `json:"output_tokens"`
	TotalTokens    int     `json:"total_tokens"`
	DurationMs     int64   `json:"duration_ms"`
	TokenPerSecond float32 `json:"tokens_per_second"`
}

// ChatClient generates chat completions for the graph query layer.
type ChatClient interface {
	GenerateChat(ctx context.Context, messages []ChatMessage, opts ...GenerateOption) (string, error)

	GetMetrics() ModelMetrics
	ResetMetrics()
}
