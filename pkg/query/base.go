package query

import (
	"context"
	"fmt"

	"fundgraph/internal/util"
	"fundgraph/pkg/ai"
	"fundgraph/pkg/graph"
	"fundgraph/pkg/session"
)

const defaultMaxTries = 2

type queryOptions struct {
	SystemPrompts []string
	Model         string
	Temperature   float64
	MaxTries      int
}

// QueryOption is a functional option for configuring query behavior.
type QueryOption func(*queryOptions)

// WithSystemPrompts returns a QueryOption that appends additional system
// prompts to guide the model's response generation.
func WithSystemPrompts(prompts ...string) QueryOption {
	return func(o *queryOptions) {
		o.SystemPrompts = append(o.SystemPrompts, prompts...)
	}
}

// WithModel returns a QueryOption that specifies which model to use for
// generating responses.
func WithModel(model string) QueryOption {
	return func(o *queryOptions) {
		o.Model = model
	}
}

// WithTemperature returns a QueryOption that sets the sampling temperature.
func WithTemperature(temperature float64) QueryOption {
	return func(o *queryOptions) {
		o.Temperature = temperature
	}
}

// WithMaxTries returns a QueryOption that sets how often a failed model call
// is attempted before giving up.
func WithMaxTries(tries int) QueryOption {
	return func(o *queryOptions) {
		o.MaxTries = tries
	}
}

// BaseQueryClient answers questions about one graph view. It serializes the
// visible edges into knowledge triples at query time, so an active
// neighborhood filter narrows what the model gets to see.
type BaseQueryClient struct {
	aiClient ai.ChatClient
	view     graph.View
	options  queryOptions
}

// NewGraphQueryClient creates a new GraphQueryClient over a graph view. The
// AI client generates the answers, the view supplies the context.
func NewGraphQueryClient(aiC ai.ChatClient, view graph.View, opts []QueryOption) *BaseQueryClient {
	c := BaseQueryClient{
		aiClient: aiC,
		view:     view,
	}
	c.options.MaxTries = defaultMaxTries

	for _, o := range opts {
		o(&c.options)
	}

	return &c
}

// Query answers a question from the triples visible in the client's view.
// Previous exchanges are replayed as alternating user and assistant messages
// so follow-up questions can reference earlier answers. If the view contains
// no edges, a fixed "no data" response is returned without a model call.
func (c *BaseQueryClient) Query(
	ctx context.Context,
	question string,
	history []session.QA,
) (string, error) {
	triples := TriplesFromView(c.view)
	if len(triples) == 0 {
		return NoDataAnswer, nil
	}

	prompt := fmt.Sprintf(QueryPrompt, FormatTriples(triples))
	systemPrompts := []string{prompt}
	systemPrompts = append(systemPrompts, c.options.SystemPrompts...)

	generateOpts := []ai.GenerateOption{
		ai.WithSystemPrompts(systemPrompts...),
		ai.WithTemperature(c.options.Temperature),
	}
	if c.options.Model != "" {
		generateOpts = append(generateOpts, ai.WithModel(c.options.Model))
	}

	msgs := make([]ai.ChatMessage, 0, 2*len(history)+1)
	for _, qa := range history {
		msgs = append(msgs,
			ai.ChatMessage{Message: qa.Question, Role: "user"},
			ai.ChatMessage{Message: qa.Answer, Role: "assistant"},
		)
	}
	msgs = append(msgs, ai.ChatMessage{Message: question, Role: "user"})

	resp, err := util.RetryWithContext(ctx, c.options.MaxTries, func(ctx context.Context) (string, error) {
		return c.aiClient.GenerateChat(ctx, msgs, generateOpts...)
	})
	if err != nil {
		return "", fmt.Errorf("Failed to generate answer from AI:\n%w", err)
	}

	return resp, nil
}
