package query

import (
	"context"

	"fundgraph/pkg/session"
)

// GraphQueryClient defines the interface for asking natural-language
// questions against a funding graph. The graph itself is the only knowledge
// source: its edges are serialized into triples and handed to the model as
// context together with the session's chat history.
type GraphQueryClient interface {
	Query(
		ctx context.Context,
		question string,
		history []session.QA,
	) (string, error)
}
