package query

import (
	"fmt"
	"strings"

	"fundgraph/pkg/graph"
)

// defaultPredicate is used for edges that carry no label of their own.
const defaultPredicate = "relates to"

// Triple is one (subject, predicate, object) statement extracted from a
// graph edge.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// TriplesFromView serializes the visible edges of a view into knowledge
// triples, in edge insertion order. The edge label becomes the predicate;
// unlabeled edges fall back to a generic "relates to".
func TriplesFromView(v graph.View) []Triple {
	edges := v.Edges()
	triples := make([]Triple, 0, len(edges))
	for _, edge := range edges {
		predicate := edge.Label
		if predicate == "" {
			predicate = defaultPredicate
		}
		triples = append(triples, Triple{
			Subject:   edge.Source,
			Predicate: predicate,
			Object:    edge.Target,
		})
	}
	return triples
}

// FormatTriples renders triples one per line for embedding into the query
// prompt.
func FormatTriples(triples []Triple) string {
	var b strings.Builder
	for i, t := range triples {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "(%s, %s, %s)", t.Subject, t.Predicate, t.Object)
	}
	return b.String()
}
