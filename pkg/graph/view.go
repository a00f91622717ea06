package graph

// View is a lazily evaluated, read-only restriction of a graph. The
// predicate is applied at read time; the underlying graph is never mutated
// through a view. An edge is visible only when both endpoints are.
type View struct {
	graph *DiGraph
	pred  func(label string) bool
}

// NewView creates a view over g. A nil predicate shows everything.
func NewView(g *DiGraph, pred func(label string) bool) View {
	return View{graph: g, pred: pred}
}

func (v View) visible(label string) bool {
	return v.pred == nil || v.pred(label)
}

// HasNode reports whether the node exists and passes the predicate.
func (v View) HasNode(label string) bool {
	return v.graph.HasNode(label) && v.visible(label)
}

// Nodes returns the visible nodes in the underlying insertion order.
func (v View) Nodes() []*Node {
	nodes := make([]*Node, 0, v.graph.NodeCount())
	for _, node := range v.graph.Nodes() {
		if v.visible(node.Label) {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Edges returns the edges whose endpoints are both visible.
func (v View) Edges() []*Edge {
	edges := make([]*Edge, 0, v.graph.EdgeCount())
	for _, edge := range v.graph.Edges() {
		if v.visible(edge.Source) && v.visible(edge.Target) {
			edges = append(edges, edge)
		}
	}
	return edges
}

// Materialize copies the visible subgraph into a fresh graph. The copy owns
// its nodes and edges, so destructive passes like Annotate can run on it
// without touching the source graph.
func (v View) Materialize() *DiGraph {
	sub := New()
	for _, node := range v.Nodes() {
		sub.AddNode(*node)
	}
	for _, edge := range v.Edges() {
		sub.AddEdge(*edge)
	}
	return sub
}
