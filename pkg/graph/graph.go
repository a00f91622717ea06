// Package graph assembles normalized funding records into a directed,
// labeled entity graph of funders, projects, organisations, and people,
// and provides funding-weighted annotation and neighborhood filtering
// over it.
//
// Node identity is the entity display string. Two distinct entities sharing
// a display string collapse into one node; this ambiguity is accepted by
// design (see DESIGN.md).
package graph

// Node groups. The group determines base size and whether the node takes
// part in funding-share annotation.
const (
	GroupFunder           = "funder_name"
	GroupProject          = "project_title"
	GroupLeadOrganisation = "lead_research_organisation"
	GroupOrganisation     = "organisation"
	GroupPerson           = "person_name"
)

// Base visual weights per group, before annotation rescales them.
const (
	SizeFunder           int64 = 100
	SizeLeadOrganisation int64 = 50
	SizeOrganisation     int64 = 50
	SizeProject          int64 = 25
	SizePerson           int64 = 10
)

// Node is a graph node. Funding is an accumulator: it sums the award values
// of every record touching this entity during a build pass, and zero means
// the node was never funded.
type Node struct {
	Label   string `json:"label"`
	Title   string `json:"title"`
	Group   string `json:"group"`
	Size    int64  `json:"size"`
	Funding int64  `json:"funding,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

// Edge is a directed edge. Title is the relation descriptor (a role name,
// "RELATES TO", or a formatted award value); Label is the display variant
// shown on rendered edges and may be empty. Value carries the raw monetary
// amount on funder→project edges.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Title  string `json:"title"`
	Label  string `json:"label,omitempty"`
	Value  int64  `json:"value,omitempty"`
}

// DiGraph is a directed, labeled graph keyed by node label. Parallel edges
// between the same ordered pair are permitted when their titles differ;
// an exact (source, target, title) duplicate is never stored twice.
//
// A DiGraph is not safe for concurrent mutation; construction is
// single-writer by contract.
type DiGraph struct {
	nodes map[string]*Node
	order []string
	out   map[string][]*Edge
	in    map[string][]*Edge
	edges int
}

// New creates an empty graph.
func New() *DiGraph {
	return &DiGraph{
		nodes: make(map[string]*Node),
		out:   make(map[string][]*Edge),
		in:    make(map[string][]*Edge),
	}
}

// HasNode reports whether a node with the given label exists.
func (g *DiGraph) HasNode(label string) bool {
	_, ok := g.nodes[label]
	return ok
}

// Node returns the node with the given label, or nil.
func (g *DiGraph) Node(label string) *Node {
	return g.nodes[label]
}

// Nodes returns all nodes in insertion order.
func (g *DiGraph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, label := range g.order {
		nodes = append(nodes, g.nodes[label])
	}
	return nodes
}

// NodeCount returns the number of nodes.
func (g *DiGraph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *DiGraph) EdgeCount() int {
	return g.edges
}

// AddNode inserts a node. Adding a label that already exists is a no-op;
// entities are created once and only accumulate attributes afterwards.
func (g *DiGraph) AddNode(node Node) {
	if _, ok := g.nodes[node.Label]; ok {
		return
	}
	n := node
	g.nodes[node.Label] = &n
	g.order = append(g.order, node.Label)
}

// AddEdge inserts a directed edge. An exact (source, target, title)
// duplicate is a no-op; the same pair with a different title adds a
// parallel edge.
func (g *DiGraph) AddEdge(edge Edge) {
	if g.HasEdgeTitled(edge.Source, edge.Target, edge.Title) {
		return
	}
	e := edge
	g.out[edge.Source] = append(g.out[edge.Source], &e)
	g.in[edge.Target] = append(g.in[edge.Target], &e)
	g.edges++
}

// HasEdge reports whether any edge exists from source to target.
func (g *DiGraph) HasEdge(source, target string) bool {
	for _, edge := range g.out[source] {
		if edge.Target == target {
			return true
		}
	}
	return false
}

// HasEdgeTitled reports whether an edge with the exact title exists from
// source to target.
func (g *DiGraph) HasEdgeTitled(source, target, title string) bool {
	for _, edge := range g.out[source] {
		if edge.Target == target && edge.Title == title {
			return true
		}
	}
	return false
}

// Edges returns all edges, grouped by source node in insertion order.
func (g *DiGraph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.edges)
	for _, label := range g.order {
		edges = append(edges, g.out[label]...)
	}
	return edges
}

// OutEdges returns the edges leaving the given node.
func (g *DiGraph) OutEdges(label string) []*Edge {
	return g.out[label]
}

// Successors returns the unique labels reachable by one outgoing edge,
// in edge insertion order.
func (g *DiGraph) Successors(label string) []string {
	return uniqueEndpoints(g.out[label], func(e *Edge) string { return e.Target })
}

// Predecessors returns the unique labels reaching this node by one edge,
// in edge insertion order.
func (g *DiGraph) Predecessors(label string) []string {
	return uniqueEndpoints(g.in[label], func(e *Edge) string { return e.Source })
}

// AddFunding adds amount to the node's funding accumulator. Unknown labels
// are ignored.
func (g *DiGraph) AddFunding(label string, amount int64) {
	node, ok := g.nodes[label]
	if !ok {
		return
	}
	node.Funding += amount
}

func uniqueEndpoints(edges []*Edge, endpoint func(*Edge) string) []string {
	seen := make(map[string]struct{}, len(edges))
	labels := make([]string, 0, len(edges))
	for _, edge := range edges {
		label := endpoint(edge)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}
