package graph

import (
	"sort"
	"testing"
)

// chain builds A→B→C→D.
func chain(t *testing.T) *DiGraph {
	t.Helper()
	g := New()
	for _, label := range []string{"A", "B", "C", "D"} {
		g.AddNode(Node{Label: label, Title: label, Group: GroupProject})
	}
	g.AddEdge(Edge{Source: "A", Target: "B", Title: "relates"})
	g.AddEdge(Edge{Source: "B", Target: "C", Title: "relates"})
	g.AddEdge(Edge{Source: "C", Target: "D", Title: "relates"})
	return g
}

func sortedLabels(s FilterSet) []string {
	labels := s.Labels()
	sort.Strings(labels)
	return labels
}

func TestTwoHopClosureChain(t *testing.T) {
	t.Parallel()

	g := chain(t)

	direct := NeighborLabels(g, []string{"B"})
	sort.Strings(direct)
	if want := []string{"A", "C"}; !equalStrings(direct, want) {
		t.Errorf("direct neighbors of B = %v, want %v", direct, want)
	}

	set := TwoHopClosure(g, []string{"B"})
	if want := []string{"A", "B", "C", "D"}; !equalStrings(sortedLabels(set), want) {
		t.Errorf("TwoHopClosure(B) = %v, want %v", sortedLabels(set), want)
	}
}

func TestTwoHopClosureIsolatedSeed(t *testing.T) {
	t.Parallel()

	g := chain(t)
	g.AddNode(Node{Label: "Lonely", Title: "Lonely", Group: GroupPerson})

	set := TwoHopClosure(g, []string{"Lonely"})
	if want := []string{"Lonely"}; !equalStrings(sortedLabels(set), want) {
		t.Errorf("TwoHopClosure(Lonely) = %v, want %v", sortedLabels(set), want)
	}
}

func TestTwoHopClosureBothDirections(t *testing.T) {
	t.Parallel()

	// star: center has in- and out-edges; closure from a leaf crosses it.
	g := New()
	for _, label := range []string{"Center", "In", "Out", "FarIn"} {
		g.AddNode(Node{Label: label, Title: label, Group: GroupProject})
	}
	g.AddEdge(Edge{Source: "In", Target: "Center", Title: "relates"})
	g.AddEdge(Edge{Source: "Center", Target: "Out", Title: "relates"})
	g.AddEdge(Edge{Source: "FarIn", Target: "In", Title: "relates"})

	set := TwoHopClosure(g, []string{"Center"})
	if want := []string{"Center", "FarIn", "In", "Out"}; !equalStrings(sortedLabels(set), want) {
		t.Errorf("TwoHopClosure(Center) = %v, want %v", sortedLabels(set), want)
	}
}

func TestNeighborLabelsUnique(t *testing.T) {
	t.Parallel()

	g := New()
	for _, label := range []string{"P", "Q"} {
		g.AddNode(Node{Label: label, Title: label, Group: GroupProject})
	}
	// parallel edges with distinct titles between the same pair
	g.AddEdge(Edge{Source: "P", Target: "Q", Title: "FELLOW"})
	g.AddEdge(Edge{Source: "P", Target: "Q", Title: "RESEARCHER"})

	if got := NeighborLabels(g, []string{"P"}); !equalStrings(got, []string{"Q"}) {
		t.Errorf("NeighborLabels(P) = %v, want [Q]", got)
	}
}

func TestViewLazyAndReadOnly(t *testing.T) {
	t.Parallel()

	g := chain(t)
	set := TwoHopClosure(g, []string{"A"})
	view := NewView(g, func(label string) bool { return set.Contains(label) })

	if view.HasNode("D") {
		t.Error("view exposes D, which is outside the two-hop closure of A")
	}
	if len(view.Nodes()) != 3 {
		t.Errorf("view has %d nodes, want 3", len(view.Nodes()))
	}
	if len(view.Edges()) != 2 {
		t.Errorf("view has %d edges, want 2", len(view.Edges()))
	}
	// the underlying graph is untouched
	if g.NodeCount() != 4 || g.EdgeCount() != 3 {
		t.Errorf("underlying graph changed: %d nodes %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestViewNilPredicateShowsAll(t *testing.T) {
	t.Parallel()

	g := chain(t)
	view := NewView(g, nil)
	if len(view.Nodes()) != 4 || len(view.Edges()) != 3 {
		t.Errorf("unfiltered view = %d nodes %d edges, want 4 and 3", len(view.Nodes()), len(view.Edges()))
	}
}

func TestMaterializeIsACopy(t *testing.T) {
	t.Parallel()

	g := chain(t)
	g.Node("A").Funding = 100

	sub := NewView(g, nil).Materialize()
	Annotate(sub)

	if g.Node("A").Title != "A" {
		t.Errorf("annotating a materialized copy mutated the source: %q", g.Node("A").Title)
	}
	if sub.Node("A").Title == "A" {
		t.Error("materialized copy was not annotated")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
