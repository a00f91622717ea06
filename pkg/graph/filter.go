package graph

// FilterSet is a set of node labels restricting a graph view.
type FilterSet map[string]struct{}

// Contains reports membership.
func (s FilterSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Labels returns the member labels in unspecified order.
func (s FilterSet) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	return labels
}

// NeighborLabels returns the unique union of successors and predecessors of
// every given label, successors first, first-occurrence order.
func NeighborLabels(g *DiGraph, labels []string) []string {
	seen := make(map[string]struct{})
	neighbors := make([]string, 0)
	appendUnique := func(candidates []string) {
		for _, label := range candidates {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			neighbors = append(neighbors, label)
		}
	}
	for _, label := range labels {
		appendUnique(g.Successors(label))
	}
	for _, label := range labels {
		appendUnique(g.Predecessors(label))
	}
	return neighbors
}

// TwoHopClosure computes the set of nodes within two edge traversals, in
// either direction, of the seed labels: the seeds themselves, their direct
// neighbors, and the neighbors of those neighbors. A seed with no edges
// yields a set containing only itself.
func TwoHopClosure(g *DiGraph, seeds []string) FilterSet {
	direct := NeighborLabels(g, seeds)
	extended := NeighborLabels(g, direct)

	set := make(FilterSet, len(seeds)+len(direct)+len(extended))
	for _, group := range [][]string{seeds, direct, extended} {
		for _, label := range group {
			set[label] = struct{}{}
		}
	}
	return set
}
