package graph

import "sort"

// GroupEntry is one node of a group, annotated with its successor count.
// Selection UIs list entries per group, most-connected first.
type GroupEntry struct {
	Label     string `json:"label"`
	Neighbors int    `json:"neighbors"`
}

// GroupIndex maps every group to its member nodes, sorted by neighbor count
// descending and label ascending within ties. Nodes without a group are
// excluded.
func GroupIndex(g *DiGraph) map[string][]GroupEntry {
	index := make(map[string][]GroupEntry)
	for _, node := range g.Nodes() {
		if node.Group == "" {
			continue
		}
		index[node.Group] = append(index[node.Group], GroupEntry{
			Label:     node.Label,
			Neighbors: len(g.Successors(node.Label)),
		})
	}

	for _, entries := range index {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Neighbors != entries[j].Neighbors {
				return entries[i].Neighbors > entries[j].Neighbors
			}
			return entries[i].Label < entries[j].Label
		})
	}
	return index
}
