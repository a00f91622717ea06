package graph

import "fmt"

// SizeScaleFactor converts a funding percentage into a node size.
const SizeScaleFactor int64 = 10

// annotatedGroups are the groups whose members are rescaled by their share
// of the group's total funding.
var annotatedGroups = []string{GroupLeadOrganisation, GroupFunder}

// TotalFunding sums the funding of every funded node in the given group.
// Nodes with zero funding do not contribute.
func TotalFunding(g *DiGraph, group string) int64 {
	var total int64
	for _, node := range g.Nodes() {
		if node.Funding != 0 && node.Group == group {
			total += node.Funding
		}
	}
	return total
}

// Annotate rewrites node titles and sizes with funding information: every
// funded node gets its total appended to the title, and nodes of the
// annotated groups additionally get a ceiling percentage share of the group
// total, with size rescaled to SizeScaleFactor times that percentage. The
// ceiling guarantees a funded node never displays as 0 %.
//
// Annotate is a one-shot pass: running it twice appends twice. Callers run
// it on a materialized subgraph copy, never on a stored graph.
func Annotate(g *DiGraph) {
	totals := make(map[string]int64, len(annotatedGroups))
	for _, group := range annotatedGroups {
		totals[group] = TotalFunding(g, group)
	}

	for _, node := range g.Nodes() {
		if node.Funding == 0 || node.Group == "" || node.Title == "" {
			continue
		}

		node.Title = fmt.Sprintf("%s | %s", node.Title, FormatFunding(node.Funding))

		total := totals[node.Group]
		if total == 0 {
			continue
		}
		percentage := ceilShare(node.Funding, total)
		node.Size = SizeScaleFactor * percentage
		node.Title = fmt.Sprintf("%s |  %d %%", node.Title, percentage)
	}
}

// ceilShare computes ceil(100 * funding / total) in integer arithmetic.
func ceilShare(funding, total int64) int64 {
	return (100*funding + total - 1) / total
}
