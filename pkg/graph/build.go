package graph

import (
	"fundgraph/pkg/gtr"
	"fundgraph/pkg/logger"
)

// Build folds normalized records into a new graph. The fold is strictly
// sequential and single-writer: node and edge existence checks and funding
// accumulation are not safe under concurrent writers, and record order must
// not affect accumulated totals.
//
// Records missing any of funder name, project title, or lead organisation
// contribute nothing at all; partial structure for such records (including
// the lead-organisation attachment) is deliberately not created.
func Build(records []gtr.Record) *DiGraph {
	g := New()

	for _, row := range records {
		if row.FunderName == "" || row.ProjectTitle == "" || row.LeadResearchOrganisation == "" {
			continue
		}

		if !g.HasNode(row.FunderName) {
			g.AddNode(Node{
				Label: row.FunderName,
				Title: row.FunderName,
				Group: GroupFunder,
				Size:  SizeFunder,
			})
		}
		if !g.HasNode(row.ProjectTitle) {
			g.AddNode(Node{
				Label:  row.ProjectTitle,
				Title:  LinkHTML(row.ProjectURL, row.ProjectTitle),
				Group:  GroupProject,
				Size:   SizeProject,
				Detail: row.Detail,
			})
		}
		if !g.HasEdge(row.FunderName, row.ProjectTitle) {
			value := FormatValue(row.Value)
			g.AddEdge(Edge{
				Source: row.FunderName,
				Target: row.ProjectTitle,
				Title:  value,
				Label:  value,
				Value:  row.Value,
			})
		}

		if !g.HasNode(row.LeadResearchOrganisation) {
			g.AddNode(Node{
				Label: row.LeadResearchOrganisation,
				Title: LinkHTML(row.LeadResearchOrganisationLink, row.LeadResearchOrganisation),
				Group: GroupLeadOrganisation,
				Size:  SizeLeadOrganisation,
			})
		}
		if !g.HasEdge(row.LeadResearchOrganisation, row.ProjectTitle) {
			g.AddEdge(Edge{
				Source: row.LeadResearchOrganisation,
				Target: row.ProjectTitle,
				Title:  "RELATES TO",
			})
		}

		g.AddFunding(row.FunderName, row.Value)
		g.AddFunding(row.ProjectTitle, row.Value)
		g.AddFunding(row.LeadResearchOrganisation, row.Value)

		addPeople(g, row)
	}

	logger.Debug("[Graph] Build finished", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g
}

// addPeople links each well-formed person of a record to its project, one
// edge per distinct role. Malformed person or role entries are skipped
// individually; they never abort the record.
func addPeople(g *DiGraph, row gtr.Record) {
	for _, person := range row.People {
		if person.FullName == "" || person.ResourceURL == "" || len(person.Roles) == 0 {
			continue
		}

		if !g.HasNode(person.FullName) {
			g.AddNode(Node{
				Label: person.FullName,
				Title: LinkHTML(person.ResourceURL, person.FullName),
				Group: GroupPerson,
				Size:  SizePerson,
			})
		}

		for _, role := range person.Roles {
			if role.Name == "" {
				continue
			}
			g.AddEdge(Edge{
				Source: person.FullName,
				Target: row.ProjectTitle,
				Title:  role.Name,
				Label:  role.Name,
			})
		}
	}
}
