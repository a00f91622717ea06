package graph

import (
	"reflect"
	"testing"

	"fundgraph/pkg/gtr"
)

func record(funder, project, org string, value int64) gtr.Record {
	return gtr.Record{
		FunderName:               funder,
		ProjectTitle:             project,
		LeadResearchOrganisation: org,
		Value:                    value,
		ProjectURL:               "http://gtr.ukri.org/api/projects?ref=X",
	}
}

func withPerson(r gtr.Record, name string, roles ...string) gtr.Record {
	person := gtr.PersonRole{
		FullName:    name,
		ResourceURL: "http://gtr.ukri.org/api/person/" + name,
	}
	for _, role := range roles {
		person.Roles = append(person.Roles, gtr.Role{Name: role})
	}
	r.People = append(r.People, person)
	return r
}

func TestBuildAccumulation(t *testing.T) {
	t.Parallel()

	records := []gtr.Record{
		record("UKRI", "Project A", "Org One", 100),
		record("UKRI", "Project B", "Org One", 250),
		record("UKRI", "Project A", "Org Two", 50),
	}

	g := Build(records)

	wantFunding := map[string]int64{
		"UKRI":      400,
		"Project A": 150,
		"Project B": 250,
		"Org One":   350,
		"Org Two":   50,
	}
	for label, want := range wantFunding {
		node := g.Node(label)
		if node == nil {
			t.Fatalf("Build() missing node %q", label)
		}
		if node.Funding != want {
			t.Errorf("node %q funding = %d, want %d", label, node.Funding, want)
		}
	}
}

func TestBuildOrderIndependentTotals(t *testing.T) {
	t.Parallel()

	records := []gtr.Record{
		record("UKRI", "Project A", "Org One", 100),
		record("EPSRC", "Project B", "Org One", 40),
		record("UKRI", "Project C", "Org Two", 60),
	}
	reversed := []gtr.Record{records[2], records[1], records[0]}

	forward := Build(records)
	backward := Build(reversed)

	for _, label := range []string{"UKRI", "EPSRC", "Org One", "Org Two"} {
		if forward.Node(label).Funding != backward.Node(label).Funding {
			t.Errorf("node %q funding depends on record order: %d vs %d",
				label, forward.Node(label).Funding, backward.Node(label).Funding)
		}
	}
}

func TestBuildIdempotentNodeCreation(t *testing.T) {
	t.Parallel()

	records := []gtr.Record{
		record("UKRI", "Project A", "Org One", 100),
		record("UKRI", "Project A", "Org One", 100),
	}

	g := Build(records)

	if got := g.NodeCount(); got != 3 {
		t.Errorf("Build() created %d nodes, want 3", got)
	}
	// funder→project and org→project, exactly once each
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("Build() created %d edges, want 2", got)
	}
}

func TestBuildPersonRoleEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		records   []gtr.Record
		person    string
		wantEdges []string
	}{
		{
			name: "identical role across records deduplicated",
			records: []gtr.Record{
				withPerson(record("UKRI", "Project A", "Org One", 10), "Ada Lovelace", "PRINCIPAL_INVESTIGATOR"),
				withPerson(record("EPSRC", "Project A", "Org One", 20), "Ada Lovelace", "PRINCIPAL_INVESTIGATOR"),
			},
			person:    "Ada Lovelace",
			wantEdges: []string{"PRINCIPAL_INVESTIGATOR"},
		},
		{
			name: "distinct roles produce parallel edges",
			records: []gtr.Record{
				withPerson(record("UKRI", "Project A", "Org One", 10), "Ada Lovelace", "PRINCIPAL_INVESTIGATOR", "FELLOW"),
			},
			person:    "Ada Lovelace",
			wantEdges: []string{"PRINCIPAL_INVESTIGATOR", "FELLOW"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := Build(tc.records)

			titles := make([]string, 0)
			for _, edge := range g.OutEdges(tc.person) {
				titles = append(titles, edge.Title)
			}
			if !reflect.DeepEqual(titles, tc.wantEdges) {
				t.Errorf("person edges = %v, want %v", titles, tc.wantEdges)
			}
		})
	}
}

func TestBuildSkipsMalformedPeople(t *testing.T) {
	t.Parallel()

	r := record("UKRI", "Project A", "Org One", 10)
	r.People = []gtr.PersonRole{
		{FullName: "", ResourceURL: "http://x", Roles: []gtr.Role{{Name: "FELLOW"}}},
		{FullName: "No Link", ResourceURL: "", Roles: []gtr.Role{{Name: "FELLOW"}}},
		{FullName: "No Roles", ResourceURL: "http://x"},
		{FullName: "Grace Hopper", ResourceURL: "http://x", Roles: []gtr.Role{{Name: ""}, {Name: "RESEARCHER"}}},
	}

	g := Build([]gtr.Record{r})

	for _, label := range []string{"No Link", "No Roles"} {
		if g.HasNode(label) {
			t.Errorf("Build() created node for malformed person %q", label)
		}
	}
	edges := g.OutEdges("Grace Hopper")
	if len(edges) != 1 || edges[0].Title != "RESEARCHER" {
		t.Errorf("Grace Hopper edges = %v, want single RESEARCHER edge", edges)
	}
}

func TestBuildIncompleteRecordContributesNothing(t *testing.T) {
	t.Parallel()

	records := []gtr.Record{
		record("UKRI", "Project A", "Org One", 100),
		record("", "Project B", "Org Two", 50),  // no funder
		record("EPSRC", "", "Org Three", 50),    // no project title
		record("EPSRC", "Project C", "", 50),    // no lead organisation
	}

	g := Build(records)

	if got := g.NodeCount(); got != 3 {
		t.Errorf("Build() created %d nodes, want 3", got)
	}
	for _, label := range []string{"Project B", "Org Two", "Org Three", "EPSRC"} {
		if g.HasNode(label) {
			t.Errorf("Build() created node %q from an incomplete record", label)
		}
	}
}

func TestBuildEdgeAttributes(t *testing.T) {
	t.Parallel()

	g := Build([]gtr.Record{record("Innovate UK", "Project A", "Org One", 176250001)})

	funderEdges := g.OutEdges("Innovate UK")
	if len(funderEdges) != 1 {
		t.Fatalf("funder has %d edges, want 1", len(funderEdges))
	}
	if funderEdges[0].Title != "£176,250,001.00" {
		t.Errorf("funder edge title = %q, want formatted value", funderEdges[0].Title)
	}
	if funderEdges[0].Value != 176250001 {
		t.Errorf("funder edge value = %d, want 176250001", funderEdges[0].Value)
	}

	orgEdges := g.OutEdges("Org One")
	if len(orgEdges) != 1 || orgEdges[0].Title != "RELATES TO" {
		t.Errorf("organisation edges = %v, want single RELATES TO edge", orgEdges)
	}
}
