package gtr

// ParseProjects maps raw search results to normalized records. Items missing
// any of funder, funding value, project title, or lead research organisation
// are dropped silently; this is a filter, not a validation failure. The
// input is never mutated and output order follows input order.
func ParseProjects(projects []SearchResult) []Record {
	records := make([]Record, 0, len(projects))
	for _, project := range projects {
		composition := project.ProjectComposition
		if composition == nil || composition.Project == nil || composition.LeadResearchOrganisation == nil {
			continue
		}
		fund := composition.Project.Fund
		if fund == nil || fund.Funder == nil || fund.ValuePounds == 0 {
			continue
		}

		records = append(records, Record{
			FunderName:                   fund.Funder.Name,
			FunderLink:                   fund.Funder.ResourceURL,
			ProjectTitle:                 composition.Project.Title,
			ProjectGrantReference:        composition.Project.GrantReference,
			Value:                        fund.ValuePounds,
			LeadResearchOrganisation:     composition.LeadResearchOrganisation.Name,
			LeadResearchOrganisationLink: composition.LeadResearchOrganisation.ResourceURL,
			People:                       composition.PersonRoles,
			ProjectURL:                   composition.Project.ResourceURL,
		})
	}
	return records
}
