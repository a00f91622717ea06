package gtr

// The registry returns deeply nested JSON. Every nested object is modelled as
// a pointer so that absence stays observable; the parser treats a nil pointer
// (or a zero monetary value) as a missing field.

// SearchResult is one raw item from the project search endpoint.
type SearchResult struct {
	ProjectComposition *ProjectComposition `json:"projectComposition"`
	AbstractSnippet    *string             `json:"abstractSnippet"`
}

// ProjectComposition bundles a project with its surrounding organisations and people.
type ProjectComposition struct {
	Project                  *Project           `json:"project"`
	LeadResearchOrganisation *Organisation      `json:"leadResearchOrganisation"`
	PersonRoles              []PersonRole       `json:"personRoles"`
	OrganisationRoles        []OrganisationRole `json:"organisationRoles"`
}

// Project is the funded project itself.
type Project struct {
	ID             string `json:"id"`
	ResourceURL    string `json:"resourceUrl"`
	Title          string `json:"title"`
	GrantReference string `json:"grantReference"`
	GrantCategory  string `json:"grantCategory"`
	Fund           *Fund  `json:"fund"`
}

// Fund carries the monetary award and the funding body.
type Fund struct {
	ValuePounds int64         `json:"valuePounds"`
	Funder      *Organisation `json:"funder"`
	Type        string        `json:"type"`
}

// Organisation is a funder, lead organisation, or participating organisation.
type Organisation struct {
	ID          string `json:"id"`
	ResourceURL string `json:"resourceUrl"`
	Name        string `json:"name"`
}

// PersonRole is a person attached to a project together with their roles.
type PersonRole struct {
	ID          string `json:"id"`
	ResourceURL string `json:"resourceUrl"`
	FirstName   string `json:"firstName"`
	Surname     string `json:"surname"`
	FullName    string `json:"fullName"`
	Roles       []Role `json:"roles"`
}

// Role names a single function a person or organisation has on a project.
type Role struct {
	Name string `json:"name"`
}

// OrganisationRole is an organisation attached to a project with its roles.
type OrganisationRole struct {
	ID          string `json:"id"`
	ResourceURL string `json:"resourceUrl"`
	Name        string `json:"name"`
	Roles       []Role `json:"roles"`
}

// ProjectDetail is the payload of the per-project detail endpoint
// (the projectOverview object). It is carried opaquely on project nodes
// for downstream consumers.
type ProjectDetail struct {
	ProjectComposition *ProjectComposition `json:"projectComposition"`
}

// GrantReference returns the grant reference the detail payload identifies
// itself with, or "" when the nesting is incomplete.
func (d *ProjectDetail) GrantReference() string {
	if d == nil || d.ProjectComposition == nil || d.ProjectComposition.Project == nil {
		return ""
	}
	return d.ProjectComposition.Project.GrantReference
}

// Record is one normalized project funding entry. A record only exists when
// funder, funding value, project title, and lead organisation were all
// present on the raw item.
type Record struct {
	FunderName                   string         `json:"funder_name"`
	FunderLink                   string         `json:"funder_link"`
	ProjectTitle                 string         `json:"project_title"`
	ProjectGrantReference        string         `json:"project_grant_reference"`
	Value                        int64          `json:"value"`
	LeadResearchOrganisation     string         `json:"lead_research_organisation"`
	LeadResearchOrganisationLink string         `json:"lead_research_organisation_link"`
	People                       []PersonRole   `json:"people"`
	ProjectURL                   string         `json:"project_url"`
	Detail                       *ProjectDetail `json:"project_data_lookup,omitempty"`
}
