package catalog

// User roles accepted at registration.
const (
	RoleAdmin     = "Admin"
	RoleAttorney  = "Attorney"
	RoleParalegal = "Paralegal"
	RoleViewer    = "Viewer"
)

// Roles lists every valid user role.
var Roles = []string{RoleAdmin, RoleAttorney, RoleParalegal, RoleViewer}

// Case status values the dashboard groups by.
const (
	CaseOpen       = "Open"
	CaseInProgress = "In Progress"
	CasePending    = "Pending"
	CaseClosed     = "Closed"
	CaseSettled    = "Settled"
)

// Vocabulary holds the fixed option lists offered by the client forms. Values are
// advisory; the store accepts any string.
type Vocabulary struct {
	UserRoles          []string `json:"userRoles"`
	CustomerStatus     []string `json:"customerStatus"`
	IndustryTypes      []string `json:"industryTypes"`
	CaseStatus         []string `json:"caseStatus"`
	CaseTypes          []string `json:"caseTypes"`
	EngagementTypes    []string `json:"engagementTypes"`
	EngagementChannels []string `json:"engagementChannels"`
	EngagementOutcomes []string `json:"engagementOutcomes"`
	PageSizeOptions    []int    `json:"pageSizeOptions"`
}

// Vocabularies returns the option lists.
func Vocabularies() Vocabulary {
	return Vocabulary{
		UserRoles:      append([]string(nil), Roles...),
		CustomerStatus: []string{"Active", "Inactive", "Prospective", "Former"},
		IndustryTypes: []string{
			"Technology", "Healthcare", "Finance", "Manufacturing", "Retail",
			"Real Estate", "Education", "Construction", "Hospitality",
			"Transportation", "Energy", "Telecommunications",
			"Professional Services", "Government", "Non-Profit", "Other",
		},
		CaseStatus: []string{CaseOpen, CaseInProgress, CasePending, CaseClosed, CaseSettled},
		CaseTypes: []string{
			"Litigation", "Corporate", "Real Estate", "Intellectual Property",
			"Employment", "Family Law", "Criminal Defense", "Immigration",
			"Tax Law", "Environmental", "Bankruptcy", "Personal Injury",
			"Contract", "Mergers & Acquisitions", "Other",
		},
		EngagementTypes: []string{
			"Consultation", "Meeting", "Phone Call", "Email", "Court Appearance",
			"Mediation", "Negotiation", "Document Review", "Client Interview",
			"Follow-up",
		},
		EngagementChannels: []string{
			"In-Person", "Phone", "Email", "Video Conference", "Letter",
			"Text Message", "Court", "Office Visit",
		},
		EngagementOutcomes: []string{"Resolved", "Pending", "Follow-up Required", "No Action"},
		PageSizeOptions:    []int{10, 25, 50, 100},
	}
}

// IsRole reports whether role is one of Roles.
func IsRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
