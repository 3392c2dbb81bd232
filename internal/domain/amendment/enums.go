package amendment

// Type classifies what kind of change an amendment asks for.
type Type string

const (
	TypeBug           Type = "Bug"
	TypeFault         Type = "Fault"
	TypeEnhancement   Type = "Enhancement"
	TypeFeature       Type = "Feature"
	TypeSuggestion    Type = "Suggestion"
	TypeMaintenance   Type = "Maintenance"
	TypeDocumentation Type = "Documentation"
)

// Status is the workflow state of an amendment.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusTesting    Status = "Testing"
	StatusCompleted  Status = "Completed"
	StatusDeployed   Status = "Deployed"
)

// DevelopmentStatus tracks the engineering sub-state.
type DevelopmentStatus string

const (
	DevNotStarted    DevelopmentStatus = "Not Started"
	DevInDevelopment DevelopmentStatus = "In Development"
	DevCodeReview    DevelopmentStatus = "Code Review"
	DevReadyForQA    DevelopmentStatus = "Ready for QA"
)

// Priority orders amendments for triage.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// LinkType is the directed relationship between two amendments.
type LinkType string

const (
	LinkRelated   LinkType = "Related"
	LinkDuplicate LinkType = "Duplicate"
	LinkBlocks    LinkType = "Blocks"
	LinkBlockedBy LinkType = "Blocked By"
)

// DocumentType classifies an uploaded attachment.
type DocumentType string

const (
	DocTestPlan      DocumentType = "Test Plan"
	DocScreenshot    DocumentType = "Screenshot"
	DocSpecification DocumentType = "Specification"
	DocOther         DocumentType = "Other"
)

func Types() []Type {
	return []Type{
		TypeBug, TypeFault, TypeEnhancement, TypeFeature,
		TypeSuggestion, TypeMaintenance, TypeDocumentation,
	}
}

func Statuses() []Status {
	return []Status{
		StatusOpen, StatusInProgress, StatusTesting,
		StatusCompleted, StatusDeployed,
	}
}

func DevelopmentStatuses() []DevelopmentStatus {
	return []DevelopmentStatus{
		DevNotStarted, DevInDevelopment, DevCodeReview, DevReadyForQA,
	}
}

func Priorities() []Priority {
	return []Priority{
		PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical,
	}
}

func LinkTypes() []LinkType {
	return []LinkType{LinkRelated, LinkDuplicate, LinkBlocks, LinkBlockedBy}
}

func DocumentTypes() []DocumentType {
	return []DocumentType{DocTestPlan, DocScreenshot, DocSpecification, DocOther}
}

func (t Type) Valid() bool {
	switch t {
	case TypeBug, TypeFault, TypeEnhancement, TypeFeature,
		TypeSuggestion, TypeMaintenance, TypeDocumentation:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusTesting, StatusCompleted, StatusDeployed:
		return true
	}
	return false
}

func (d DevelopmentStatus) Valid() bool {
	switch d {
	case DevNotStarted, DevInDevelopment, DevCodeReview, DevReadyForQA:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (l LinkType) Valid() bool {
	switch l {
	case LinkRelated, LinkDuplicate, LinkBlocks, LinkBlockedBy:
		return true
	}
	return false
}

func (d DocumentType) Valid() bool {
	switch d {
	case DocTestPlan, DocScreenshot, DocSpecification, DocOther:
		return true
	}
	return false
}

// Forces is the catalog of reporting forces and organizations.
var Forces = []string{
	"Avon And Somerset",
	"Bedfordshire, Cambridgeshire & Hertfordshire",
	"British Transport",
	"Cheshire",
	"Cleveland",
	"Cumbria",
	"Derbyshire",
	"Devon And Cornwall",
	"Durham",
	"Essex",
	"Gloucestershire",
	"Greater Manchester",
	"Gwent",
	"Hampshire",
	"Kent",
	"Lancashire",
	"Leicestershire",
	"Lincolnshire",
	"Merseyside",
	"Metropolitan",
	"Norfolk & Suffolk",
	"North Wales",
	"North Yorkshire",
	"Northumbria",
	"Nottinghamshire",
	"Police Scotland",
	"South Yorkshire",
	"Staffordshire",
	"Surrey",
	"Sussex",
	"Warwickshire & West Mercia",
	"West Midlands",
	"West Yorkshire",
	"Wiltshire",
	"FIS",
	"Home Office",
	"IPCC",
	"MOD",
	"NCUG",
	"PIRC",
	"UA",
}
