package ports

import (
	"context"
	"time"

	"amendtrack/internal/domain/amendment"
)

// AmendmentRecord is the persistence-facing view of an amendment.
type AmendmentRecord struct {
	AmendmentID uint64
	Reference   string

	Type              amendment.Type
	Description       string
	Status            amendment.Status
	DevelopmentStatus amendment.DevelopmentStatus
	Priority          amendment.Priority
	Force             *string
	Application       *string
	Notes             *string

	ReportedBy   *string
	AssignedTo   *string
	DateReported *time.Time

	DatabaseChanges  bool
	DBUpgradeChanges bool
	ReleaseNotes     *string

	QAAssignedID            *int64
	QAAssignedDate          *time.Time
	QATestPlanCheck         bool
	QATestReleaseNotesCheck bool
	QACompleted             bool
	QASignature             *string
	QACompletedDate         *time.Time
	QANotes                 *string
	QATestPlanLink          *string

	CreatedBy  *string
	CreatedOn  time.Time
	ModifiedBy *string
	ModifiedOn time.Time
}

type ProgressRecord struct {
	ProgressID  uint64
	AmendmentID uint64
	StartDate   *time.Time
	Description string
	Notes       *string
	CreatedBy   *string
	CreatedOn   time.Time
	ModifiedBy  *string
	ModifiedOn  time.Time
}

type ApplicationLinkRecord struct {
	ID                uint64
	AmendmentID       uint64
	ApplicationID     *uint64
	ApplicationName   string
	ReportedVersion   *string
	AppliedVersion    *string
	DevelopmentStatus *string
}

type LinkRecord struct {
	LinkID            uint64
	AmendmentID       uint64
	LinkedAmendmentID uint64
	LinkType          amendment.LinkType
}

type DocumentRecord struct {
	DocumentID       uint64
	AmendmentID      uint64
	DocumentName     string
	OriginalFilename string
	FilePath         string
	FileSize         int64
	MimeType         *string
	DocumentType     amendment.DocumentType
	Description      *string
	UploadedBy       *string
	UploadedOn       time.Time
}

// ReferenceCounters is the singleton high-water-mark row maintained by the
// legacy importer. The live allocator derives sequences from stored
// references instead of reading this row.
type ReferenceCounters struct {
	Bug           int64
	Fault         int64
	Enhancement   int64
	Feature       int64
	Suggestion    int64
	Maintenance   int64
	Documentation int64
}

// AmendmentFilter drives the amendment listing query. All provided filters
// are ANDed; a field's own value set is a membership (OR) test.
type AmendmentFilter struct {
	Reference           string
	IDs                 []uint64
	Statuses            []string
	DevelopmentStatuses []string
	Priorities          []string
	Types               []string
	Forces              []string
	Applications        []string
	AssignedTo          []string
	ReportedBy          []string

	DateReportedFrom *time.Time
	DateReportedTo   *time.Time
	CreatedOnFrom    *time.Time
	CreatedOnTo      *time.Time
	ModifiedOnFrom   *time.Time
	ModifiedOnTo     *time.Time

	SearchText string

	QACompleted      *bool
	QAAssigned       *bool
	DatabaseChanges  *bool
	DBUpgradeChanges *bool

	SortBy    string
	SortOrder string
	Skip      int
	Limit     int
}

// AmendmentStats is the dashboard rollup.
type AmendmentStats struct {
	Total               int64
	ByStatus            map[string]int64
	ByPriority          map[string]int64
	ByType              map[string]int64
	ByDevelopmentStatus map[string]int64
	QAPending           int64
	DatabaseChanges     int64
}

// DeletedAmendmentFiles lists the stored document paths removed with an
// amendment so the caller can clean up the physical files after commit.
type DeletedAmendmentFiles struct {
	DocumentPaths []string
}

type AmendmentReadRepository interface {
	GetAmendment(ctx context.Context, amendmentID uint64) (AmendmentRecord, error)
	GetAmendmentByReference(ctx context.Context, reference string) (AmendmentRecord, error)
	// ListAmendments returns the filtered page plus the total count over the
	// unpaginated filtered set. Both must observe the same predicate.
	ListAmendments(ctx context.Context, filter AmendmentFilter) ([]AmendmentRecord, int64, error)
	// LastReferenceWithPrefix returns the lexicographically highest stored
	// reference starting with prefix, or found=false when none exists.
	LastReferenceWithPrefix(ctx context.Context, prefix string) (string, bool, error)
	AmendmentStats(ctx context.Context) (AmendmentStats, error)

	ListProgress(ctx context.Context, amendmentID uint64) ([]ProgressRecord, error)
	ListLinks(ctx context.Context, amendmentID uint64) ([]LinkRecord, error)
	LinkExists(ctx context.Context, amendmentID, linkedAmendmentID uint64) (bool, error)
	ListDocuments(ctx context.Context, amendmentID uint64) ([]DocumentRecord, error)
	GetDocument(ctx context.Context, documentID uint64) (DocumentRecord, error)
	ListApplicationLinks(ctx context.Context, amendmentID uint64) ([]ApplicationLinkRecord, error)
}

type AmendmentRepository interface {
	AmendmentReadRepository

	CreateAmendment(ctx context.Context, record AmendmentRecord) (AmendmentRecord, error)
	// UpdateAmendment applies only the given column/value pairs.
	UpdateAmendment(ctx context.Context, amendmentID uint64, updates map[string]any) error
	// DeleteAmendment removes the amendment plus its progress entries,
	// application links, outgoing links and document rows in one pass.
	DeleteAmendment(ctx context.Context, amendmentID uint64) (DeletedAmendmentFiles, error)

	AddProgress(ctx context.Context, record ProgressRecord) (ProgressRecord, error)
	CreateLink(ctx context.Context, record LinkRecord) (LinkRecord, error)
	DeleteLink(ctx context.Context, linkID uint64) error
	AddDocument(ctx context.Context, record DocumentRecord) (DocumentRecord, error)
	DeleteDocument(ctx context.Context, documentID uint64) error
	AddApplicationLink(ctx context.Context, record ApplicationLinkRecord) (ApplicationLinkRecord, error)

	UpsertReferenceCounters(ctx context.Context, counters ReferenceCounters) error
}
