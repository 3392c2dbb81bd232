package amendment

import (
	"io"
	"time"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/ports"
)

// Service orchestrates amendment operations: creation with reference
// allocation, partial updates, deletes with cascades, progress entries,
// links, documents and the listing query.
type Service struct {
	repo  ports.AmendmentRepository
	uow   ports.UnitOfWork
	clock ports.Clock
	files ports.FileStorage
}

func NewService(repo ports.AmendmentRepository, uow ports.UnitOfWork, clock ports.Clock, files ports.FileStorage) *Service {
	return &Service{
		repo:  repo,
		uow:   uow,
		clock: clock,
		files: files,
	}
}

type CreateAmendmentInput struct {
	Type              string
	Description       string
	Status            string
	DevelopmentStatus string
	Priority          string
	Force             *string
	Application       *string
	Notes             *string
	ReportedBy        *string
	AssignedTo        *string
	DateReported      *time.Time
	DatabaseChanges   bool
	DBUpgradeChanges  bool
	ReleaseNotes      *string
	CreatedBy         string
}

// UpdateAmendmentInput carries a partial update: nil fields are left
// untouched, never overwritten with defaults.
type UpdateAmendmentInput struct {
	Type              *string
	Description       *string
	Status            *string
	DevelopmentStatus *string
	Priority          *string
	Force             *string
	Application       *string
	Notes             *string
	ReportedBy        *string
	AssignedTo        *string
	DateReported      *time.Time
	DatabaseChanges   *bool
	DBUpgradeChanges  *bool
	ReleaseNotes      *string
	ModifiedBy        string
}

type QAUpdateInput struct {
	QAAssignedID            *int64
	QAAssignedDate          *time.Time
	QATestPlanCheck         *bool
	QATestReleaseNotesCheck *bool
	QACompleted             *bool
	QASignature             *string
	QACompletedDate         *time.Time
	QANotes                 *string
	QATestPlanLink          *string
	ModifiedBy              string
}

type AddProgressInput struct {
	AmendmentID uint64
	StartDate   *time.Time
	Description string
	Notes       *string
	CreatedBy   string
}

type LinkAmendmentsInput struct {
	AmendmentID       uint64
	LinkedAmendmentID uint64
	LinkType          string
}

type AddApplicationLinkInput struct {
	AmendmentID       uint64
	ApplicationID     *uint64
	ApplicationName   string
	ReportedVersion   *string
	AppliedVersion    *string
	DevelopmentStatus *string
}

type UploadDocumentInput struct {
	AmendmentID      uint64
	DocumentName     string
	OriginalFilename string
	MimeType         *string
	DocumentType     string
	Description      *string
	UploadedBy       string
	Content          io.Reader
}

// AmendmentDetail is an amendment with all of its child collections.
type AmendmentDetail struct {
	Amendment    ports.AmendmentRecord
	Progress     []ports.ProgressRecord
	Applications []ports.ApplicationLinkRecord
	Links        []ports.LinkRecord
	Documents    []ports.DocumentRecord
}

// ListResult is one page of the filtered listing plus the unpaginated total.
type ListResult struct {
	Items []ports.AmendmentRecord
	Total int64
	Skip  int
	Limit int
}

func optionalString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func validLinkType(value string) (domain.LinkType, error) {
	if value == "" {
		return domain.LinkRelated, nil
	}
	lt := domain.LinkType(value)
	if !lt.Valid() {
		return "", domain.ErrInvalidLinkType
	}
	return lt, nil
}
