package httpapi

import (
	"time"

	"amendtrack/internal/ports"
	amendmentuc "amendtrack/internal/usecase/amendment"
)

// Wire shapes. Nullable columns come through as pointers and marshal as
// JSON null when unset.

type amendmentResponse struct {
	AmendmentID       uint64     `json:"amendment_id"`
	Reference         string     `json:"amendment_reference"`
	Type              string     `json:"amendment_type"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	DevelopmentStatus string     `json:"development_status"`
	Priority          string     `json:"priority"`
	Force             *string    `json:"force"`
	Application       *string    `json:"application"`
	Notes             *string    `json:"notes"`
	ReportedBy        *string    `json:"reported_by"`
	AssignedTo        *string    `json:"assigned_to"`
	DateReported      *time.Time `json:"date_reported"`
	DatabaseChanges   bool       `json:"database_changes"`
	DBUpgradeChanges  bool       `json:"db_upgrade_changes"`
	ReleaseNotes      *string    `json:"release_notes"`

	QAAssignedID            *int64     `json:"qa_assigned_id"`
	QAAssignedDate          *time.Time `json:"qa_assigned_date"`
	QATestPlanCheck         bool       `json:"qa_test_plan_check"`
	QATestReleaseNotesCheck bool       `json:"qa_test_release_notes_check"`
	QACompleted             bool       `json:"qa_completed"`
	QASignature             *string    `json:"qa_signature"`
	QACompletedDate         *time.Time `json:"qa_completed_date"`
	QANotes                 *string    `json:"qa_notes"`
	QATestPlanLink          *string    `json:"qa_test_plan_link"`

	CreatedBy  *string   `json:"created_by"`
	CreatedOn  time.Time `json:"created_on"`
	ModifiedBy *string   `json:"modified_by"`
	ModifiedOn time.Time `json:"modified_on"`
}

func toAmendmentResponse(r ports.AmendmentRecord) amendmentResponse {
	return amendmentResponse{
		AmendmentID:             r.AmendmentID,
		Reference:               r.Reference,
		Type:                    string(r.Type),
		Description:             r.Description,
		Status:                  string(r.Status),
		DevelopmentStatus:       string(r.DevelopmentStatus),
		Priority:                string(r.Priority),
		Force:                   r.Force,
		Application:             r.Application,
		Notes:                   r.Notes,
		ReportedBy:              r.ReportedBy,
		AssignedTo:              r.AssignedTo,
		DateReported:            r.DateReported,
		DatabaseChanges:         r.DatabaseChanges,
		DBUpgradeChanges:        r.DBUpgradeChanges,
		ReleaseNotes:            r.ReleaseNotes,
		QAAssignedID:            r.QAAssignedID,
		QAAssignedDate:          r.QAAssignedDate,
		QATestPlanCheck:         r.QATestPlanCheck,
		QATestReleaseNotesCheck: r.QATestReleaseNotesCheck,
		QACompleted:             r.QACompleted,
		QASignature:             r.QASignature,
		QACompletedDate:         r.QACompletedDate,
		QANotes:                 r.QANotes,
		QATestPlanLink:          r.QATestPlanLink,
		CreatedBy:               r.CreatedBy,
		CreatedOn:               r.CreatedOn,
		ModifiedBy:              r.ModifiedBy,
		ModifiedOn:              r.ModifiedOn,
	}
}

type progressResponse struct {
	ProgressID  uint64     `json:"progress_id"`
	AmendmentID uint64     `json:"amendment_id"`
	StartDate   *time.Time `json:"start_date"`
	Description string     `json:"description"`
	Notes       *string    `json:"notes"`
	CreatedBy   *string    `json:"created_by"`
	CreatedOn   time.Time  `json:"created_on"`
	ModifiedBy  *string    `json:"modified_by"`
	ModifiedOn  time.Time  `json:"modified_on"`
}

func toProgressResponse(r ports.ProgressRecord) progressResponse {
	return progressResponse{
		ProgressID:  r.ProgressID,
		AmendmentID: r.AmendmentID,
		StartDate:   r.StartDate,
		Description: r.Description,
		Notes:       r.Notes,
		CreatedBy:   r.CreatedBy,
		CreatedOn:   r.CreatedOn,
		ModifiedBy:  r.ModifiedBy,
		ModifiedOn:  r.ModifiedOn,
	}
}

type linkResponse struct {
	LinkID            uint64 `json:"link_id"`
	AmendmentID       uint64 `json:"amendment_id"`
	LinkedAmendmentID uint64 `json:"linked_amendment_id"`
	LinkType          string `json:"link_type"`
}

func toLinkResponse(r ports.LinkRecord) linkResponse {
	return linkResponse{
		LinkID:            r.LinkID,
		AmendmentID:       r.AmendmentID,
		LinkedAmendmentID: r.LinkedAmendmentID,
		LinkType:          string(r.LinkType),
	}
}

type documentResponse struct {
	DocumentID       uint64    `json:"document_id"`
	AmendmentID      uint64    `json:"amendment_id"`
	DocumentName     string    `json:"document_name"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	MimeType         *string   `json:"mime_type"`
	DocumentType     string    `json:"document_type"`
	Description      *string   `json:"description"`
	UploadedBy       *string   `json:"uploaded_by"`
	UploadedOn       time.Time `json:"uploaded_on"`
}

func toDocumentResponse(r ports.DocumentRecord) documentResponse {
	return documentResponse{
		DocumentID:       r.DocumentID,
		AmendmentID:      r.AmendmentID,
		DocumentName:     r.DocumentName,
		OriginalFilename: r.OriginalFilename,
		FileSize:         r.FileSize,
		MimeType:         r.MimeType,
		DocumentType:     string(r.DocumentType),
		Description:      r.Description,
		UploadedBy:       r.UploadedBy,
		UploadedOn:       r.UploadedOn,
	}
}

type applicationLinkResponse struct {
	ID                uint64  `json:"id"`
	AmendmentID       uint64  `json:"amendment_id"`
	ApplicationID     *uint64 `json:"application_id"`
	ApplicationName   string  `json:"application_name"`
	ReportedVersion   *string `json:"reported_version"`
	AppliedVersion    *string `json:"applied_version"`
	DevelopmentStatus *string `json:"development_status"`
}

func toApplicationLinkResponse(r ports.ApplicationLinkRecord) applicationLinkResponse {
	return applicationLinkResponse{
		ID:                r.ID,
		AmendmentID:       r.AmendmentID,
		ApplicationID:     r.ApplicationID,
		ApplicationName:   r.ApplicationName,
		ReportedVersion:   r.ReportedVersion,
		AppliedVersion:    r.AppliedVersion,
		DevelopmentStatus: r.DevelopmentStatus,
	}
}

type amendmentDetailResponse struct {
	amendmentResponse
	Progress     []progressResponse        `json:"progress"`
	Applications []applicationLinkResponse `json:"applications"`
	Links        []linkResponse            `json:"links"`
	Documents    []documentResponse        `json:"documents"`
}

func toAmendmentDetailResponse(d amendmentuc.AmendmentDetail) amendmentDetailResponse {
	out := amendmentDetailResponse{
		amendmentResponse: toAmendmentResponse(d.Amendment),
		Progress:          make([]progressResponse, 0, len(d.Progress)),
		Applications:      make([]applicationLinkResponse, 0, len(d.Applications)),
		Links:             make([]linkResponse, 0, len(d.Links)),
		Documents:         make([]documentResponse, 0, len(d.Documents)),
	}
	for _, p := range d.Progress {
		out.Progress = append(out.Progress, toProgressResponse(p))
	}
	for _, a := range d.Applications {
		out.Applications = append(out.Applications, toApplicationLinkResponse(a))
	}
	for _, l := range d.Links {
		out.Links = append(out.Links, toLinkResponse(l))
	}
	for _, doc := range d.Documents {
		out.Documents = append(out.Documents, toDocumentResponse(doc))
	}
	return out
}

type listResponse struct {
	Items []amendmentResponse `json:"items"`
	Total int64               `json:"total"`
	Skip  int                 `json:"skip"`
	Limit int                 `json:"limit"`
}

func toListResponse(r amendmentuc.ListResult) listResponse {
	items := make([]amendmentResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, toAmendmentResponse(item))
	}
	return listResponse{Items: items, Total: r.Total, Skip: r.Skip, Limit: r.Limit}
}

type employeeResponse struct {
	EmployeeID   uint64    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Initials     *string   `json:"initials"`
	Email        *string   `json:"email"`
	WindowsLogin *string   `json:"windows_login"`
	IsActive     bool      `json:"is_active"`
	CreatedOn    time.Time `json:"created_on"`
	ModifiedOn   time.Time `json:"modified_on"`
}

func toEmployeeResponse(r ports.EmployeeRecord) employeeResponse {
	return employeeResponse{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Initials:     r.Initials,
		Email:        r.Email,
		WindowsLogin: r.WindowsLogin,
		IsActive:     r.IsActive,
		CreatedOn:    r.CreatedOn,
		ModifiedOn:   r.ModifiedOn,
	}
}

type applicationResponse struct {
	ApplicationID   uint64    `json:"application_id"`
	ApplicationName string    `json:"application_name"`
	Description     *string   `json:"description"`
	IsActive        bool      `json:"is_active"`
	CreatedOn       time.Time `json:"created_on"`
	ModifiedOn      time.Time `json:"modified_on"`
}

func toApplicationResponse(r ports.ApplicationRecord) applicationResponse {
	return applicationResponse{
		ApplicationID:   r.ApplicationID,
		ApplicationName: r.ApplicationName,
		Description:     r.Description,
		IsActive:        r.IsActive,
		CreatedOn:       r.CreatedOn,
		ModifiedOn:      r.ModifiedOn,
	}
}

type applicationVersionResponse struct {
	ApplicationVersionID uint64     `json:"application_version_id"`
	ApplicationID        uint64     `json:"application_id"`
	Version              string     `json:"version"`
	ReleasedDate         *time.Time `json:"released_date"`
	Notes                *string    `json:"notes"`
	IsActive             bool       `json:"is_active"`
	CreatedOn            time.Time  `json:"created_on"`
	ModifiedOn           time.Time  `json:"modified_on"`
}

func toApplicationVersionResponse(r ports.ApplicationVersionRecord) applicationVersionResponse {
	return applicationVersionResponse{
		ApplicationVersionID: r.ApplicationVersionID,
		ApplicationID:        r.ApplicationID,
		Version:              r.Version,
		ReleasedDate:         r.ReleasedDate,
		Notes:                r.Notes,
		IsActive:             r.IsActive,
		CreatedOn:            r.CreatedOn,
		ModifiedOn:           r.ModifiedOn,
	}
}

type statsResponse struct {
	Total               int64            `json:"total"`
	ByStatus            map[string]int64 `json:"by_status"`
	ByPriority          map[string]int64 `json:"by_priority"`
	ByType              map[string]int64 `json:"by_type"`
	ByDevelopmentStatus map[string]int64 `json:"by_development_status"`
	QAPending           int64            `json:"qa_pending"`
	DatabaseChanges     int64            `json:"database_changes"`
}

func toStatsResponse(s ports.AmendmentStats) statsResponse {
	return statsResponse{
		Total:               s.Total,
		ByStatus:            s.ByStatus,
		ByPriority:          s.ByPriority,
		ByType:              s.ByType,
		ByDevelopmentStatus: s.ByDevelopmentStatus,
		QAPending:           s.QAPending,
		DatabaseChanges:     s.DatabaseChanges,
	}
}
