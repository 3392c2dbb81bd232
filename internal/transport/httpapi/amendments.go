package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	amendmentuc "amendtrack/internal/usecase/amendment"
)

// maxUploadBytes caps document uploads at 32 MiB.
const maxUploadBytes = 32 << 20

func pathID(r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

type createAmendmentRequest struct {
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
	CreatedBy         string     `json:"created_by"`
}

func (s *Server) handleCreateAmendment(w http.ResponseWriter, r *http.Request) {
	var req createAmendmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	detail, err := s.amendments.CreateAmendment(r.Context(), amendmentuc.CreateAmendmentInput{
		Type:              req.Type,
		Description:       req.Description,
		Status:            req.Status,
		DevelopmentStatus: req.DevelopmentStatus,
		Priority:          req.Priority,
		Force:             req.Force,
		Application:       req.Application,
		Notes:             req.Notes,
		ReportedBy:        req.ReportedBy,
		AssignedTo:        req.AssignedTo,
		DateReported:      req.DateReported,
		DatabaseChanges:   req.DatabaseChanges,
		DBUpgradeChanges:  req.DBUpgradeChanges,
		ReleaseNotes:      req.ReleaseNotes,
		CreatedBy:         req.CreatedBy,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toAmendmentResponse(detail))
}

func (s *Server) handleListAmendments(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAmendmentFilter(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	result, err := s.amendments.ListAmendments(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toListResponse(result))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.amendments.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toStatsResponse(stats))
}

func (s *Server) handleGetAmendment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	detail, err := s.amendments.GetAmendment(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toAmendmentDetailResponse(detail))
}

func (s *Server) handleGetAmendmentByReference(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "ref")
	if reference == "" {
		respondInvalid(w, r, "reference is required")
		return
	}

	detail, err := s.amendments.GetAmendmentByReference(r.Context(), reference)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toAmendmentDetailResponse(detail))
}

type updateAmendmentRequest struct {
	Type              *string    `json:"amendment_type"`
	Description       *string    `json:"description"`
	Status            *string    `json:"status"`
	DevelopmentStatus *string    `json:"development_status"`
	Priority          *string    `json:"priority"`
	Force             *string    `json:"force"`
	Application       *string    `json:"application"`
	Notes             *string    `json:"notes"`
	ReportedBy        *string    `json:"reported_by"`
	AssignedTo        *string    `json:"assigned_to"`
	DateReported      *time.Time `json:"date_reported"`
	DatabaseChanges   *bool      `json:"database_changes"`
	DBUpgradeChanges  *bool      `json:"db_upgrade_changes"`
	ReleaseNotes      *string    `json:"release_notes"`
	ModifiedBy        string     `json:"modified_by"`
}

func (s *Server) handleUpdateAmendment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	var req updateAmendmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	detail, err := s.amendments.UpdateAmendment(r.Context(), id, amendmentuc.UpdateAmendmentInput{
		Type:              req.Type,
		Description:       req.Description,
		Status:            req.Status,
		DevelopmentStatus: req.DevelopmentStatus,
		Priority:          req.Priority,
		Force:             req.Force,
		Application:       req.Application,
		Notes:             req.Notes,
		ReportedBy:        req.ReportedBy,
		AssignedTo:        req.AssignedTo,
		DateReported:      req.DateReported,
		DatabaseChanges:   req.DatabaseChanges,
		DBUpgradeChanges:  req.DBUpgradeChanges,
		ReleaseNotes:      req.ReleaseNotes,
		ModifiedBy:        req.ModifiedBy,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toAmendmentResponse(detail))
}

type updateQARequest struct {
	QAAssignedID            *int64     `json:"qa_assigned_id"`
	QAAssignedDate          *time.Time `json:"qa_assigned_date"`
	QATestPlanCheck         *bool      `json:"qa_test_plan_check"`
	QATestReleaseNotesCheck *bool      `json:"qa_test_release_notes_check"`
	QACompleted             *bool      `json:"qa_completed"`
	QASignature             *string    `json:"qa_signature"`
	QACompletedDate         *time.Time `json:"qa_completed_date"`
	QANotes                 *string    `json:"qa_notes"`
	QATestPlanLink          *string    `json:"qa_test_plan_link"`
	ModifiedBy              string     `json:"modified_by"`
}

func (s *Server) handleUpdateQA(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	var req updateQARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	detail, err := s.amendments.UpdateQA(r.Context(), id, amendmentuc.QAUpdateInput{
		QAAssignedID:            req.QAAssignedID,
		QAAssignedDate:          req.QAAssignedDate,
		QATestPlanCheck:         req.QATestPlanCheck,
		QATestReleaseNotesCheck: req.QATestReleaseNotesCheck,
		QACompleted:             req.QACompleted,
		QASignature:             req.QASignature,
		QACompletedDate:         req.QACompletedDate,
		QANotes:                 req.QANotes,
		QATestPlanLink:          req.QATestPlanLink,
		ModifiedBy:              req.ModifiedBy,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toAmendmentResponse(detail))
}

func (s *Server) handleDeleteAmendment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	if err := s.amendments.DeleteAmendment(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addProgressRequest struct {
	StartDate   *time.Time `json:"start_date"`
	Description string     `json:"description"`
	Notes       *string    `json:"notes"`
	CreatedBy   string     `json:"created_by"`
}

func (s *Server) handleAddProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	var req addProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	created, err := s.amendments.AddProgress(r.Context(), amendmentuc.AddProgressInput{
		AmendmentID: id,
		StartDate:   req.StartDate,
		Description: req.Description,
		Notes:       req.Notes,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toProgressResponse(created))
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	entries, err := s.amendments.ListProgress(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]progressResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toProgressResponse(e))
	}
	respondJSON(w, http.StatusOK, out)
}

type linkRequest struct {
	LinkedAmendmentID uint64 `json:"linked_amendment_id"`
	LinkType          string `json:"link_type"`
}

func (s *Server) handleLinkAmendments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	created, err := s.amendments.LinkAmendments(r.Context(), amendmentuc.LinkAmendmentsInput{
		AmendmentID:       id,
		LinkedAmendmentID: req.LinkedAmendmentID,
		LinkType:          req.LinkType,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toLinkResponse(created))
}

func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	links, err := s.amendments.ListLinks(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]linkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toLinkResponse(l))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleRemoveLink(w http.ResponseWriter, r *http.Request) {
	linkID, ok := pathID(r, "linkId")
	if !ok {
		respondInvalid(w, r, "invalid link id")
		return
	}

	if err := s.amendments.RemoveLink(r.Context(), linkID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type applicationLinkRequest struct {
	ApplicationID     *uint64 `json:"application_id"`
	ApplicationName   string  `json:"application_name"`
	ReportedVersion   *string `json:"reported_version"`
	AppliedVersion    *string `json:"applied_version"`
	DevelopmentStatus *string `json:"development_status"`
}

func (s *Server) handleAddApplicationLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	var req applicationLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	created, err := s.amendments.AddApplicationLink(r.Context(), amendmentuc.AddApplicationLinkInput{
		AmendmentID:       id,
		ApplicationID:     req.ApplicationID,
		ApplicationName:   req.ApplicationName,
		ReportedVersion:   req.ReportedVersion,
		AppliedVersion:    req.AppliedVersion,
		DevelopmentStatus: req.DevelopmentStatus,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toApplicationLinkResponse(created))
}

func (s *Server) handleListApplicationLinks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	links, err := s.amendments.ListApplicationLinks(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]applicationLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toApplicationLinkResponse(l))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondInvalid(w, r, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondInvalid(w, r, "file field is required")
		return
	}
	defer file.Close()

	var mimeType *string
	if ct := header.Header.Get("Content-Type"); ct != "" {
		mimeType = &ct
	}
	var description *string
	if d := r.FormValue("description"); d != "" {
		description = &d
	}

	created, err := s.amendments.UploadDocument(r.Context(), amendmentuc.UploadDocumentInput{
		AmendmentID:      id,
		DocumentName:     r.FormValue("document_name"),
		OriginalFilename: header.Filename,
		MimeType:         mimeType,
		DocumentType:     r.FormValue("document_type"),
		Description:      description,
		UploadedBy:       r.FormValue("uploaded_by"),
		Content:          file,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toDocumentResponse(created))
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid amendment id")
		return
	}

	docs, err := s.amendments.ListDocuments(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	docID, ok := pathID(r, "docId")
	if !ok {
		respondInvalid(w, r, "invalid document id")
		return
	}

	if err := s.amendments.RemoveDocument(r.Context(), docID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
