package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	cataloguc "amendtrack/internal/usecase/catalog"
)

type createEmployeeRequest struct {
	EmployeeName string  `json:"employee_name"`
	Initials     *string `json:"initials"`
	Email        *string `json:"email"`
	WindowsLogin *string `json:"windows_login"`
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	created, err := s.catalog.CreateEmployee(r.Context(), cataloguc.CreateEmployeeInput{
		EmployeeName: req.EmployeeName,
		Initials:     req.Initials,
		Email:        req.Email,
		WindowsLogin: req.WindowsLogin,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toEmployeeResponse(created))
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.catalog.ListEmployees(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	respondJSON(w, http.StatusOK, out)
}

type createApplicationRequest struct {
	ApplicationName string  `json:"application_name"`
	Description     *string `json:"description"`
}

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	created, err := s.catalog.CreateApplication(r.Context(), cataloguc.CreateApplicationInput{
		ApplicationName: req.ApplicationName,
		Description:     req.Description,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toApplicationResponse(created))
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := s.catalog.ListApplications(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]applicationResponse, 0, len(applications))
	for _, a := range applications {
		out = append(out, toApplicationResponse(a))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid application id")
		return
	}

	if err := s.catalog.DeleteApplication(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createVersionRequest struct {
	Version      string     `json:"version"`
	ReleasedDate *time.Time `json:"released_date"`
	Notes        *string    `json:"notes"`
}

func (s *Server) handleCreateApplicationVersion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid application id")
		return
	}

	var req createVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalid(w, r, "invalid JSON body")
		return
	}

	created, err := s.catalog.CreateApplicationVersion(r.Context(), cataloguc.CreateApplicationVersionInput{
		ApplicationID: id,
		Version:       req.Version,
		ReleasedDate:  req.ReleasedDate,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toApplicationVersionResponse(created))
}

func (s *Server) handleListApplicationVersions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondInvalid(w, r, "invalid application id")
		return
	}

	versions, err := s.catalog.ListApplicationVersions(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]applicationVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, toApplicationVersionResponse(v))
	}
	respondJSON(w, http.StatusOK, out)
}
