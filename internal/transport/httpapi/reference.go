package httpapi

import (
	"net/http"

	domain "amendtrack/internal/domain/amendment"
)

func (s *Server) handleNextReference(w http.ResponseWriter, r *http.Request) {
	reference, err := s.amendments.NextReference(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"next_reference": reference})
}

func (s *Server) handleReferenceStatuses(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.Statuses())
}

func (s *Server) handleReferenceDevStatuses(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.DevelopmentStatuses())
}

func (s *Server) handleReferencePriorities(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.Priorities())
}

func (s *Server) handleReferenceTypes(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.Types())
}

func (s *Server) handleReferenceForces(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.Forces)
}

func (s *Server) handleReferenceLinkTypes(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.LinkTypes())
}
