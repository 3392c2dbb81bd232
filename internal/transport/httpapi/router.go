package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"amendtrack/internal/bootstrap/logging"
)

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(corsMiddleware(s.cfg.CORSOrigins))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/amendments", func(r chi.Router) {
			r.Post("/", s.handleCreateAmendment)
			r.Get("/", s.handleListAmendments)
			r.Get("/stats", s.handleStats)
			r.Get("/reference/{ref}", s.handleGetAmendmentByReference)
			r.Delete("/links/{linkId}", s.handleRemoveLink)
			r.Delete("/documents/{docId}", s.handleRemoveDocument)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetAmendment)
				r.Put("/", s.handleUpdateAmendment)
				r.Patch("/qa", s.handleUpdateQA)
				r.Delete("/", s.handleDeleteAmendment)

				r.Post("/progress", s.handleAddProgress)
				r.Get("/progress", s.handleListProgress)
				r.Post("/links", s.handleLinkAmendments)
				r.Get("/links", s.handleListLinks)
				r.Post("/applications", s.handleAddApplicationLink)
				r.Get("/applications", s.handleListApplicationLinks)
				r.Post("/documents", s.handleUploadDocument)
				r.Get("/documents", s.handleListDocuments)
			})
		})

		r.Route("/reference", func(r chi.Router) {
			r.Get("/next", s.handleNextReference)
			r.Get("/statuses", s.handleReferenceStatuses)
			r.Get("/dev-statuses", s.handleReferenceDevStatuses)
			r.Get("/priorities", s.handleReferencePriorities)
			r.Get("/types", s.handleReferenceTypes)
			r.Get("/forces", s.handleReferenceForces)
			r.Get("/link-types", s.handleReferenceLinkTypes)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", s.handleListEmployees)
			r.Post("/", s.handleCreateEmployee)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Get("/", s.handleListApplications)
			r.Post("/", s.handleCreateApplication)
			r.Delete("/{id}", s.handleDeleteApplication)
			r.Get("/{id}/versions", s.handleListApplicationVersions)
			r.Post("/{id}/versions", s.handleCreateApplicationVersion)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging.Info(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				_, ok := allowed[origin]
				if allowAll || ok {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
					h.Set("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
