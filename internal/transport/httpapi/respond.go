package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already out; nothing to do but log.
		logging.Warn(context.Background(), "failed to encode response", slog.Any("err", errs.Loggable(err)))
	}
}

// respondError maps the error's kind to an HTTP status. Unclassified errors
// are treated as internal and their detail is not leaked to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)

	var status int
	switch kind {
	case errs.KindNotFound:
		status = http.StatusNotFound
	case errs.KindConflict:
		status = http.StatusConflict
	case errs.KindInvalid:
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logging.Error(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("err", errs.Loggable(err)),
		)
		respondJSON(w, status, errorBody{Error: "internal error"})
		return
	}

	respondJSON(w, status, errorBody{Error: err.Error(), Kind: kind.String()})
}

func respondInvalid(w http.ResponseWriter, r *http.Request, msg string) {
	respondError(w, r, errs.E(errs.KindInvalid, msg))
}
