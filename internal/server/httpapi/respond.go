package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasiljevs/filesmanager/internal/common"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "encoding response", "error", err)
	}
}

func (s *Server) sendError(w http.ResponseWriter, status int, msg string) {
	s.sendJSON(w, status, errorResponse{Error: msg})
}

// sendServiceError maps a service error to its HTTP representation.
// Validation outcomes keep their message; infrastructure failures collapse
// into a generic 500 so nothing internal leaks.
func (s *Server) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrMissingField),
		errors.Is(err, common.ErrInvalidKind),
		errors.Is(err, common.ErrMissingData),
		errors.Is(err, common.ErrParentNotFound),
		errors.Is(err, common.ErrParentNotFolder),
		errors.Is(err, common.ErrAlreadyExists):
		s.sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		s.sendError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrNotFound):
		s.sendError(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		s.sendError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
