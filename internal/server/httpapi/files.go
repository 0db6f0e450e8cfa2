package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avasiljevs/filesmanager/internal/server/models"
	"github.com/avasiljevs/filesmanager/internal/server/services"
)

// uploadRequest is the body of POST /files. Data carries the base64-encoded
// payload for non-folder kinds.
type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// handleUpload creates a folder or stores a file.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.files.Create(r.Context(), services.CreateFileInput{
		OwnerID:  requestUserID(r),
		Name:     req.Name,
		Kind:     models.Kind(req.Type),
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		s.sendServiceError(w, r, err)
		return
	}

	s.sendJSON(w, http.StatusCreated, entry)
}

// handleShow returns one entry owned by the caller.
func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	entry, err := s.files.Get(r.Context(), requestUserID(r), mux.Vars(r)["id"])
	if err != nil {
		s.sendServiceError(w, r, err)
		return
	}

	s.sendJSON(w, http.StatusOK, entry)
}

// handleIndex lists one page of the caller's entries under a parent.
// parentId defaults to the root sentinel, page to 0.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	parentID := r.URL.Query().Get("parentId")
	page := services.ParsePage(r.URL.Query().Get("page"))

	entries, err := s.files.List(r.Context(), requestUserID(r), parentID, page)
	if err != nil {
		s.sendServiceError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*models.FileEntry{}
	}

	s.sendJSON(w, http.StatusOK, entries)
}
