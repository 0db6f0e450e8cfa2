package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/server/models"
)

// registerRequest is the body of POST /users.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse exposes only the safe fields of a user; the password digest
// never leaves the service layer.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID.Hex(), Email: u.Email}
}

// handleRegister creates a new account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.sendServiceError(w, r, err)
		return
	}

	s.sendJSON(w, http.StatusCreated, newUserResponse(user))
}

// handleMe returns the account bound to the presented token.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Lookup(r.Context(), requestUserID(r))
	if errors.Is(err, common.ErrNotFound) {
		// the token resolved but the account is gone; treat as unauthorized
		s.sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		s.sendServiceError(w, r, err)
		return
	}

	s.sendJSON(w, http.StatusOK, newUserResponse(user))
}
