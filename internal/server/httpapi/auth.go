package httpapi

import (
	"net/http"
)

// tokenResponse is the login response body.
type tokenResponse struct {
	Token string `json:"token"`
}

// handleConnect signs a user in. Credentials arrive as HTTP Basic auth; on
// success a fresh session token is issued.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		s.sendError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.users.Verify(r.Context(), email, password)
	if err != nil {
		s.sendServiceError(w, r, err)
		return
	}

	token, err := s.sessions.Issue(r.Context(), user.ID.Hex())
	if err != nil {
		s.sendServiceError(w, r, err)
		return
	}

	s.sendJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleDisconnect signs the user out by revoking the presented token.
func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Revoke(r.Context(), requestToken(r)); err != nil {
		s.sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
