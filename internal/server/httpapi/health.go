package httpapi

import "net/http"

// handleStatus reports connectivity of both backing stores.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, s.health.Status(r.Context()))
}

// handleStats reports aggregate counts. Store failures degrade the counts
// to zero rather than failing the request.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, s.health.CollectStats(r.Context()))
}
