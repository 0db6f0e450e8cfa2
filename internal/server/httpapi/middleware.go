package httpapi

import (
	"context"
	"net/http"
	"time"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// tokenHeader carries the session token on authenticated requests.
const tokenHeader = "X-Token"

// tokenAuth resolves the X-Token header to a user id and stores it in the
// request context. Requests without a valid token never reach the handler.
func (s *Server) tokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(tokenHeader)
		userID, err := s.sessions.Resolve(r.Context(), token)
		if err != nil {
			s.sendServiceError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestUserID returns the user id placed in the context by tokenAuth.
func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// requestToken returns the raw session token of the current request.
func requestToken(r *http.Request) string {
	return r.Header.Get(tokenHeader)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
