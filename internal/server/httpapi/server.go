// Package httpapi exposes the files-manager operations over HTTP. It is a
// thin layer: request parsing and status-code mapping live here, everything
// else is delegated to the services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avasiljevs/filesmanager/internal/logging"
	"github.com/avasiljevs/filesmanager/internal/server/services"
)

// Server glues the services to an HTTP listener.
type Server struct {
	address  string
	logger   logging.Logger
	sessions *services.SessionService
	users    *services.UserService
	files    *services.FileService
	health   *services.HealthService
}

// NewServer constructs a Server for the given bind address.
func NewServer(
	address string,
	logger logging.Logger,
	sessions *services.SessionService,
	users *services.UserService,
	files *services.FileService,
	health *services.HealthService,
) *Server {
	return &Server{
		address:  address,
		logger:   logger.With("module", "http_server"),
		sessions: sessions,
		users:    users,
		files:    files,
		health:   health,
	}
}

// Router assembles the route table. Split out from Run so tests can drive
// the full surface through httptest.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/users", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/connect", s.handleConnect).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.tokenAuth)
	authed.HandleFunc("/disconnect", s.handleDisconnect).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", s.handleMe).Methods(http.MethodGet)
	authed.HandleFunc("/files", s.handleUpload).Methods(http.MethodPost)
	authed.HandleFunc("/files", s.handleIndex).Methods(http.MethodGet)
	authed.HandleFunc("/files/{id}", s.handleShow).Methods(http.MethodGet)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
