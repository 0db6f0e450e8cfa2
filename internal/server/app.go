// Package server initializes and runs the files-manager application: it
// opens the backing stores, wires the services, handles graceful shutdown,
// and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avasiljevs/filesmanager/internal/logging"
	"github.com/avasiljevs/filesmanager/internal/server/blob"
	"github.com/avasiljevs/filesmanager/internal/server/config"
	"github.com/avasiljevs/filesmanager/internal/server/httpapi"
	"github.com/avasiljevs/filesmanager/internal/server/kv"
	"github.com/avasiljevs/filesmanager/internal/server/repositories/files"
	"github.com/avasiljevs/filesmanager/internal/server/repositories/users"
	"github.com/avasiljevs/filesmanager/internal/server/services"
	"github.com/avasiljevs/filesmanager/internal/server/storage"
)

// App owns the store connections and the HTTP server. Construct it with
// NewApp, run it with Run, and release the connections with Close.
type App struct {
	config   *config.Config
	logger   logging.Logger
	docs     *storage.DocumentStore
	sessions kv.Store
	server   *httpapi.Server
}

// NewApp opens both backing stores and wires every component. The store
// handles are owned here and passed down explicitly; nothing else in the
// process holds global state.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	docs, err := storage.Open(ctx, cfg.DatabaseURI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("document store init error: %w", err)
	}
	if err := docs.EnsureIndexes(ctx); err != nil {
		_ = docs.Close(ctx)
		return nil, fmt.Errorf("document store index error: %w", err)
	}

	sessions, err := kv.OpenBadger(cfg.SessionDir)
	if err != nil {
		_ = docs.Close(ctx)
		return nil, fmt.Errorf("session store init error: %w", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		_ = docs.Close(ctx)
		_ = sessions.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	usersRepo := users.NewMongoRepository(docs.Users())
	filesRepo := files.NewMongoRepository(docs.Files())

	userSvc := services.NewUserService(usersRepo)
	fileSvc := services.NewFileService(filesRepo, blobs)
	sessionSvc := services.NewSessionService(sessions, cfg.SessionTTL)
	healthSvc := services.NewHealthService(docs, sessions, userSvc, fileSvc, logger)

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, sessionSvc, userSvc, fileSvc, healthSvc)

	return &App{
		config:   cfg,
		logger:   logger,
		docs:     docs,
		sessions: sessions,
		server:   srv,
	}, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendS3:
		return blob.NewS3Store(ctx, blob.S3Config{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	default:
		return blob.NewFSStore(cfg.BlobDir)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}

// Close releases both store connections.
func (app *App) Close(ctx context.Context) {
	if err := app.sessions.Close(); err != nil {
		app.logger.Error(ctx, "closing session store", "error", err)
	}
	if err := app.docs.Close(ctx); err != nil {
		app.logger.Error(ctx, "closing document store", "error", err)
	}
}
