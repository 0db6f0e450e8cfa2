package services

import (
	"context"

	"github.com/avasiljevs/filesmanager/internal/logging"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter reports an aggregate document count.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthStatus is the liveness report for the two backing stores.
type HealthStatus struct {
	Store bool `json:"store"`
	Cache bool `json:"cache"`
}

// Stats carries aggregate counts.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// HealthService checks store connectivity and aggregates counts. It never
// returns an error to its callers: store failures degrade the response and
// are logged instead.
type HealthService struct {
	store  Pinger
	cache  Pinger
	users  Counter
	files  Counter
	logger logging.Logger
}

// NewHealthService constructs a HealthService over the document store, the
// key-value store, and the two count sources.
func NewHealthService(store, cache Pinger, users, files Counter, logger logging.Logger) *HealthService {
	return &HealthService{
		store:  store,
		cache:  cache,
		users:  users,
		files:  files,
		logger: logger.With("module", "health"),
	}
}

// Status pings both backing stores without failing.
func (s *HealthService) Status(ctx context.Context) HealthStatus {
	return HealthStatus{
		Store: s.store.Ping(ctx) == nil,
		Cache: s.cache.Ping(ctx) == nil,
	}
}

// CollectStats returns aggregate counts. A failing count is logged and
// reported as zero; callers must tolerate partial results.
func (s *HealthService) CollectStats(ctx context.Context) Stats {
	var stats Stats

	users, err := s.users.Count(ctx)
	if err != nil {
		s.logger.Error(ctx, "counting users", "error", err)
	} else {
		stats.Users = users
	}

	files, err := s.files.Count(ctx)
	if err != nil {
		s.logger.Error(ctx, "counting files", "error", err)
	} else {
		stats.Files = files
	}

	return stats
}
