package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/logging"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubCounter struct {
	n   int64
	err error
}

func (c stubCounter) Count(context.Context) (int64, error) { return c.n, c.err }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func TestHealthService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("both alive", func(t *testing.T) {
		svc := NewHealthService(stubPinger{}, stubPinger{}, stubCounter{}, stubCounter{}, discardLogger())
		st := svc.Status(ctx)
		assert.True(t, st.Store)
		assert.True(t, st.Cache)
	})

	t.Run("cache down", func(t *testing.T) {
		svc := NewHealthService(stubPinger{}, stubPinger{err: common.ErrStoreUnavailable}, stubCounter{}, stubCounter{}, discardLogger())
		st := svc.Status(ctx)
		assert.True(t, st.Store)
		assert.False(t, st.Cache)
	})
}

func TestHealthService_CollectStats(t *testing.T) {
	ctx := context.Background()

	t.Run("counts", func(t *testing.T) {
		svc := NewHealthService(stubPinger{}, stubPinger{}, stubCounter{n: 12}, stubCounter{n: 1447}, discardLogger())
		stats := svc.CollectStats(ctx)
		assert.Equal(t, int64(12), stats.Users)
		assert.Equal(t, int64(1447), stats.Files)
	})

	t.Run("store failure degrades to zero", func(t *testing.T) {
		svc := NewHealthService(stubPinger{}, stubPinger{},
			stubCounter{err: common.ErrStoreUnavailable}, stubCounter{n: 3}, discardLogger())
		stats := svc.CollectStats(ctx)
		assert.Equal(t, int64(0), stats.Users)
		assert.Equal(t, int64(3), stats.Files)
	})
}
