package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jowa-zm/jowa-backend/internal/api/model"
	"github.com/jowa-zm/jowa-backend/shared/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableStorage points at a closed port so every method exercises
// the no-connection path without a live database.
func unreachableStorage() *Storage {
	gw := postgresql.NewGateway(&postgresql.Config{
		Host:        "127.0.0.1",
		Port:        1,
		User:        "postgres",
		Password:    "postgres",
		Database:    "jowa",
		SSLMode:     "disable",
		PingTimeout: 2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewStorage(gw)
}

func TestStorage_NoConnection(t *testing.T) {
	s := unreachableStorage()
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		err := s.Ping(ctx)
		assert.ErrorIs(t, err, postgresql.ErrNotConnected)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := s.Stats(ctx)
		assert.ErrorIs(t, err, postgresql.ErrNotConnected)
		assert.Nil(t, stats)
	})

	t.Run("active jobs", func(t *testing.T) {
		jobs, err := s.ActiveJobs(ctx)
		assert.ErrorIs(t, err, postgresql.ErrNotConnected)
		assert.Nil(t, jobs)
	})

	t.Run("recent payments", func(t *testing.T) {
		payments, err := s.RecentPayments(ctx)
		assert.ErrorIs(t, err, postgresql.ErrNotConnected)
		assert.Nil(t, payments)
	})

	t.Run("create job", func(t *testing.T) {
		jobID, err := s.CreateJob(ctx, &model.NewJob{
			Phone: "+260999",
			Title: "T",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, postgresql.ErrNotConnected)
		assert.Zero(t, jobID)
	})
}
