package handler

import (
	"context"
	"log/slog"

	"github.com/jowa-zm/jowa-backend/internal/api/model"
)

// Store is the data access surface the handlers depend on. The concrete
// implementation lives in internal/api/storage; tests substitute a stub.
type Store interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (*model.Stats, error)
	ActiveJobs(ctx context.Context) ([]model.JobRow, error)
	RecentPayments(ctx context.Context) ([]model.PaymentRow, error)
	CreateJob(ctx context.Context, job *model.NewJob) (int64, error)
}

// EventPublisher emits domain events after successful writes. May be nil
// when the event broker is disabled.
type EventPublisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger *slog.Logger
	Store  Store
	Events EventPublisher
}

// Handler serves the job-board HTTP endpoints
type Handler struct {
	logger *slog.Logger
	store  Store
	events EventPublisher
}

// NewHandler creates a new Handler instance
func NewHandler(deps *Dependencies) *Handler {
	return &Handler{
		logger: deps.Logger,
		store:  deps.Store,
		events: deps.Events,
	}
}
