package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jowa-zm/jowa-backend/internal/api/domain"
	"github.com/jowa-zm/jowa-backend/internal/api/model"
	"github.com/jowa-zm/jowa-backend/shared/postgresql"
)

// Storage runs the service's queries over the connection gateway. Every
// method opens its own connection and closes it before returning; nothing
// is shared between requests.
type Storage struct {
	gateway *postgresql.Gateway
}

func NewStorage(gateway *postgresql.Gateway) *Storage {
	return &Storage{
		gateway: gateway,
	}
}

// Ping opens and immediately closes a connection. Used by the health check.
func (s *Storage) Ping(ctx context.Context) error {
	db, err := s.gateway.Open(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

// Stats runs the four platform counters. Revenue is coalesced to 0 so the
// result is never null.
func (s *Storage) Stats(ctx context.Context) (*model.Stats, error) {
	db, err := s.gateway.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var stats model.Stats

	if err := db.GetContext(ctx, &stats.TotalUsers, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if err := db.GetContext(ctx, &stats.ActiveJobs,
		`SELECT COUNT(*) FROM jobs WHERE status = $1`, domain.JobStatusActive); err != nil {
		return nil, fmt.Errorf("failed to count active jobs: %w", err)
	}

	if err := db.GetContext(ctx, &stats.TotalEmployers, `SELECT COUNT(*) FROM employers`); err != nil {
		return nil, fmt.Errorf("failed to count employers: %w", err)
	}

	if err := db.GetContext(ctx, &stats.TotalRevenue,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1`,
		domain.PaymentStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &stats, nil
}

// ActiveJobs returns up to 10 active jobs, newest first, joined with the
// posting employer's company name.
func (s *Storage) ActiveJobs(ctx context.Context) ([]model.JobRow, error) {
	db, err := s.gateway.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT j.id, j.title, j.description, j.location,
		       j.payment_amount, j.payment_type, j.status,
		       e.company_name, j.created_at
		FROM jobs j
		LEFT JOIN employers e ON j.employer_id = e.id
		WHERE j.status = $1
		ORDER BY j.created_at DESC
		LIMIT 10
	`

	var jobs []model.JobRow
	if err := db.SelectContext(ctx, &jobs, query, domain.JobStatusActive); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// RecentPayments returns the 5 most recent payments, newest first.
func (s *Storage) RecentPayments(ctx context.Context) ([]model.PaymentRow, error) {
	db, err := s.gateway.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT purpose, amount, status, created_at, transaction_id
		FROM payments
		ORDER BY created_at DESC
		LIMIT 5
	`

	var payments []model.PaymentRow
	if err := db.SelectContext(ctx, &payments, query); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}

// CreateJob inserts a job for the employer matching job.Phone, creating
// the employer first when the phone number is unknown. Lookup and inserts
// run in one transaction committed at the end; the employer lookup makes
// no atomicity guarantee against concurrent first-time submissions from
// the same phone number.
func (s *Storage) CreateJob(ctx context.Context, job *model.NewJob) (int64, error) {
	db, err := s.gateway.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var employerID int64
	err = tx.GetContext(ctx, &employerID,
		`SELECT id FROM employers WHERE phone_number = $1`, job.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.GetContext(ctx, &employerID, `
			INSERT INTO employers (phone_number, company_name, business_type)
			VALUES ($1, $2, $3)
			RETURNING id
		`, job.Phone, job.CompanyName, domain.DefaultBusinessType)
		if err != nil {
			return 0, fmt.Errorf("failed to create employer: %w", err)
		}
	} else if err != nil {
		return 0, fmt.Errorf("failed to look up employer: %w", err)
	}

	var jobID int64
	err = tx.GetContext(ctx, &jobID, `
		INSERT INTO jobs (employer_id, title, description, location,
		                  payment_amount, payment_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		employerID,
		job.Title,
		job.Description,
		job.Location,
		job.PaymentAmount,
		job.PaymentType,
		domain.JobStatusActive,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return jobID, nil
}
