package handler

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jowa-zm/jowa-backend/internal/api/model"
	"github.com/stretchr/testify/assert"
)

func TestPostedLabel(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{
			name:      "30 minutes ago",
			createdAt: now.Add(-30 * time.Minute),
			want:      "Just now",
		},
		{
			name:      "59 minutes ago",
			createdAt: now.Add(-59 * time.Minute),
			want:      "Just now",
		},
		{
			name:      "exactly one hour ago",
			createdAt: now.Add(-time.Hour),
			want:      "1 hours ago",
		},
		{
			name:      "3 hours ago",
			createdAt: now.Add(-3 * time.Hour),
			want:      "3 hours ago",
		},
		{
			name:      "23 and a half hours ago",
			createdAt: now.Add(-23*time.Hour - 30*time.Minute),
			want:      "23 hours ago",
		},
		{
			name:      "exactly one day ago",
			createdAt: now.Add(-24 * time.Hour),
			want:      "14 Mar 2025",
		},
		{
			name:      "30 days ago",
			createdAt: now.Add(-30 * 24 * time.Hour),
			want:      "13 Feb 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postedLabel(tt.createdAt, now))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 120, want: "120"},
		{amount: 120.5, want: "120.5"},
		{amount: 0, want: "0"},
		{amount: 1500.25, want: "1500.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount(tt.amount))
		})
	}
}

func TestShapeJob(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		row  model.JobRow
		want map[string]string
	}{
		{
			name: "fully populated row",
			row: model.JobRow{
				ID:            7,
				Title:         "Bricklayer",
				Description:   sql.NullString{String: "Lay bricks on site.", Valid: true},
				Location:      sql.NullString{String: "Kitwe", Valid: true},
				PaymentAmount: sql.NullFloat64{Float64: 120, Valid: true},
				PaymentType:   sql.NullString{String: "daily", Valid: true},
				Status:        "active",
				CompanyName:   sql.NullString{String: "Copperbelt Builders", Valid: true},
				CreatedAt:     sql.NullTime{Time: now.Add(-30 * time.Minute), Valid: true},
			},
			want: map[string]string{
				"salary":      "K120/daily",
				"location":    "Kitwe",
				"company":     "Copperbelt Builders",
				"description": "Lay bricks on site.",
				"type":        "daily",
				"posted":      "Just now",
				"category":    "general",
			},
		},
		{
			name: "missing columns get fallback labels",
			row: model.JobRow{
				ID:     8,
				Title:  "Helper",
				Status: "active",
			},
			want: map[string]string{
				"salary":      "Negotiable",
				"location":    "Not specified",
				"company":     "Company not specified",
				"description": "No description available",
				"type":        "Not specified",
				"posted":      "Recently",
				"category":    "general",
			},
		},
		{
			name: "zero amount is negotiable",
			row: model.JobRow{
				ID:            9,
				Title:         "Cleaner",
				PaymentAmount: sql.NullFloat64{Float64: 0, Valid: true},
				PaymentType:   sql.NullString{String: "daily", Valid: true},
				Status:        "active",
			},
			want: map[string]string{
				"salary": "Negotiable",
				"type":   "daily",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapeJob(tt.row, now)

			fields := map[string]string{
				"salary":      got.Salary,
				"location":    got.Location,
				"company":     got.Company,
				"description": got.Description,
				"type":        got.Type,
				"posted":      got.Posted,
				"category":    got.Category,
			}
			for key, want := range tt.want {
				assert.Equal(t, want, fields[key], key)
			}
		})
	}
}

func TestShapePayment(t *testing.T) {
	createdAt := time.Date(2025, time.February, 3, 9, 30, 0, 0, time.UTC)

	t.Run("fully populated row", func(t *testing.T) {
		got := shapePayment(model.PaymentRow{
			Purpose:       sql.NullString{String: "Job posting fee", Valid: true},
			Amount:        sql.NullFloat64{Float64: 50.5, Valid: true},
			Status:        sql.NullString{String: "completed", Valid: true},
			CreatedAt:     sql.NullTime{Time: createdAt, Valid: true},
			TransactionID: sql.NullString{String: "TXN-001", Valid: true},
		})

		assert.Equal(t, "Job posting fee", got.Description)
		assert.Equal(t, "K50.5", got.Amount)
		assert.Equal(t, "completed", got.Status)
		assert.Equal(t, "2025-02-03", got.Date)
		assert.Equal(t, "TXN-001", got.Reference)
	})

	t.Run("missing reference and date", func(t *testing.T) {
		got := shapePayment(model.PaymentRow{
			Amount: sql.NullFloat64{Float64: 20, Valid: true},
			Status: sql.NullString{String: "pending", Valid: true},
		})

		assert.Equal(t, "K20", got.Amount)
		assert.Equal(t, "N/A", got.Reference)
		assert.Equal(t, "", got.Date)
	})
}

func TestFallbackJobs(t *testing.T) {
	jobs := fallbackJobs()

	assert.Len(t, jobs, 2)
	assert.Equal(t, int64(1), jobs[0].ID)
	assert.Equal(t, "Construction Worker", jobs[0].Title)
	assert.Equal(t, int64(2), jobs[1].ID)
	assert.Equal(t, "Farm Assistant", jobs[1].Title)

	// The fallback payload is fixed: repeated calls yield identical data
	assert.Equal(t, jobs, fallbackJobs())
}
