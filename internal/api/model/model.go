package model

import (
	"database/sql"
)

// JobRow is one row of the job listing query: a job joined with its
// employer's company name. Most columns are nullable in the schema.
type JobRow struct {
	ID            int64           `db:"id"`
	Title         string          `db:"title"`
	Description   sql.NullString  `db:"description"`
	Location      sql.NullString  `db:"location"`
	PaymentAmount sql.NullFloat64 `db:"payment_amount"`
	PaymentType   sql.NullString  `db:"payment_type"`
	Status        string          `db:"status"`
	CompanyName   sql.NullString  `db:"company_name"`
	CreatedAt     sql.NullTime    `db:"created_at"`
}

// PaymentRow is one row of the payment history query
type PaymentRow struct {
	Purpose       sql.NullString  `db:"purpose"`
	Amount        sql.NullFloat64 `db:"amount"`
	Status        sql.NullString  `db:"status"`
	CreatedAt     sql.NullTime    `db:"created_at"`
	TransactionID sql.NullString  `db:"transaction_id"`
}

// Stats aggregates the four platform counters
type Stats struct {
	TotalUsers     int64
	ActiveJobs     int64
	TotalEmployers int64
	TotalRevenue   float64
}

// NewJob carries the fields of a job submission after defaults are applied
type NewJob struct {
	Phone         string
	CompanyName   string
	Title         string
	Description   string
	Location      string
	PaymentAmount float64
	PaymentType   string
}
