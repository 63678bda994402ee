package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jowa-zm/jowa-backend/internal/api/dto"
	"github.com/jowa-zm/jowa-backend/internal/api/model"
)

// Fallback labels for rows with missing columns
const (
	noDescription  = "No description available"
	noLocation     = "Not specified"
	noPaymentType  = "Not specified"
	noCompany      = "Company not specified"
	noPostedLabel  = "Recently"
	noSalary       = "Negotiable"
	noReference    = "N/A"
	jobCategory    = "general"
	postedDateForm = "02 Jan 2006"
)

// postedLabel renders how long ago a job was posted: "Just now" inside
// the first hour, whole hours up to a day, a calendar date after that.
func postedLabel(createdAt, now time.Time) string {
	age := now.Sub(createdAt)

	switch {
	case age < time.Hour:
		return "Just now"
	case age < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(age.Hours()))
	default:
		return createdAt.Format(postedDateForm)
	}
}

// formatAmount renders a monetary amount without trailing zeros, so 120
// prints as "120" and 120.5 as "120.5"
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// shapeJob turns a listing row into its response shape, substituting the
// fallback labels for missing columns
func shapeJob(row model.JobRow, now time.Time) dto.JobDTO {
	salary := noSalary
	if row.PaymentAmount.Valid && row.PaymentAmount.Float64 != 0 {
		salary = fmt.Sprintf("K%s/%s", formatAmount(row.PaymentAmount.Float64), row.PaymentType.String)
	}

	posted := noPostedLabel
	if row.CreatedAt.Valid {
		posted = postedLabel(row.CreatedAt.Time, now)
	}

	return dto.JobDTO{
		ID:          row.ID,
		Title:       row.Title,
		Company:     stringOr(row.CompanyName.String, noCompany),
		Location:    stringOr(row.Location.String, noLocation),
		Salary:      salary,
		Type:        stringOr(row.PaymentType.String, noPaymentType),
		Category:    jobCategory,
		Description: stringOr(row.Description.String, noDescription),
		Posted:      posted,
	}
}

// shapePayment turns a payment row into its response shape
func shapePayment(row model.PaymentRow) dto.PaymentDTO {
	date := ""
	if row.CreatedAt.Valid {
		date = row.CreatedAt.Time.Format("2006-01-02")
	}

	return dto.PaymentDTO{
		Description: row.Purpose.String,
		Amount:      "K" + formatAmount(row.Amount.Float64),
		Status:      row.Status.String,
		Date:        date,
		Reference:   stringOr(row.TransactionID.String, noReference),
	}
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
