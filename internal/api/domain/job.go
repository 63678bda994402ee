package domain

import (
	"errors"
)

const (
	// JobStatusActive marks jobs visible on the listing
	JobStatusActive = "active"

	// PaymentStatusCompleted marks payments counted as revenue
	PaymentStatusCompleted = "completed"

	// DefaultEmployerPhone is used when a job submission carries no phone
	DefaultEmployerPhone = "+260570528201"

	// DefaultCompanyName is used when a new employer carries no company
	DefaultCompanyName = "Individual Employer"

	// DefaultBusinessType is assigned to every implicitly created employer
	DefaultBusinessType = "Various"

	// DefaultPaymentType is used when a job submission carries no type
	DefaultPaymentType = "daily"
)

var (
	ErrEmployerNotFound = errors.New("employer not found")
)
