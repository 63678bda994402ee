package dto

// PaymentDTO is one entry of the GET /api/payments history
type PaymentDTO struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Reference   string `json:"reference"`
}

// StatsResponse is the success body of GET /api/stats
type StatsResponse struct {
	Status         string  `json:"status"`
	TotalUsers     int64   `json:"total_users"`
	ActiveJobs     int64   `json:"active_jobs"`
	TotalEmployers int64   `json:"total_employers"`
	TotalRevenue   float64 `json:"total_revenue"`
	Timestamp      string  `json:"timestamp"`
}
