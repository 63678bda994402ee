package dto

// CreateJobRequest is the body of POST /api/create_job. Every field is
// optional; the handler fills in defaults for absent values.
type CreateJobRequest struct {
	Phone       string  `json:"phone"`
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"`
	Type        string  `json:"type"`
}

// CreateJobResponse is the success body of POST /api/create_job
type CreateJobResponse struct {
	Success bool   `json:"success"`
	JobID   int64  `json:"job_id"`
	Message string `json:"message"`
}

// JobDTO is one entry of the GET /api/jobs listing
type JobDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Posted      string `json:"posted"`
}
