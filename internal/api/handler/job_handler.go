package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jowa-zm/jowa-backend/internal/api/domain"
	"github.com/jowa-zm/jowa-backend/internal/api/dto"
	"github.com/jowa-zm/jowa-backend/internal/api/model"
	"github.com/jowa-zm/jowa-backend/shared/postgresql"
)

// ListJobs handles GET /api/jobs
// Returns up to 10 active jobs, newest first. Any failure, connection or
// query, degrades to the fixed mock payload with HTTP 200.
func (h *Handler) ListJobs(c *gin.Context) {
	rows, err := h.store.ActiveJobs(c.Request.Context())
	if err != nil {
		h.logger.Error("Job listing degraded to mock payload",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusOK, fallbackJobs())
		return
	}

	now := time.Now().UTC()
	jobs := make([]dto.JobDTO, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shapeJob(row, now))
	}

	c.JSON(http.StatusOK, jobs)
}

// CreateJob handles POST /api/create_job
// Looks up the employer by phone number, creating one for an unknown
// number, then inserts the job. Both writes share one transaction.
func (h *Handler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil || req == (dto.CreateJobRequest{}) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No data provided",
		})
		return
	}

	job := &model.NewJob{
		Phone:         stringOr(req.Phone, domain.DefaultEmployerPhone),
		CompanyName:   stringOr(req.Company, domain.DefaultCompanyName),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PaymentAmount: req.Salary,
		PaymentType:   stringOr(req.Type, domain.DefaultPaymentType),
	}

	jobID, err := h.store.CreateJob(c.Request.Context(), job)
	if err != nil {
		if errors.Is(err, postgresql.ErrNotConnected) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"message": "Database not connected",
			})
			return
		}

		h.logger.Error("Failed to create job", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.publishJobCreated(c, jobID, job)

	c.JSON(http.StatusOK, dto.CreateJobResponse{
		Success: true,
		JobID:   jobID,
		Message: "Job created successfully",
	})
}

// publishJobCreated emits a job.created event after a successful insert.
// Best effort: a publish failure is logged and never affects the response.
func (h *Handler) publishJobCreated(c *gin.Context, jobID int64, job *model.NewJob) {
	if h.events == nil {
		return
	}

	body, err := json.Marshal(gin.H{
		"event":    "job.created",
		"job_id":   jobID,
		"title":    job.Title,
		"location": job.Location,
		"phone":    job.Phone,
	})
	if err != nil {
		h.logger.Error("Failed to encode job.created event", slog.String("error", err.Error()))
		return
	}

	if err := h.events.Publish(c.Request.Context(), body, "application/json"); err != nil {
		h.logger.Error("Failed to publish job.created event",
			slog.Int64("job_id", jobID),
			slog.String("error", err.Error()),
		)
	}
}
