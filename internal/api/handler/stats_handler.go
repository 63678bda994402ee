package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jowa-zm/jowa-backend/internal/api/dto"
	"github.com/jowa-zm/jowa-backend/shared/postgresql"
)

// GetStats handles GET /api/stats
// Composes the four platform counters into one response. Partial results
// are never returned: any failed query reports the whole endpoint offline.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		if errors.Is(err, postgresql.ErrNotConnected) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "offline",
				"message": "Database not connected",
			})
			return
		}

		h.logger.Error("Failed to collect stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "offline",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Status:         "online",
		TotalUsers:     stats.TotalUsers,
		ActiveJobs:     stats.ActiveJobs,
		TotalEmployers: stats.TotalEmployers,
		TotalRevenue:   stats.TotalRevenue,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}
