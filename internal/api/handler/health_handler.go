package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jowa-zm/jowa-backend/shared/postgresql"
)

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "JOWA Backend API",
		"status":    "running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheck handles GET /api/health
// Probes the database with a throwaway connection and reports the result.
func (h *Handler) HealthCheck(c *gin.Context) {
	err := h.store.Ping(c.Request.Context())
	timestamp := time.Now().UTC().Format(time.RFC3339)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "connected",
			"timestamp": timestamp,
		})
	case errors.Is(err, postgresql.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": timestamp,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "error",
			"message":   err.Error(),
			"timestamp": timestamp,
		})
	}
}
