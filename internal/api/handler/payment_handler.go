package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jowa-zm/jowa-backend/internal/api/dto"
)

// ListPayments handles GET /api/payments
// Returns the 5 most recent payments. Any failure degrades to an empty
// list with HTTP 200, matching the no-database path.
func (h *Handler) ListPayments(c *gin.Context) {
	rows, err := h.store.RecentPayments(c.Request.Context())
	if err != nil {
		h.logger.Error("Payment listing degraded to empty payload",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusOK, []dto.PaymentDTO{})
		return
	}

	payments := make([]dto.PaymentDTO, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, shapePayment(row))
	}

	c.JSON(http.StatusOK, payments)
}
