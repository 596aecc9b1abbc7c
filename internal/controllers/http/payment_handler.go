package http

import (
	"errors"
	"net/http"

	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.payments.CreatePaymentIntent(c.Request.Context(), req.Amount, req.Currency)
	switch {
	case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrAmountTooLow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}
