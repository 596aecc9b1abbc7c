package http

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain"
	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), currentUser(c), services.PlaceOrderInput{
		Items:           req.CartItems,
		BillingDetails:  req.BillingDetails,
		ShippingDetails: req.ShippingDetails,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentStatus,
		Total:           req.Total,
		Shipping:        req.Shipping,
		FinalTotal:      req.FinalTotal,
		TotalPKR:        req.TotalPKR,
		TotalUSD:        req.TotalUSD,
		FinalTotalPKR:   req.FinalTotalPKR,
		FinalTotalUSD:   req.FinalTotalUSD,
		StripePaymentID: req.StripePaymentID,
	})
	switch {
	case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrMissingBillingContact):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "orderId": order.PublicID, "order": order})
	}
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	orders, err := h.orders.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) WeeklyRevenue(c *gin.Context) {
	revenue, err := h.orders.WeeklyRevenue(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

func (h *Handler) OrderSummary(c *gin.Context) {
	stats, err := h.orders.Summary(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := req.CancelledBy
	if req.Status == domain.OrderCancelled && actor == "" {
		actor = domain.CancelledByAdmin
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason, actor)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
	}
}

func (h *Handler) CancelOrder(c *gin.Context) {
	var req CancelOrderRequest
	// body is optional, a missing reason falls back to the service default
	_ = c.ShouldBindJSON(&req)

	order, err := h.orders.CancelOwnOrder(c.Request.Context(), currentUser(c), c.Param("id"), req.Reason)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, services.ErrNotOrderOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOrderNotCancellable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order": order})
	}
}
