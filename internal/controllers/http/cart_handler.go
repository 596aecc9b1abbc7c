package http

import (
	"errors"
	"net/http"

	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.Add(c.Request.Context(), currentUser(c).ID, req.ProductID, req.Quantity, req.Size, req.Color)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, cart)
	}
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.UpdateQuantity(c.Request.Context(), currentUser(c).ID, req.ProductID, req.Quantity, req.Size, req.Color)
	switch {
	case errors.Is(err, services.ErrCartNotFound), errors.Is(err, services.ErrCartItemNotFound), errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, cart)
	}
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	var req RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.Remove(c.Request.Context(), currentUser(c).ID, req.ProductID, req.Size, req.Color)
	switch {
	case errors.Is(err, services.ErrCartNotFound), errors.Is(err, services.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, cart)
	}
}
