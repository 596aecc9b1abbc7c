package http

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	review, err := h.reviews.Add(c.Request.Context(), currentUser(c), req.ProductID, req.ProductName, req.Rating, req.Text)
	switch {
	case errors.Is(err, services.ErrReviewNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyReviewed), errors.Is(err, services.ErrReviewBadProduct), errors.Is(err, services.ErrReviewMissingData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully", "review": review})
	}
}

func (h *Handler) ListProductReviews(c *gin.Context) {
	reviews, err := h.reviews.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) ListAllReviews(c *gin.Context) {
	reviews, err := h.reviews.ListAll(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	err = h.reviews.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
