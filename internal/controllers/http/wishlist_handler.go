package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetWishlist(c *gin.Context) {
	ids, err := h.wishlists.Get(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *Handler) AddWishlistItem(c *gin.Context) {
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.wishlists.Add(c.Request.Context(), currentUser(c).ID, req.ProductID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.wishlists.Remove(c.Request.Context(), currentUser(c).ID, req.ProductID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}
