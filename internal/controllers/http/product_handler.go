package http

import (
	"errors"
	"net/http"

	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) TopRatedProducts(c *gin.Context) {
	products, err := h.products.TopRated(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.GetByPublicID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, product)
	}
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), productInput(req))
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), productInput(req))
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, product)
	}
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	err := h.products.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		h.internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func productInput(req ProductRequest) services.ProductInput {
	return services.ProductInput{
		Name:             req.Name,
		Category:         req.Category,
		Price:            req.Price,
		DiscountedPrice:  req.DiscountedPrice,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Stock:            req.Stock,
		Colors:           req.Colors,
		Images:           req.Images,
		ImageURL:         req.ImageURL,
	}
}
