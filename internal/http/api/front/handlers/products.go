package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/catalog"
	"github.com/ocevave/ocevave/internal/http/respond"
)

// ProductHandler serves the public catalog.
type ProductHandler struct {
	catalog *catalog.Catalog
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// List returns all products.
func (h *ProductHandler) List(c *gin.Context) {
	products, errList := h.catalog.List(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Get returns one product.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := respond.IDParam(c, "id")
	if !ok {
		return
	}
	product, errGet := h.catalog.Get(c.Request.Context(), id)
	if errGet != nil {
		respond.Error(c, errGet, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}
