package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/catalog"
	"github.com/ocevave/ocevave/internal/http/respond"
)

// ProductHandler maintains the catalog.
type ProductHandler struct {
	catalog *catalog.Catalog
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// Create adds a product.
func (h *ProductHandler) Create(c *gin.Context) {
	var body catalog.ProductInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	id, errCreate := h.catalog.Create(c.Request.Context(), body)
	if errCreate != nil {
		respond.Error(c, errCreate, "Failed to create product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// Update replaces a product's fields.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := respond.IDParam(c, "id")
	if !ok {
		return
	}
	var body catalog.ProductInput
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	if errUpdate := h.catalog.Update(c.Request.Context(), id, body); errUpdate != nil {
		respond.Error(c, errUpdate, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a product.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := respond.IDParam(c, "id")
	if !ok {
		return
	}
	if errDelete := h.catalog.Delete(c.Request.Context(), id); errDelete != nil {
		respond.Error(c, errDelete, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
