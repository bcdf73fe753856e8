package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/http/respond"
	"github.com/ocevave/ocevave/internal/orders"
)

// OrderHandler lists orders for administrators.
type OrderHandler struct {
	orders *orders.Service
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc *orders.Service) *OrderHandler {
	return &OrderHandler{orders: svc}
}

// List returns every order with its items, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	list, errList := h.orders.ListWithItems(c.Request.Context())
	if errList != nil {
		respond.Error(c, errList, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}
