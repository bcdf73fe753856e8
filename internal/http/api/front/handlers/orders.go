package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/http/respond"
	"github.com/ocevave/ocevave/internal/orders"
)

// OrderHandler handles checkout and order lookup.
type OrderHandler struct {
	orders *orders.Service
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc *orders.Service) *OrderHandler {
	return &OrderHandler{orders: svc}
}

// createOrderRequest is the checkout body.
type createOrderRequest struct {
	Items    []orders.CartLine `json:"items"`
	Shipping orders.Shipping   `json:"shipping"`
}

// Create places an order for the cart. Guests may check out.
func (h *OrderHandler) Create(c *gin.Context) {
	var body createOrderRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		respond.BadJSON(c)
		return
	}
	receipt, errCreate := h.orders.CreateOrder(c.Request.Context(), getUserID(c), body.Items, body.Shipping)
	if errCreate != nil {
		respond.Error(c, errCreate, "Failed to create order")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderNumber": receipt.OrderNumber,
		"orderId":     receipt.OrderID,
		"totalAmount": receipt.TotalAmount,
	})
}

// Get returns an order and its items by order number.
func (h *OrderHandler) Get(c *gin.Context) {
	order, errGet := h.orders.GetByNumber(c.Request.Context(), c.Param("orderNumber"))
	if errGet != nil {
		respond.Error(c, errGet, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "items": order.Items})
}
