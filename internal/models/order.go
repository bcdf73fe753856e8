package models

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

// Order states. Only OrderStatusPending is reachable through exposed operations.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

// Payment states. Only PaymentStatusPending is reachable through exposed operations.
const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// DefaultPaymentMethod is recorded for every new order.
const DefaultPaymentMethod = "card"

// Order is an order header. Orders are written once together with their items.
type Order struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	UserID      *uint64 `gorm:"index" json:"user_id"`                               // Ordering member, if any.
	OrderNumber string  `gorm:"type:text;not null;uniqueIndex" json:"order_number"` // Client-visible order number.
	TotalAmount int64   `gorm:"not null" json:"total_amount"`                       // Sum of item snapshots.

	Status OrderStatus `gorm:"type:text;not null;default:'pending'" json:"status"` // Fulfilment state.

	ShippingName    string  `gorm:"type:text;not null" json:"shipping_name"`    // Recipient name.
	ShippingPhone   string  `gorm:"type:text;not null" json:"shipping_phone"`   // Recipient phone.
	ShippingAddress string  `gorm:"type:text;not null" json:"shipping_address"` // Delivery address.
	ShippingZipcode *string `gorm:"type:text" json:"shipping_zipcode"`          // Optional postal code.

	PaymentMethod string        `gorm:"type:text;not null;default:'card'" json:"payment_method"`    // Payment method.
	PaymentStatus PaymentStatus `gorm:"type:text;not null;default:'pending'" json:"payment_status"` // Payment state.

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"` // Line items.

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"` // Creation timestamp.
}

// OrderItem is an immutable snapshot of a product line at order time.
type OrderItem struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	OrderID     uint64 `gorm:"not null;index" json:"order_id"`         // Owning order.
	ProductID   uint64 `gorm:"not null;index" json:"product_id"`       // Referenced product.
	ProductName string `gorm:"type:text;not null" json:"product_name"` // Product name snapshot.
	Quantity    int64  `gorm:"not null" json:"quantity"`               // Ordered quantity.
	Price       int64  `gorm:"not null" json:"price"`                  // Unit price snapshot.
}
