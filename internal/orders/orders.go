// Package orders assembles orders from a cart using authoritative catalog
// prices and persists the header and its items atomically.
package orders

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/catalog"
	"github.com/ocevave/ocevave/internal/db"
	"github.com/ocevave/ocevave/internal/models"
	"github.com/ocevave/ocevave/internal/security"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Order validation failures.
var (
	ErrEmptyCart        = apperr.Validation("Cart is empty")
	ErrInvalidQuantity  = apperr.Validation("Quantity must be at least 1")
	ErrQuantityTooLarge = apperr.Validation(fmt.Sprintf("Quantity must be at most %d", MaxLineQuantity))
	ErrTotalTooLarge    = apperr.Validation("Order total is too large")
	ErrMissingShipping  = apperr.Validation("Shipping name, phone and address are required")
	ErrNotFound         = apperr.NotFound("Order not found")
)

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 10000

// errTotalOverflow aborts the order transaction when a line or the running
// total would exceed int64.
var errTotalOverflow = errors.New("order total overflows int64")

const (
	orderNumberSuffixLen    = 6
	maxOrderNumberAttempts  = 3
	createOrderFailedMsg    = "Failed to create order"
	orderNumberTimestampFmt = "20060102-150405"
)

// CartLine is one requested line. Price is accepted for compatibility with
// existing clients and never read.
type CartLine struct {
	ProductID uint64 `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Price     *int64 `json:"price,omitempty"`
}

// Shipping is the delivery information of an order.
type Shipping struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Zipcode string `json:"zipcode"`
}

// Receipt is returned for a created order.
type Receipt struct {
	OrderNumber string `json:"orderNumber"`
	OrderID     uint64 `json:"orderId"`
	TotalAmount int64  `json:"totalAmount"`
}

// Options tunes order assembly.
type Options struct {
	// SkipUnknownProducts drops cart lines whose product does not exist
	// instead of rejecting the order.
	SkipUnknownProducts bool
}

// Service creates and reads orders.
type Service struct {
	db   *gorm.DB
	opts Options
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(conn *gorm.DB, opts Options) *Service {
	return &Service{db: conn, opts: opts, now: time.Now}
}

// UnknownProductError reports a cart line referencing a missing product.
type UnknownProductError struct {
	ProductID uint64
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %d", e.ProductID)
}

// CreateOrder validates the cart and shipping data, prices every line from
// the catalog and writes the order. userID is nil for guest checkout.
func (s *Service) CreateOrder(ctx context.Context, userID *uint64, cart []CartLine, shipping Shipping) (*Receipt, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range cart {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if line.Quantity > MaxLineQuantity {
			return nil, ErrQuantityTooLarge
		}
	}
	shipping.Name = strings.TrimSpace(shipping.Name)
	shipping.Phone = strings.TrimSpace(shipping.Phone)
	shipping.Address = strings.TrimSpace(shipping.Address)
	shipping.Zipcode = strings.TrimSpace(shipping.Zipcode)
	if shipping.Name == "" || shipping.Phone == "" || shipping.Address == "" {
		return nil, ErrMissingShipping
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		receipt, errCreate := s.createOnce(ctx, userID, cart, shipping)
		if errCreate == nil {
			return receipt, nil
		}
		var unknown *UnknownProductError
		if errors.As(errCreate, &unknown) {
			return nil, apperr.Validation(fmt.Sprintf("Product %d does not exist", unknown.ProductID))
		}
		if errors.Is(errCreate, errTotalOverflow) {
			return nil, ErrTotalTooLarge
		}
		if !db.IsUniqueViolation(errCreate) {
			return nil, apperr.Internal(createOrderFailedMsg, errCreate)
		}
		lastErr = errCreate
		log.WithError(errCreate).Warn("order number collision, retrying")
	}
	return nil, apperr.Internal(createOrderFailedMsg, lastErr)
}

func (s *Service) createOnce(ctx context.Context, userID *uint64, cart []CartLine, shipping Shipping) (*Receipt, error) {
	orderNumber, errNumber := s.newOrderNumber()
	if errNumber != nil {
		return nil, errNumber
	}

	var receipt Receipt
	errTx := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uint64, 0, len(cart))
		for _, line := range cart {
			ids = append(ids, line.ProductID)
		}
		products, errFind := catalog.ProductsByIDs(ctx, tx, ids)
		if errFind != nil {
			return fmt.Errorf("load products: %w", errFind)
		}

		items := make([]models.OrderItem, 0, len(cart))
		var total int64
		for _, line := range cart {
			product, ok := products[line.ProductID]
			if !ok {
				if s.opts.SkipUnknownProducts {
					continue
				}
				return &UnknownProductError{ProductID: line.ProductID}
			}
			if product.Price > 0 && line.Quantity > math.MaxInt64/product.Price {
				return errTotalOverflow
			}
			lineTotal := product.Price * line.Quantity
			if total > math.MaxInt64-lineTotal {
				return errTotalOverflow
			}
			total += lineTotal
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				Price:       product.Price,
			})
		}

		order := models.Order{
			UserID:          userID,
			OrderNumber:     orderNumber,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			ShippingName:    shipping.Name,
			ShippingPhone:   shipping.Phone,
			ShippingAddress: shipping.Address,
			PaymentMethod:   models.DefaultPaymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
		}
		if shipping.Zipcode != "" {
			zipcode := shipping.Zipcode
			order.ShippingZipcode = &zipcode
		}
		if errCreate := tx.Omit("Items").Create(&order).Error; errCreate != nil {
			return fmt.Errorf("create order: %w", errCreate)
		}
		if len(items) > 0 {
			for i := range items {
				items[i].OrderID = order.ID
			}
			if errItems := tx.Create(&items).Error; errItems != nil {
				return fmt.Errorf("create order items: %w", errItems)
			}
		}
		receipt = Receipt{OrderNumber: order.OrderNumber, OrderID: order.ID, TotalAmount: total}
		return nil
	})
	if errTx != nil {
		return nil, errTx
	}
	return &receipt, nil
}

// newOrderNumber returns ORD-YYYYMMDD-HHMMSS-XXXXXX in UTC.
func (s *Service) newOrderNumber() (string, error) {
	suffix, errRand := security.RandomUpper(orderNumberSuffixLen)
	if errRand != nil {
		return "", fmt.Errorf("order number: %w", errRand)
	}
	return "ORD-" + s.now().UTC().Format(orderNumberTimestampFmt) + "-" + suffix, nil
}

// GetByNumber returns the order with its items.
func (s *Service) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrNotFound
	}
	var order models.Order
	errFind := s.db.WithContext(ctx).
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("id ASC") }).
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Internal("Failed to fetch order", errFind)
	}
	return &order, nil
}

// ListWithItems returns every order, newest first, with items.
func (s *Service) ListWithItems(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	errFind := s.db.WithContext(ctx).
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("id ASC") }).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if errFind != nil {
		return nil, apperr.Internal("Failed to fetch orders", errFind)
	}
	return list, nil
}
