// Package catalog reads and maintains the product catalog. Product prices
// held here are the only prices an order total is computed from.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/ocevave/ocevave/internal/apperr"
	"github.com/ocevave/ocevave/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a product id does not exist.
var ErrNotFound = apperr.NotFound("Product not found")

// Catalog is the product accessor.
type Catalog struct {
	db *gorm.DB
}

// New constructs a Catalog.
func New(conn *gorm.DB) *Catalog {
	return &Catalog{db: conn}
}

// List returns all products ordered by id.
func (c *Catalog) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if errFind := c.db.WithContext(ctx).Order("id ASC").Find(&products).Error; errFind != nil {
		return nil, apperr.Internal("Failed to fetch products", errFind)
	}
	return products, nil
}

// Get returns the product with id.
func (c *Catalog) Get(ctx context.Context, id uint64) (*models.Product, error) {
	var product models.Product
	if errFind := c.db.WithContext(ctx).First(&product, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Internal("Failed to fetch product", errFind)
	}
	return &product, nil
}

// ProductsByIDs loads the authoritative rows for ids through tx, keyed by id.
// Missing ids are absent from the map.
func ProductsByIDs(ctx context.Context, tx *gorm.DB, ids []uint64) (map[uint64]models.Product, error) {
	out := make(map[uint64]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var products []models.Product
	if errFind := tx.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; errFind != nil {
		return nil, errFind
	}
	for _, product := range products {
		out[product.ID] = product
	}
	return out, nil
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Stock       int64  `json:"stock"`
}

func (in ProductInput) normalize() (ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Price <= 0 {
		return in, apperr.Validation("Product name and price are required")
	}
	if in.Stock < 0 {
		return in, apperr.Validation("Stock cannot be negative")
	}
	if in.Category == "" {
		in.Category = models.DefaultProductCategory
	}
	return in, nil
}

// Create inserts a product and returns its id.
func (c *Catalog) Create(ctx context.Context, in ProductInput) (uint64, error) {
	in, errInput := in.normalize()
	if errInput != nil {
		return 0, errInput
	}
	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Stock:       in.Stock,
	}
	if errCreate := c.db.WithContext(ctx).Create(&product).Error; errCreate != nil {
		return 0, apperr.Internal("Failed to create product", errCreate)
	}
	return product.ID, nil
}

// Update replaces every editable field of the product with id.
func (c *Catalog) Update(ctx context.Context, id uint64, in ProductInput) error {
	in, errInput := in.normalize()
	if errInput != nil {
		return errInput
	}
	res := c.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"image_url":   in.ImageURL,
		"category":    in.Category,
		"stock":       in.Stock,
	})
	if res.Error != nil {
		return apperr.Internal("Failed to update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the product with id. Deleting a missing product is not an error.
func (c *Catalog) Delete(ctx context.Context, id uint64) error {
	if errDelete := c.db.WithContext(ctx).Delete(&models.Product{}, id).Error; errDelete != nil {
		return apperr.Internal("Failed to delete product", errDelete)
	}
	return nil
}
