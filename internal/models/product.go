package models

import "time"

// DefaultProductCategory is applied when a product is created without a category.
const DefaultProductCategory = "eco-goods"

// Product is a catalog entry. Price is authoritative for order totals.
type Product struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name        string `gorm:"type:text;not null" json:"name"`                         // Display name.
	Description string `gorm:"type:text;not null;default:''" json:"description"`       // Long description.
	Price       int64  `gorm:"not null" json:"price"`                                  // Unit price in minor units.
	ImageURL    string `gorm:"type:text;not null;default:''" json:"image_url"`         // Image reference.
	Category    string `gorm:"type:text;not null;default:'eco-goods'" json:"category"` // Catalog category.
	Stock       int64  `gorm:"not null;default:0" json:"stock"`                        // Displayed stock count.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"` // Last update timestamp.
}
