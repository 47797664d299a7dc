package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog listing.
type Product struct {
	ID                  uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name                string    `gorm:"column:name;not null"`
	Description         *string   `gorm:"column:description"`
	PriceCents          int       `gorm:"column:price_cents;not null"`
	CompareAtPriceCents *int      `gorm:"column:compare_at_price_cents"`
	Quantity            int       `gorm:"column:quantity;not null;default:0"`
	Category            string    `gorm:"column:category;not null"`
	ImageURL            *string   `gorm:"column:image_url"`
	IsFeatured          bool      `gorm:"column:is_featured;not null;default:false"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
