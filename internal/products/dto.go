package products

import (
	"time"

	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	"github.com/google/uuid"
)

// ProductDTO is the catalog representation returned to clients.
type ProductDTO struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	PriceCents          int       `json:"price_cents"`
	Price               string    `json:"price"`
	CompareAtPriceCents *int      `json:"compare_at_price_cents,omitempty"`
	DiscountPercent     *int      `json:"discount_percent,omitempty"`
	Quantity            int       `json:"quantity"`
	InStock             bool      `json:"in_stock"`
	Category            string    `json:"category"`
	ImageURL            *string   `json:"image_url,omitempty"`
	IsFeatured          bool      `json:"is_featured"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ListFilters describe the inputs supported by the public product list.
type ListFilters struct {
	Query         string
	Category      *string
	PriceMinCents *int
	PriceMaxCents *int
	Sort          enums.ProductSort
}

// ProductList wraps the paginated products plus the next page cursor.
type ProductList struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// CatalogStats summarizes stock health for the admin dashboard.
type CatalogStats struct {
	TotalProducts int64 `json:"total_products"`
	OutOfStock    int64 `json:"out_of_stock"`
	LowStock      int64 `json:"low_stock"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name                string
	Description         *string
	PriceCents          int
	CompareAtPriceCents *int
	Quantity            int
	Category            string
	ImageURL            *string
	IsFeatured          bool
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Name                *string
	Description         *string
	PriceCents          *int
	CompareAtPriceCents *int
	Quantity            *int
	Category            *string
	ImageURL            *string
	IsFeatured          *bool
}
