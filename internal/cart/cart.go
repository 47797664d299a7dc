package cart

import (
	"github.com/google/uuid"
)

// Line is a snapshot of a product at the moment it entered the cart.
type Line struct {
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	PriceCents    int       `json:"price_cents"`
	StockQuantity int       `json:"stock_quantity"`
	Category      string    `json:"category"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Quantity      int       `json:"quantity"`
}

// Cart holds at most one line per product id for a single shopping session.
type Cart struct {
	Items []Line `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []Line{}}
}

// AddItem merges the line into the cart: repeated adds of the same product
// sum quantities, otherwise the line is appended. A non-positive quantity
// is treated as 1.
func (c *Cart) AddItem(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == line.ProductID {
			c.Items[i].Quantity += line.Quantity
			return
		}
	}
	c.Items = append(c.Items, line)
}

// RemoveItem deletes the line for the product if present. Removing an
// absent product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity on an existing line. It never deletes
// the line, callers map non-positive quantities to RemoveItem. Unknown
// product ids are a no-op.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Items = []Line{}
}

// TotalCents sums price times quantity across all lines in cents.
func (c *Cart) TotalCents() int {
	total := 0
	for _, line := range c.Items {
		total += line.PriceCents * line.Quantity
	}
	return total
}

// ItemCount sums the quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
