package cart

import (
	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/pkg/money"
)

// ItemDTO is the transport shape of a single cart line.
type ItemDTO struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	PriceCents     int       `json:"price_cents"`
	Price          string    `json:"price"`
	Quantity       int       `json:"quantity"`
	LineTotalCents int       `json:"line_total_cents"`
	LineTotal      string    `json:"line_total"`
	StockQuantity  int       `json:"stock_quantity"`
	Category       string    `json:"category"`
	ImageURL       *string   `json:"image_url,omitempty"`
}

// CartDTO is the transport shape of the whole cart.
type CartDTO struct {
	Items      []ItemDTO `json:"items"`
	ItemCount  int       `json:"item_count"`
	TotalCents int       `json:"total_cents"`
	Total      string    `json:"total"`
}

func toDTO(c *Cart) *CartDTO {
	items := make([]ItemDTO, 0, len(c.Items))
	for _, line := range c.Items {
		lineTotal := line.PriceCents * line.Quantity
		items = append(items, ItemDTO{
			ProductID:      line.ProductID,
			Name:           line.Name,
			PriceCents:     line.PriceCents,
			Price:          money.Format(line.PriceCents),
			Quantity:       line.Quantity,
			LineTotalCents: lineTotal,
			LineTotal:      money.Format(lineTotal),
			StockQuantity:  line.StockQuantity,
			Category:       line.Category,
			ImageURL:       line.ImageURL,
		})
	}
	return &CartDTO{
		Items:      items,
		ItemCount:  c.ItemCount(),
		TotalCents: c.TotalCents(),
		Total:      money.Format(c.TotalCents()),
	}
}
