package orders

import (
	"time"

	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	"github.com/google/uuid"
)

// NewOrderItem is a denormalized line snapshot captured at checkout.
type NewOrderItem struct {
	ProductID   *uuid.UUID
	ProductName string
	PriceCents  int
	Quantity    int
}

// NewOrderInput carries everything needed to persist a pending order.
type NewOrderInput struct {
	UserEmail  string
	UserName   string
	UserPhone  string
	TotalCents int
	Items      []NewOrderItem
}

// OrderItemDTO is the line representation returned to clients.
type OrderItemDTO struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	ProductName string     `json:"product_name"`
	PriceCents  int        `json:"price_cents"`
	Quantity    int        `json:"quantity"`
}

// OrderDTO is the order representation returned to clients.
type OrderDTO struct {
	ID         uuid.UUID         `json:"id"`
	UserEmail  string            `json:"user_email"`
	UserName   string            `json:"user_name"`
	UserPhone  string            `json:"user_phone"`
	TotalCents int               `json:"total_cents"`
	Total      string            `json:"total"`
	Status     enums.OrderStatus `json:"status"`
	Items      []OrderItemDTO    `json:"items"`
	CreatedAt  time.Time         `json:"created_at"`
}

// OrderList wraps the paginated orders plus the next page cursor.
type OrderList struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// OrderStats summarizes order volume for the admin dashboard.
type OrderStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}
