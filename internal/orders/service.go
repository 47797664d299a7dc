package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arjunkhanna/craftkart-backend/pkg/db/models"
	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
	"github.com/arjunkhanna/craftkart-backend/pkg/money"
	"github.com/arjunkhanna/craftkart-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes order persistence and administration operations.
type Service interface {
	Create(ctx context.Context, input NewOrderInput) (*OrderDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, params pagination.Params) (*OrderList, error)
	ListByEmail(ctx context.Context, email string, params pagination.Params) (*OrderList, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*OrderDTO, error)
	Stats(ctx context.Context) (*OrderStats, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs an order service instance.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// Create persists a pending order with its line snapshots in one transaction.
func (s *service) Create(ctx context.Context, input NewOrderInput) (*OrderDTO, error) {
	if err := validateNewOrder(input); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			PriceCents:  line.PriceCents,
			Quantity:    line.Quantity,
		})
	}

	order := &models.Order{
		UserEmail:  strings.TrimSpace(input.UserEmail),
		UserName:   strings.TrimSpace(input.UserName),
		UserPhone:  strings.TrimSpace(input.UserPhone),
		TotalCents: input.TotalCents,
		Status:     enums.OrderStatusPending,
		Items:      items,
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).CreateOrder(ctx, order)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
	}

	dto := toOrderDTO(order)
	return &dto, nil
}

// Get returns a single order with its items.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}
	dto := toOrderDTO(order)
	return &dto, nil
}

// List returns all orders, newest first.
func (s *service) List(ctx context.Context, params pagination.Params) (*OrderList, error) {
	rows, nextCursor, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders")
	}
	return toOrderList(rows, nextCursor), nil
}

// ListByEmail returns the shopper's own orders, newest first.
func (s *service) ListByEmail(ctx context.Context, email string, params pagination.Params) (*OrderList, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	rows, nextCursor, err := s.repo.ListByEmail(ctx, email, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders by email")
	}
	return toOrderList(rows, nextCursor), nil
}

// UpdateStatus applies a guarded status transition.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*OrderDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", status))
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot transition order from %s to %s", order.Status, status)).
			WithDetails(map[string]any{"from": order.Status, "to": status})
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update order status")
	}

	order.Status = status
	dto := toOrderDTO(order)
	return &dto, nil
}

// Stats aggregates order volume counters.
func (s *service) Stats(ctx context.Context) (*OrderStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: order stats")
	}
	return stats, nil
}

func validateNewOrder(input NewOrderInput) error {
	if strings.TrimSpace(input.UserEmail) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user_email is required")
	}
	if strings.TrimSpace(input.UserName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user_name is required")
	}
	if input.TotalCents < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "total_cents cannot be negative")
	}
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}
	for _, line := range input.Items {
		if strings.TrimSpace(line.ProductName) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "item product_name is required")
		}
		if line.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
		if line.PriceCents < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item price_cents cannot be negative")
		}
	}
	return nil
}

func toOrderDTO(order *models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			PriceCents:  item.PriceCents,
			Quantity:    item.Quantity,
		})
	}
	return OrderDTO{
		ID:         order.ID,
		UserEmail:  order.UserEmail,
		UserName:   order.UserName,
		UserPhone:  order.UserPhone,
		TotalCents: order.TotalCents,
		Total:      money.Format(order.TotalCents),
		Status:     order.Status,
		Items:      items,
		CreatedAt:  order.CreatedAt,
	}
}

func toOrderList(rows []models.Order, nextCursor string) *OrderList {
	dtos := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toOrderDTO(&rows[i]))
	}
	return &OrderList{Orders: dtos, NextCursor: nextCursor}
}
