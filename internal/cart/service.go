package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/internal/products"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
)

// Service exposes the cart operations backed by the session store.
type Service interface {
	Get(ctx context.Context, sessionID string) (*CartDTO, error)
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartDTO, error)
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, sessionID string) error
}

type productFinder interface {
	Get(ctx context.Context, id uuid.UUID) (*products.ProductDTO, error)
}

type service struct {
	store   *Store
	catalog productFinder
}

// NewService wires the cart store to the catalog used for product snapshots.
func NewService(store *Store, catalog productFinder) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("product catalog is required")
	}
	return &service{store: store, catalog: catalog}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*CartDTO, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.AddItem(Line{
		ProductID:     product.ID,
		Name:          product.Name,
		PriceCents:    product.PriceCents,
		StockQuantity: product.Quantity,
		Category:      product.Category,
		ImageURL:      product.ImageURL,
		Quantity:      quantity,
	})

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(productID, quantity)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartDTO, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(productID)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
