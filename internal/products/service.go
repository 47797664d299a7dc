package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arjunkhanna/craftkart-backend/pkg/config"
	"github.com/arjunkhanna/craftkart-backend/pkg/db/models"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
	"github.com/arjunkhanna/craftkart-backend/pkg/money"
	"github.com/arjunkhanna/craftkart-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes catalog operations for the storefront and the admin surface.
type Service interface {
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*ProductList, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Featured(ctx context.Context) ([]ProductDTO, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restock(ctx context.Context, id uuid.UUID, quantity int) (*ProductDTO, error)
	Stats(ctx context.Context) (*CatalogStats, error)
}

type service struct {
	repo *Repository
	cfg  config.CatalogConfig
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, cfg config.CatalogConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if cfg.LowStockThreshold <= 0 {
		return nil, fmt.Errorf("low stock threshold must be positive")
	}
	if cfg.FeaturedLimit <= 0 {
		return nil, fmt.Errorf("featured limit must be positive")
	}
	return &service{repo: repo, cfg: cfg}, nil
}

// List returns a filtered catalog page.
func (s *service) List(ctx context.Context, params pagination.Params, filters ListFilters) (*ProductList, error) {
	rows, nextCursor, err := s.repo.List(ctx, params, filters)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDTO(&rows[i]))
	}
	return &ProductList{Products: dtos, NextCursor: nextCursor}, nil
}

// Get returns a single product.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	dto := toDTO(product)
	return &dto, nil
}

// Featured returns the home-page featured products.
func (s *service) Featured(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.Featured(ctx, s.cfg.FeaturedLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list featured products")
	}
	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDTO(&rows[i]))
	}
	return dtos, nil
}

// Categories returns the distinct category names.
func (s *service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list categories")
	}
	return categories, nil
}

// Create validates and inserts a new catalog product.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:                strings.TrimSpace(input.Name),
		Description:         input.Description,
		PriceCents:          input.PriceCents,
		CompareAtPriceCents: input.CompareAtPriceCents,
		Quantity:            input.Quantity,
		Category:            strings.TrimSpace(input.Category),
		ImageURL:            input.ImageURL,
		IsFeatured:          input.IsFeatured,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	dto := toDTO(created)
	return &dto, nil
}

// Update applies the provided fields to an existing product.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.PriceCents != nil {
		if *input.PriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_cents cannot be negative")
		}
		product.PriceCents = *input.PriceCents
	}
	if input.CompareAtPriceCents != nil {
		product.CompareAtPriceCents = input.CompareAtPriceCents
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
		}
		product.Quantity = *input.Quantity
	}
	if input.Category != nil {
		if strings.TrimSpace(*input.Category) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category cannot be empty")
		}
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := validateComparePrice(product.PriceCents, product.CompareAtPriceCents); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	dto := toDTO(updated)
	return &dto, nil
}

// Delete removes a product from the catalog.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	return nil
}

// Restock overwrites the stock level for a product.
func (s *service) Restock(ctx context.Context, id uuid.UUID, quantity int) (*ProductDTO, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	if err := s.repo.SetQuantity(ctx, id, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: set product quantity")
	}
	return s.Get(ctx, id)
}

// Stats aggregates stock health counters.
func (s *service) Stats(ctx context.Context) (*CatalogStats, error) {
	stats, err := s.repo.Stats(ctx, s.cfg.LowStockThreshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: catalog stats")
	}
	return stats, nil
}

func validateCreate(input CreateProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
	}
	if strings.TrimSpace(input.Category) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category cannot be empty")
	}
	if input.PriceCents < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price_cents cannot be negative")
	}
	if input.Quantity < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	return validateComparePrice(input.PriceCents, input.CompareAtPriceCents)
}

func validateComparePrice(priceCents int, compareAt *int) error {
	if compareAt == nil {
		return nil
	}
	if *compareAt <= priceCents {
		return pkgerrors.New(pkgerrors.CodeValidation, "compare_at_price_cents must exceed price_cents")
	}
	return nil
}

func toDTO(product *models.Product) ProductDTO {
	dto := ProductDTO{
		ID:                  product.ID,
		Name:                product.Name,
		Description:         product.Description,
		PriceCents:          product.PriceCents,
		Price:               money.Format(product.PriceCents),
		CompareAtPriceCents: product.CompareAtPriceCents,
		Quantity:            product.Quantity,
		InStock:             product.Quantity > 0,
		Category:            product.Category,
		ImageURL:            product.ImageURL,
		IsFeatured:          product.IsFeatured,
		CreatedAt:           product.CreatedAt,
		UpdatedAt:           product.UpdatedAt,
	}
	if pct := money.DiscountPercent(product.PriceCents, product.CompareAtPriceCents); pct > 0 {
		dto.DiscountPercent = &pct
	}
	return dto
}
