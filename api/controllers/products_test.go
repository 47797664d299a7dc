package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	productsvc "github.com/arjunkhanna/craftkart-backend/internal/products"
	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
	"github.com/arjunkhanna/craftkart-backend/pkg/pagination"
)

type stubProductService struct {
	list     *productsvc.ProductList
	product  *productsvc.ProductDTO
	featured []productsvc.ProductDTO
	err      error

	lastParams  pagination.Params
	lastFilters productsvc.ListFilters
	lastGetID   uuid.UUID
}

func (s *stubProductService) List(ctx context.Context, params pagination.Params, filters productsvc.ListFilters) (*productsvc.ProductList, error) {
	s.lastParams = params
	s.lastFilters = filters
	return s.list, s.err
}

func (s *stubProductService) Get(ctx context.Context, id uuid.UUID) (*productsvc.ProductDTO, error) {
	s.lastGetID = id
	return s.product, s.err
}

func (s *stubProductService) Featured(ctx context.Context) ([]productsvc.ProductDTO, error) {
	return s.featured, s.err
}

func (s *stubProductService) Categories(ctx context.Context) ([]string, error) {
	return []string{"pottery", "textiles"}, s.err
}

func (s *stubProductService) Create(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubProductService) Update(ctx context.Context, id uuid.UUID, input productsvc.UpdateProductInput) (*productsvc.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func (s *stubProductService) Restock(ctx context.Context, id uuid.UUID, quantity int) (*productsvc.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubProductService) Stats(ctx context.Context) (*productsvc.CatalogStats, error) {
	return &productsvc.CatalogStats{}, s.err
}

func TestListProductsParsesFilters(t *testing.T) {
	svc := &stubProductService{list: &productsvc.ProductList{Products: []productsvc.ProductDTO{}}}
	handler := ListProducts(svc, nil)

	target := "/api/v1/products?limit=10&q=vase&category=pottery&sort=price_asc&price_min_cents=500&price_max_cents=5000"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastParams.Limit != 10 {
		t.Fatalf("unexpected limit: %d", svc.lastParams.Limit)
	}
	if svc.lastFilters.Query != "vase" {
		t.Fatalf("unexpected query: %s", svc.lastFilters.Query)
	}
	if svc.lastFilters.Category == nil || *svc.lastFilters.Category != "pottery" {
		t.Fatalf("unexpected category: %v", svc.lastFilters.Category)
	}
	if svc.lastFilters.Sort != enums.ProductSortPriceAsc {
		t.Fatalf("unexpected sort: %s", svc.lastFilters.Sort)
	}
	if svc.lastFilters.PriceMinCents == nil || *svc.lastFilters.PriceMinCents != 500 {
		t.Fatalf("unexpected price min: %v", svc.lastFilters.PriceMinCents)
	}
	if svc.lastFilters.PriceMaxCents == nil || *svc.lastFilters.PriceMaxCents != 5000 {
		t.Fatalf("unexpected price max: %v", svc.lastFilters.PriceMaxCents)
	}
}

func TestListProductsRejectsUnknownSort(t *testing.T) {
	handler := ListProducts(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sort=alphabetical", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProductByID(t *testing.T) {
	productID := uuid.New()
	svc := &stubProductService{product: &productsvc.ProductDTO{ID: productID, Name: "Jaipur Blue Vase"}}
	handler := GetProduct(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String(), nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", productID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastGetID != productID {
		t.Fatalf("unexpected id: %s", svc.lastGetID)
	}

	var envelope struct {
		Data productsvc.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Name != "Jaipur Blue Vase" {
		t.Fatalf("unexpected name: %s", envelope.Data.Name)
	}
}

func TestGetProductRejectsMalformedID(t *testing.T) {
	handler := GetProduct(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/nope", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "nope")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := &stubProductService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := GetProduct(svc, nil)

	productID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String(), nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", productID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestProductCategories(t *testing.T) {
	handler := ProductCategories(&stubProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/categories", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Categories []string `json:"categories"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Categories) != 2 {
		t.Fatalf("unexpected categories: %v", envelope.Data.Categories)
	}
}
