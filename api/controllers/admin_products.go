package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/arjunkhanna/craftkart-backend/api/responses"
	"github.com/arjunkhanna/craftkart-backend/api/validators"
	productsvc "github.com/arjunkhanna/craftkart-backend/internal/products"
	"github.com/arjunkhanna/craftkart-backend/pkg/logger"
)

type createProductRequest struct {
	Name                string  `json:"name" validate:"required"`
	Description         *string `json:"description,omitempty"`
	PriceCents          int     `json:"price_cents" validate:"min=0"`
	CompareAtPriceCents *int    `json:"compare_at_price_cents,omitempty" validate:"omitempty,min=0"`
	Quantity            int     `json:"quantity" validate:"min=0"`
	Category            string  `json:"category" validate:"required"`
	ImageURL            *string `json:"image_url,omitempty"`
	IsFeatured          bool    `json:"is_featured"`
}

type updateProductRequest struct {
	Name                *string `json:"name,omitempty"`
	Description         *string `json:"description,omitempty"`
	PriceCents          *int    `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	CompareAtPriceCents *int    `json:"compare_at_price_cents,omitempty" validate:"omitempty,min=0"`
	Quantity            *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Category            *string `json:"category,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
	IsFeatured          *bool   `json:"is_featured,omitempty"`
}

type restockRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// AdminCreateProduct handles product creation.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), productsvc.CreateProductInput{
			Name:                strings.TrimSpace(payload.Name),
			Description:         payload.Description,
			PriceCents:          payload.PriceCents,
			CompareAtPriceCents: payload.CompareAtPriceCents,
			Quantity:            payload.Quantity,
			Category:            strings.TrimSpace(payload.Category),
			ImageURL:            payload.ImageURL,
			IsFeatured:          payload.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct handles partial product updates.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, productsvc.UpdateProductInput{
			Name:                payload.Name,
			Description:         payload.Description,
			PriceCents:          payload.PriceCents,
			CompareAtPriceCents: payload.CompareAtPriceCents,
			Quantity:            payload.Quantity,
			Category:            payload.Category,
			ImageURL:            payload.ImageURL,
			IsFeatured:          payload.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product from the catalog.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminRestockProduct sets the stock quantity for a product.
func AdminRestockProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload restockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Restock(r.Context(), id, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminProductStats serves the catalog counters for the dashboard.
func AdminProductStats(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
