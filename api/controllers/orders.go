package controllers

import (
	"net/http"
	"strings"

	"github.com/arjunkhanna/craftkart-backend/api/responses"
	"github.com/arjunkhanna/craftkart-backend/api/validators"
	ordersvc "github.com/arjunkhanna/craftkart-backend/internal/orders"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
	"github.com/arjunkhanna/craftkart-backend/pkg/logger"
)

// ListOrdersByEmail serves a shopper's own orders, scoped by email.
func ListOrdersByEmail(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if email == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "email query parameter is required"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListByEmail(r.Context(), email, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}
