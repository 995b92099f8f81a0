// Package admin proxies menu management to the storefront API.
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/middleware"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/validators"
	catalogsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
)

// CreateMenuItem adds a menu item and drops the stale catalog cache entries.
func CreateMenuItem(svc catalogsvc.AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin catalog service unavailable"))
			return
		}

		var input catalogsvc.MenuItemInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateMenuItem(r.Context(), middleware.TokenFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// UpdateMenuItem edits a menu item and drops the stale catalog cache entries.
func UpdateMenuItem(svc catalogsvc.AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin catalog service unavailable"))
			return
		}

		var input catalogsvc.MenuItemInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateMenuItem(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "productId"), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// DeleteMenuItem removes a menu item and drops the stale catalog cache entries.
func DeleteMenuItem(svc catalogsvc.AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin catalog service unavailable"))
			return
		}

		err := svc.DeleteMenuItem(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
