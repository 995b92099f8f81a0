// Package favorites exposes the session-scoped favorites list.
package favorites

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/middleware"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	favoritesvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/favorites"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
)

// Toggle flips a menu item in and out of the session's favorites.
func Toggle(svc favoritesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		favorite, err := svc.Toggle(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"favorite": favorite})
	}
}

// List serves the session's favorite menu item IDs.
func List(svc favoritesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		ids, err := svc.List(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, ids)
	}
}
