package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/middleware"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/validators"
	catalogsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	favoritesvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/favorites"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/pagination"
)

// ListActiveCategories serves the category rail of the storefront.
func ListActiveCategories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.ActiveCategories(r.Context(), middleware.TokenFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}

// ListMenu serves one page of the full menu.
func ListMenu(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := validators.ParseQueryInt(r, "page", pagination.FirstPage, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.Menu(r.Context(), middleware.TokenFromContext(r.Context()), pagination.Params{Limit: limit, Page: page})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// ListByCategory serves one page of the menu items of one category.
func ListByCategory(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := validators.ParseQueryInt(r, "page", pagination.FirstPage, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ProductsByCategory(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "categoryId"), pagination.Params{Limit: limit, Page: page})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// GetProduct serves one menu item. When the caller has a session, the
// session's favorite flag is merged onto the product.
func GetProduct(svc catalogsvc.Service, favs favoritesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.Product(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if favs != nil && product != nil && sessionID != "" {
			if favorite, err := favs.IsFavorite(r.Context(), sessionID, product.ID); err == nil {
				product.Favorite = favorite
			}
		}

		responses.WriteSuccess(w, product)
	}
}
