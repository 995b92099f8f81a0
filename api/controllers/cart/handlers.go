package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/middleware"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/validators"
	cartsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/cart"
	catalogsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
)

// AddItem resolves the product and posts it to the upstream cart. When
// the product cannot be found the add quietly does nothing, mirroring
// how the storefront UI behaved before the product finished loading.
func AddItem(svc cartsvc.Service, catalog catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := middleware.TokenFromContext(r.Context())

		product, err := catalog.Product(r.Context(), token, payload.MenuItemID)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				product = nil
			} else {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		result, err := svc.AddToCart(r.Context(), token, middleware.SessionIDFromContext(r.Context()), product, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if result == nil {
			responses.WriteSuccess(w, nil)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// ListItems serves the session's cart lines.
func ListItems(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		items, err := svc.Items(r.Context(), middleware.TokenFromContext(r.Context()), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// RemoveItem deletes one cart line.
func RemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		err := svc.RemoveItem(r.Context(), middleware.TokenFromContext(r.Context()), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}

// UpdateQuantity patches one cart line's quantity.
func UpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err := svc.UpdateItemQuantity(r.Context(), middleware.TokenFromContext(r.Context()), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "itemId"), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

// Summary totals the current cart with the chosen delivery tier.
func Summary(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		items, err := svc.Items(r.Context(), middleware.TokenFromContext(r.Context()), middleware.SessionIDFromContext(r.Context()))
		if err != nil && !isEmptyCartError(err) {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Summarize(items, r.URL.Query().Get("delivery")))
	}
}

// DeliveryOptions lists the fixed delivery tiers.
func DeliveryOptions(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.DeliveryOptions())
	}
}

// An upstream 404 on the cart listing just means nothing has been added
// yet; the summary should render the empty state, not an error.
func isEmptyCartError(err error) bool {
	typed := pkgerrors.As(err)
	return typed != nil && typed.Code() == pkgerrors.CodeNotFound
}
