// Package reviews exposes review listing and submission for menu items.
package reviews

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/middleware"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/validators"
	reviewsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/reviews"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/pagination"
)

// ListByProduct serves one page of the reviews for one menu item.
func ListByProduct(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
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

		list, err := svc.ByProduct(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "productId"), pagination.Params{Limit: limit, Page: page})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// Submit records a new review for one menu item.
func Submit(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
			return
		}

		var payload submitReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		submission := reviewsvc.Submission{
			Rating:  payload.Rating,
			Comment: validators.SanitizeString(payload.Comment, maxCommentLength),
		}

		err := svc.Submit(r.Context(), middleware.TokenFromContext(r.Context()), chi.URLParam(r, "productId"), submission)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"status": "submitted"})
	}
}
