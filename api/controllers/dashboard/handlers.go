// Package dashboard serves the admin analytics views.
package dashboard

import (
	"net/http"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	dashboardsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/dashboard"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
)

// Stats serves the headline stat cards.
func Stats(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Stats())
	}
}

// SalesOverview serves the weekly sales chart data.
func SalesOverview(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.SalesOverview())
	}
}

// TopDishes serves the dish performance table, filtered by ?category and
// ordered by ?sort (sales, revenue or rating).
func TopDishes(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		q := r.URL.Query()
		responses.WriteSuccess(w, svc.TopDishes(q.Get("category"), q.Get("sort")))
	}
}

// RecentOrders serves the latest orders, filtered by ?status and ?delivery.
func RecentOrders(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		q := r.URL.Query()
		responses.WriteSuccess(w, svc.RecentOrders(q.Get("status"), q.Get("delivery")))
	}
}

// CategoryPerformance serves the sales share per menu category.
func CategoryPerformance(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.CategoryPerformance())
	}
}

// RevenueTrend serves the revenue chart for ?range=monthly or weekly.
func RevenueTrend(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		trend, err := svc.RevenueTrend(r.URL.Query().Get("range"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, trend)
	}
}
