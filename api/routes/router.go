package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers"
	admincontrollers "github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers/admin"
	authcontrollers "github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers/auth"
	cartcontrollers "github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers/cart"
	catalogcontrollers "github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers/catalog"
	dashboardcontrollers "github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers/dashboard"
	favoritecontrollers "github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers/favorites"
	reviewcontrollers "github.com/THEGunDevil/Food-E-Commerce-Frontend/api/controllers/reviews"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/middleware"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/cart"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/dashboard"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/favorites"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/reviews"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/session"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/config"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	mirror controllers.Pinger,
	cache controllers.Pinger,
	catalogService catalog.Service,
	adminCatalogService catalog.AdminService,
	reviewsService reviews.Service,
	cartService cart.Service,
	sessionService session.Service,
	favoritesService favorites.Service,
	dashboardService dashboard.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Identity(cfg.Auth, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, mirror, cache))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories/active", catalogcontrollers.ListActiveCategories(catalogService, logg))

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", catalogcontrollers.ListMenu(catalogService, logg))
			r.Get("/menu/{productId}", catalogcontrollers.GetProduct(catalogService, favoritesService, logg))
			r.Get("/{categoryId}", catalogcontrollers.ListByCategory(catalogService, logg))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/menu/{productId}", reviewcontrollers.ListByProduct(reviewsService, logg))
			r.With(middleware.RequireAuth(logg)).Post("/menus/{productId}", reviewcontrollers.Submit(reviewsService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireAuth(logg))
			r.Get("/items", cartcontrollers.ListItems(cartService, logg))
			r.Post("/add-items", cartcontrollers.AddItem(cartService, catalogService, logg))
			r.Delete("/remove-item/{itemId}", cartcontrollers.RemoveItem(cartService, logg))
			r.Patch("/update-quantity/{itemId}", cartcontrollers.UpdateQuantity(cartService, logg))
			r.Get("/summary", cartcontrollers.Summary(cartService, logg))
			r.Get("/delivery-options", cartcontrollers.DeliveryOptions(cartService, logg))
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favoritecontrollers.List(favoritesService, logg))
			r.Post("/{productId}/toggle", favoritecontrollers.Toggle(favoritesService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authcontrollers.Login(sessionService, logg))
			r.Get("/me", authcontrollers.Me(sessionService, logg))
			r.Post("/refresh", authcontrollers.Refresh(sessionService, logg))
			r.Post("/logout", authcontrollers.Logout(sessionService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(logg))
		r.Use(middleware.RequireAdmin(logg))

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dashboardcontrollers.Stats(dashboardService, logg))
			r.Get("/sales", dashboardcontrollers.SalesOverview(dashboardService, logg))
			r.Get("/top-dishes", dashboardcontrollers.TopDishes(dashboardService, logg))
			r.Get("/recent-orders", dashboardcontrollers.RecentOrders(dashboardService, logg))
			r.Get("/categories", dashboardcontrollers.CategoryPerformance(dashboardService, logg))
			r.Get("/revenue", dashboardcontrollers.RevenueTrend(dashboardService, logg))
		})

		r.Route("/menus", func(r chi.Router) {
			r.Post("/", admincontrollers.CreateMenuItem(adminCatalogService, logg))
			r.Patch("/menu/{productId}", admincontrollers.UpdateMenuItem(adminCatalogService, logg))
			r.Delete("/menu/{productId}", admincontrollers.DeleteMenuItem(adminCatalogService, logg))
		})
	})

	return r
}
