package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/routes"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/cart"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/dashboard"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/favorites"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/reviews"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/session"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/config"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/db"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/metrics"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/querycache"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/redis"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/upstream"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	mirrorClient, err := db.New(context.Background(), cfg.Mirror, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap cart mirror", err)
		os.Exit(1)
	}
	defer func() {
		if err := mirrorClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing cart mirror", err)
		}
	}()

	cartMirror := cart.NewMirror(mirrorClient.DB())
	if err := cartMirror.Migrate(); err != nil {
		logg.Error(context.Background(), "failed to migrate cart mirror", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	upstreamMetrics := metrics.NewUpstreamMetrics(prometheus.DefaultRegisterer)
	upstreamClient, err := upstream.NewClient(cfg.Upstream, upstream.WithMetrics(upstreamMetrics))
	if err != nil {
		logg.Error(context.Background(), "failed to create storefront api client", err)
		os.Exit(1)
	}

	queryCache := querycache.New(redisClient, cfg.Cache.QueryTTL, logg)
	cartCache := querycache.New(redisClient, cfg.Cache.CartTTL, logg)

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Upstream: upstreamClient,
		Cache:    queryCache,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	adminCatalogService, err := catalog.NewAdminService(upstreamClient, catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin catalog service", err)
		os.Exit(1)
	}

	reviewsService, err := reviews.NewService(reviews.ServiceParams{
		Upstream: upstreamClient,
		Cache:    queryCache,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		Upstream: upstreamClient,
		Cache:    cartCache,
		Mirror:   cartMirror,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	sessionService, err := session.NewService(session.ServiceParams{
		Upstream:  upstreamClient,
		Store:     redisClient,
		AdminRole: cfg.Auth.AdminRole,
		TTL:       cfg.Auth.SessionTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}

	favoritesService, err := favorites.NewService(favorites.ServiceParams{
		Store: redisClient,
		TTL:   cfg.Cache.FavoritesTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront gateway")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			mirrorClient,
			redisClient,
			catalogService,
			adminCatalogService,
			reviewsService,
			cartService,
			sessionService,
			favoritesService,
			dashboard.NewService(),
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront gateway stopped unexpectedly", err)
		os.Exit(1)
	}
}
