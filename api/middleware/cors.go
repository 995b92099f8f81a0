package middleware

import (
	"net/http"

	pkgconfig "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/config"
	"github.com/go-chi/cors"
)

// CORS returns middleware that applies the gateway's allowed origin policy.
func CORS(cfg pkgconfig.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-Id", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
