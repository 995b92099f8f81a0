package middleware

import (
	"net/http"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/validators"
	pkgauth "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/auth"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/config"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
)

// SessionCookie carries the browser session identifier between requests.
const SessionCookie = "sf_session"

// SessionHeader is the header fallback for clients that do not send cookies.
const SessionHeader = "X-Session-Id"

// Identity seeds the request context from the bearer token without
// verifying its signature. The storefront API is the authority; a forged
// token buys nothing because every proxied call is re-checked there. A
// malformed token simply yields an anonymous request.
func Identity(cfg config.AuthConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if sessionID := sessionIDFromRequest(r); sessionID != "" {
				ctx = WithSessionID(ctx, sessionID)
				if logg != nil {
					ctx = logg.WithSessionID(ctx, sessionID)
				}
			}

			token := validators.BearerToken(r.Header.Get("Authorization"))
			if token != "" {
				ctx = WithToken(ctx, token)
				identity := pkgauth.DeriveIdentity(token, cfg.AdminRole)
				if identity.UserID != "" {
					ctx = WithUserID(ctx, identity.UserID)
					ctx = WithRole(ctx, identity.Role)
					ctx = WithIsAdmin(ctx, identity.IsAdmin)
					if logg != nil {
						ctx = logg.WithFields(ctx, map[string]any{
							"user_id":    identity.UserID,
							"actor_role": identity.Role,
						})
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no bearer token at all.
func RequireAuth(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if TokenFromContext(r.Context()) == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionIDFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(SessionHeader)
}
