// Package auth manages the gateway-side session around storefront API tokens.
package auth

import (
	"net/http"
	"time"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/middleware"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/validators"
	sessionsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/session"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
)

type loginRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// Login opens a session around a storefront API access token. The token is
// decoded for display identity only; the storefront API stays the authority
// on every authenticated call.
func Login(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID, state, err := svc.Login(r.Context(), payload.AccessToken)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setSessionCookie(w, sessionID)
		responses.WriteSuccessStatus(w, http.StatusCreated, state)
	}
}

// Me reports the caller's current session state. An unknown or expired
// session is an anonymous one, not an error.
func Me(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		state, err := svc.Current(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, state)
	}
}

// Refresh exchanges the session's token for a fresh one via the storefront
// API. A failed refresh ends the session.
func Refresh(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		state, err := svc.Refresh(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			clearSessionCookie(w)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, state)
	}
}

// Logout ends the session locally and tells the storefront API. The local
// session is gone even when the upstream call fails.
func Logout(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		err := svc.Logout(r.Context(), middleware.SessionIDFromContext(r.Context()))
		clearSessionCookie(w)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
