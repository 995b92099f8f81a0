package session

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/auth"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/upstream"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

// State is what the gateway holds for one logged-in browser session. The
// token is decoded, never verified: the storefront API is the authority
// and rejects stale or forged tokens on every proxied call.
type State struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
	LoggedIn bool   `json:"logged_in"`
}

// refreshResponse is the payload the storefront API returns on refresh.
type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

type fetcher interface {
	Do(ctx context.Context, req upstream.Request) (json.RawMessage, error)
}

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}

// ServiceParams groups dependencies for the session service.
type ServiceParams struct {
	Upstream  fetcher
	Store     sessionStore
	AdminRole string
	TTL       time.Duration
}

// Service tracks who the caller is across requests.
type Service interface {
	Login(ctx context.Context, token string) (string, State, error)
	Current(ctx context.Context, sessionID string) (State, error)
	Refresh(ctx context.Context, sessionID string) (State, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	upstream  fetcher
	store     sessionStore
	adminRole string
	ttl       time.Duration
}

// NewService builds a session service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Upstream == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upstream client is required")
	}
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session store is required")
	}
	if params.TTL <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session ttl must be positive")
	}
	return &service{
		upstream:  params.Upstream,
		store:     params.Store,
		adminRole: params.AdminRole,
		ttl:       params.TTL,
	}, nil
}

// Login decodes the access token, derives the caller's identity, and
// opens a new session around it.
func (s *service) Login(ctx context.Context, token string) (string, State, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", State{}, pkgerrors.New(pkgerrors.CodeValidation, "access token is required")
	}

	identity := auth.DeriveIdentity(trimmed, s.adminRole)
	state := State{
		Token:    trimmed,
		UserID:   identity.UserID,
		Role:     identity.Role,
		IsAdmin:  identity.IsAdmin,
		LoggedIn: true,
	}

	sessionID := uuid.NewString()
	if err := s.save(ctx, sessionID, state); err != nil {
		return "", State{}, err
	}
	return sessionID, state, nil
}

// Current loads the session state. An unknown session is an anonymous
// one, not an error.
func (s *service) Current(ctx context.Context, sessionID string) (State, error) {
	if strings.TrimSpace(sessionID) == "" {
		return State{}, nil
	}

	raw, err := s.store.Get(ctx, s.store.SessionKey(sessionID))
	if err != nil {
		if err == redislib.Nil {
			return State{}, nil
		}
		return State{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load session")
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return State{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode session")
	}
	return state, nil
}

// Refresh exchanges the session's token for a fresh one upstream and
// re-derives the identity from it. A failed refresh ends the session.
func (s *service) Refresh(ctx context.Context, sessionID string) (State, error) {
	current, err := s.Current(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	if !current.LoggedIn {
		return State{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}

	data, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodPost,
		Path:     "/auth/refresh",
		Token:    current.Token,
		Resource: "auth",
	})
	if err != nil {
		s.clear(ctx, sessionID)
		return State{}, err
	}

	var refreshed refreshResponse
	if err := json.Unmarshal(data, &refreshed); err != nil {
		s.clear(ctx, sessionID)
		return State{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode refresh payload")
	}
	if strings.TrimSpace(refreshed.AccessToken) == "" {
		s.clear(ctx, sessionID)
		return State{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "refresh returned no token")
	}

	identity := auth.DeriveIdentity(refreshed.AccessToken, s.adminRole)
	state := State{
		Token:    refreshed.AccessToken,
		UserID:   identity.UserID,
		Role:     identity.Role,
		IsAdmin:  identity.IsAdmin,
		LoggedIn: true,
	}
	if err := s.save(ctx, sessionID, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Logout tells the storefront API to drop the refresh cookie and clears
// the session regardless of whether that call succeeded.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	current, err := s.Current(ctx, sessionID)
	if err != nil {
		return err
	}

	var upstreamErr error
	if current.LoggedIn {
		_, upstreamErr = s.upstream.Do(ctx, upstream.Request{
			Method:   http.MethodPost,
			Path:     "/auth/logout",
			Token:    current.Token,
			Resource: "auth",
		})
	}

	s.clear(ctx, sessionID)
	return upstreamErr
}

func (s *service) save(ctx context.Context, sessionID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session")
	}
	if err := s.store.Set(ctx, s.store.SessionKey(sessionID), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store session")
	}
	return nil
}

func (s *service) clear(ctx context.Context, sessionID string) {
	_ = s.store.Del(ctx, s.store.SessionKey(sessionID))
}
