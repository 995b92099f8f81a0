package favorites

import (
	"context"
	"strings"
	"time"

	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
)

// setStore is the slice of the redis client the favorites set needs.
type setStore interface {
	SAdd(ctx context.Context, key string, ttl time.Duration, members ...any) error
	SRem(ctx context.Context, key string, members ...any) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SIsMember(ctx context.Context, key string, member any) (bool, error)
	FavoritesKey(sessionID string) string
}

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	Store setStore
	TTL   time.Duration
}

// Service tracks which menu items a session has hearted. Favorites are a
// per-session convenience held in redis, not upstream state.
type Service interface {
	Toggle(ctx context.Context, sessionID, productID string) (bool, error)
	List(ctx context.Context, sessionID string) ([]string, error)
	IsFavorite(ctx context.Context, sessionID, productID string) (bool, error)
}

type service struct {
	store setStore
	ttl   time.Duration
}

// NewService builds a favorites service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorites store is required")
	}
	if params.TTL <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorites ttl must be positive")
	}
	return &service{store: params.Store, ttl: params.TTL}, nil
}

// Toggle flips the product's favorite flag and reports the new state.
func (s *service) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	key, product, err := s.validate(sessionID, productID)
	if err != nil {
		return false, err
	}

	favorite, err := s.store.SIsMember(ctx, key, product)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read favorite state")
	}

	if favorite {
		if err := s.store.SRem(ctx, key, product); err != nil {
			return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove favorite")
		}
		return false, nil
	}

	if err := s.store.SAdd(ctx, key, s.ttl, product); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add favorite")
	}
	return true, nil
}

// List returns every favorited product ID for the session.
func (s *service) List(ctx context.Context, sessionID string) ([]string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	members, err := s.store.SMembers(ctx, s.store.FavoritesKey(sessionID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list favorites")
	}
	return members, nil
}

// IsFavorite reports whether the session has hearted the product.
func (s *service) IsFavorite(ctx context.Context, sessionID, productID string) (bool, error) {
	key, product, err := s.validate(sessionID, productID)
	if err != nil {
		return false, err
	}
	favorite, err := s.store.SIsMember(ctx, key, product)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read favorite state")
	}
	return favorite, nil
}

func (s *service) validate(sessionID, productID string) (string, string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	product := strings.TrimSpace(productID)
	if product == "" {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.store.FavoritesKey(sessionID), product, nil
}
