package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/pagination"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/querycache"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/upstream"
)

// Cache resources are versioned per name, so one invalidation covers every
// parameter combination of a listing.
const (
	ResourceCategories = "categories"
	ResourceMenu       = "menu"
	ResourceCategory   = "category"
	ResourceProduct    = "product"
)

// fetcher is the slice of the upstream client the catalog needs.
type fetcher interface {
	Do(ctx context.Context, req upstream.Request) (json.RawMessage, error)
}

// queryCache decouples the service from the redis-backed cache in tests.
type queryCache interface {
	Do(ctx context.Context, resource string, params []string, fetch querycache.FetchFunc) (json.RawMessage, error)
	Invalidate(ctx context.Context, resource string) error
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Upstream fetcher
	Cache    queryCache
}

// Service reads categories and menu items from the storefront API through
// the query cache.
type Service interface {
	ActiveCategories(ctx context.Context, token string) ([]Category, error)
	Menu(ctx context.Context, token string, page pagination.Params) ([]Product, error)
	ProductsByCategory(ctx context.Context, token, categoryID string, page pagination.Params) ([]Product, error)
	Product(ctx context.Context, token, productID string) (*Product, error)
	InvalidateMenu(ctx context.Context) error
}

type service struct {
	upstream fetcher
	cache    queryCache
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Upstream == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upstream client is required")
	}
	if params.Cache == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query cache is required")
	}
	return &service{upstream: params.Upstream, cache: params.Cache}, nil
}

// ActiveCategories lists the categories flagged active upstream.
func (s *service) ActiveCategories(ctx context.Context, token string) ([]Category, error) {
	data, err := s.cache.Do(ctx, ResourceCategories, []string{"active"}, func(ctx context.Context) (json.RawMessage, error) {
		return s.upstream.Do(ctx, upstream.Request{
			Method:   http.MethodGet,
			Path:     "/categories/active",
			Token:    token,
			Resource: ResourceCategories,
		})
	})
	if err != nil {
		return nil, err
	}

	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode categories payload")
	}
	return categories, nil
}

// Menu returns one page of the full menu listing.
func (s *service) Menu(ctx context.Context, token string, page pagination.Params) ([]Product, error) {
	values := page.QueryValues()
	query := url.Values{}
	for key, value := range values {
		query.Set(key, value)
	}

	data, err := s.cache.Do(ctx, ResourceMenu, []string{values["limit"], values["page"]}, func(ctx context.Context) (json.RawMessage, error) {
		return s.upstream.Do(ctx, upstream.Request{
			Method:   http.MethodGet,
			Path:     "/menus",
			Query:    query,
			Token:    token,
			Resource: ResourceMenu,
		})
	})
	if err != nil {
		return nil, err
	}

	return decodeProducts(data)
}

// ProductsByCategory lists one page of the menu items of a single category.
func (s *service) ProductsByCategory(ctx context.Context, token, categoryID string, page pagination.Params) ([]Product, error) {
	trimmed := strings.TrimSpace(categoryID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id is required")
	}

	values := page.QueryValues()
	query := url.Values{}
	for key, value := range values {
		query.Set(key, value)
	}

	data, err := s.cache.Do(ctx, ResourceCategory, []string{trimmed, values["limit"], values["page"]}, func(ctx context.Context) (json.RawMessage, error) {
		return s.upstream.Do(ctx, upstream.Request{
			Method:   http.MethodGet,
			Path:     "/menus/" + url.PathEscape(trimmed),
			Query:    query,
			Token:    token,
			Resource: ResourceCategory,
		})
	})
	if err != nil {
		return nil, err
	}

	return decodeProducts(data)
}

// Product fetches one menu item by ID.
func (s *service) Product(ctx context.Context, token, productID string) (*Product, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	data, err := s.cache.Do(ctx, ResourceProduct, []string{trimmed}, func(ctx context.Context) (json.RawMessage, error) {
		return s.upstream.Do(ctx, upstream.Request{
			Method:   http.MethodGet,
			Path:     "/menus/menu/" + url.PathEscape(trimmed),
			Token:    token,
			Resource: ResourceProduct,
		})
	})
	if err != nil {
		return nil, err
	}

	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode product payload")
	}
	return &product, nil
}

// InvalidateMenu marks every cached menu listing stale. Admin writes call
// this so the next read refetches from the storefront API.
func (s *service) InvalidateMenu(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx, ResourceMenu); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, ResourceCategory); err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, ResourceProduct)
}

func decodeProducts(data json.RawMessage) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode menu payload")
	}
	return products, nil
}
