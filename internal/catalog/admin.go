package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/upstream"
)

// MenuItemInput is the admin payload for creating or updating a menu item.
type MenuItemInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	DiscountPrice float64  `json:"discount_price" validate:"gte=0"`
	CategoryID    string   `json:"category_id" validate:"required"`
	StockQuantity int      `json:"stock_quantity" validate:"gte=0"`
	Tags          []string `json:"tags"`
}

// AdminService proxies menu item writes to the storefront API. Every
// successful write invalidates the cached listings so storefront reads
// pick the change up.
type AdminService interface {
	CreateMenuItem(ctx context.Context, token string, input MenuItemInput) (*Product, error)
	UpdateMenuItem(ctx context.Context, token, productID string, input MenuItemInput) (*Product, error)
	DeleteMenuItem(ctx context.Context, token, productID string) error
}

type adminService struct {
	upstream fetcher
	catalog  Service
}

// NewAdminService builds the admin-facing catalog service.
func NewAdminService(up fetcher, catalog Service) (AdminService, error) {
	if up == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upstream client is required")
	}
	if catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog service is required")
	}
	return &adminService{upstream: up, catalog: catalog}, nil
}

func (s *adminService) CreateMenuItem(ctx context.Context, token string, input MenuItemInput) (*Product, error) {
	data, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodPost,
		Path:     "/menus",
		Body:     input,
		Token:    token,
		Resource: ResourceMenu,
	})
	if err != nil {
		return nil, err
	}
	return s.decodeAndInvalidate(ctx, data)
}

func (s *adminService) UpdateMenuItem(ctx context.Context, token, productID string, input MenuItemInput) (*Product, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	data, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodPatch,
		Path:     "/menus/menu/" + url.PathEscape(trimmed),
		Body:     input,
		Token:    token,
		Resource: ResourceMenu,
	})
	if err != nil {
		return nil, err
	}
	return s.decodeAndInvalidate(ctx, data)
}

func (s *adminService) DeleteMenuItem(ctx context.Context, token, productID string) error {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	_, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodDelete,
		Path:     "/menus/menu/" + url.PathEscape(trimmed),
		Token:    token,
		Resource: ResourceMenu,
	})
	if err != nil {
		return err
	}
	return s.catalog.InvalidateMenu(ctx)
}

func (s *adminService) decodeAndInvalidate(ctx context.Context, data json.RawMessage) (*Product, error) {
	var product Product
	if len(data) > 0 {
		if err := json.Unmarshal(data, &product); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode menu payload")
		}
	}
	if err := s.catalog.InvalidateMenu(ctx); err != nil {
		return nil, err
	}
	return &product, nil
}
