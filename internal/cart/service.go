package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/enums"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/querycache"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/upstream"
	"github.com/shopspring/decimal"
)

// ResourceCartItems is the cache resource for the session's cart listing.
const ResourceCartItems = "cartItems"

// CartRedirect is where the UI lands after a successful add.
const CartRedirect = "/cart"

const (
	defaultQuantity = 1
	maxQuantity     = 10
)

const emptyCartMessage = "Your cart is empty"

// deliveryOptions are fixed tiers, not upstream data.
var deliveryOptions = []DeliveryOption{
	{ID: enums.DeliveryTierStandard, Name: "Standard Delivery", Price: decimal.RequireFromString("4.99"), Time: "40-60 min"},
	{ID: enums.DeliveryTierExpress, Name: "Express Delivery", Price: decimal.RequireFromString("9.99"), Time: "20-30 min"},
	{ID: enums.DeliveryTierFree, Name: "Free Delivery", Price: decimal.Zero, Time: "60-90 min"},
}

type fetcher interface {
	Do(ctx context.Context, req upstream.Request) (json.RawMessage, error)
}

type queryCache interface {
	Do(ctx context.Context, resource string, params []string, fetch querycache.FetchFunc) (json.RawMessage, error)
	Invalidate(ctx context.Context, resource string) error
}

type mirrorStore interface {
	Replace(ctx context.Context, sessionID string, items []Item) error
	Snapshot(ctx context.Context, sessionID string) ([]Item, error)
	Clear(ctx context.Context, sessionID string) error
}

// addItemRequest is the add-to-cart body the storefront API expects.
type addItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Upstream fetcher
	Cache    queryCache
	Mirror   mirrorStore
}

// Service manages the customer's cart. All writes go straight upstream;
// after each one the cached listing is invalidated and the local mirror
// dropped, so the next read refetches the server's state rather than
// patching a local copy.
type Service interface {
	AddToCart(ctx context.Context, token, sessionID string, product *catalog.Product, quantity int) (*AddResult, error)
	Items(ctx context.Context, token, sessionID string) ([]Item, error)
	RemoveItem(ctx context.Context, token, sessionID, itemID string) error
	UpdateItemQuantity(ctx context.Context, token, sessionID, itemID string, quantity int) error
	DeliveryOptions() []DeliveryOption
	Summarize(items []Item, deliveryOptionID string) Summary
}

type service struct {
	upstream fetcher
	cache    queryCache
	mirror   mirrorStore
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Upstream == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upstream client is required")
	}
	if params.Cache == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query cache is required")
	}
	if params.Mirror == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart mirror is required")
	}
	return &service{upstream: params.Upstream, cache: params.Cache, mirror: params.Mirror}, nil
}

// AddToCart posts one line to the upstream cart. A nil product is a no-op:
// the UI calls this from views where the product may not have loaded yet.
// Quantity defaults to 1 when unset.
func (s *service) AddToCart(ctx context.Context, token, sessionID string, product *catalog.Product, quantity int) (*AddResult, error) {
	if product == nil {
		return nil, nil
	}
	if strings.TrimSpace(product.ID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		quantity = defaultQuantity
	}
	if quantity > maxQuantity {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be between 1 and 10")
	}

	_, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodPost,
		Path:     "/cart/add-items",
		Body:     addItemRequest{MenuItemID: product.ID, Quantity: quantity},
		Token:    token,
		Resource: ResourceCartItems,
	})
	if err != nil {
		return nil, err
	}

	s.reconcile(ctx, sessionID)
	return &AddResult{Redirect: CartRedirect}, nil
}

// Items returns the session's cart lines, falling back to the mirrored
// snapshot when the storefront API is unreachable.
func (s *service) Items(ctx context.Context, token, sessionID string) ([]Item, error) {
	data, err := s.cache.Do(ctx, ResourceCartItems, []string{sessionID}, func(ctx context.Context) (json.RawMessage, error) {
		return s.upstream.Do(ctx, upstream.Request{
			Method:   http.MethodGet,
			Path:     "/cart/items",
			Token:    token,
			Resource: ResourceCartItems,
		})
	})
	if err != nil {
		if snapshot, snapErr := s.mirror.Snapshot(ctx, sessionID); snapErr == nil && len(snapshot) > 0 {
			return snapshot, nil
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode cart payload")
	}

	// Snapshot refresh is best effort; a mirror write failure must not
	// break the read.
	_ = s.mirror.Replace(ctx, sessionID, items)
	return items, nil
}

// RemoveItem deletes one cart line upstream.
func (s *service) RemoveItem(ctx context.Context, token, sessionID, itemID string) error {
	trimmed := strings.TrimSpace(itemID)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart item id is required")
	}

	_, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodDelete,
		Path:     "/cart/remove-item/" + url.PathEscape(trimmed),
		Token:    token,
		Resource: ResourceCartItems,
	})
	if err != nil {
		return err
	}

	s.reconcile(ctx, sessionID)
	return nil
}

// UpdateItemQuantity patches one line's quantity. Out-of-range values are
// rejected before any request is made.
func (s *service) UpdateItemQuantity(ctx context.Context, token, sessionID, itemID string, quantity int) error {
	trimmed := strings.TrimSpace(itemID)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart item id is required")
	}
	if quantity < 1 || quantity > maxQuantity {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be between 1 and 10")
	}

	_, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodPatch,
		Path:     "/cart/update-quantity/" + url.PathEscape(trimmed),
		Body:     updateQuantityRequest{Quantity: quantity},
		Token:    token,
		Resource: ResourceCartItems,
	})
	if err != nil {
		return err
	}

	s.reconcile(ctx, sessionID)
	return nil
}

// DeliveryOptions lists the fixed delivery tiers.
func (s *service) DeliveryOptions() []DeliveryOption {
	options := make([]DeliveryOption, len(deliveryOptions))
	copy(options, deliveryOptions)
	return options
}

// Summarize totals the given lines. An unknown delivery option falls back
// to standard delivery; an empty cart carries no fee at all.
func (s *service) Summarize(items []Item, deliveryOptionID string) Summary {
	if len(items) == 0 {
		return Summary{
			Subtotal:     decimal.Zero,
			DeliveryFee:  decimal.Zero,
			Total:        decimal.Zero,
			IsEmpty:      true,
			EmptyMessage: emptyCartMessage,
		}
	}

	subtotal := decimal.Zero
	count := 0
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
		count += item.Quantity
	}

	fee := deliveryFee(deliveryOptionID)
	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
		ItemCount:   count,
	}
}

// reconcile drops every locally held view of the cart after a write. The
// next read refetches from the storefront API, which owns the state.
func (s *service) reconcile(ctx context.Context, sessionID string) {
	_ = s.cache.Invalidate(ctx, ResourceCartItems)
	_ = s.mirror.Clear(ctx, sessionID)
}

func deliveryFee(optionID string) decimal.Decimal {
	tier := enums.DeliveryTier(optionID)
	for _, option := range deliveryOptions {
		if option.ID == tier {
			return option.Price
		}
	}
	return deliveryOptions[0].Price
}
