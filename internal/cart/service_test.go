package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/querycache"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/upstream"
)

type stubFetcher struct {
	requests []upstream.Request
	payload  json.RawMessage
	err      error
}

func (s *stubFetcher) Do(ctx context.Context, req upstream.Request) (json.RawMessage, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

type passthroughCache struct {
	invalidated []string
}

func (c *passthroughCache) Do(ctx context.Context, resource string, params []string, fetch querycache.FetchFunc) (json.RawMessage, error) {
	return fetch(ctx)
}

func (c *passthroughCache) Invalidate(ctx context.Context, resource string) error {
	c.invalidated = append(c.invalidated, resource)
	return nil
}

type memoryMirror struct {
	snapshots map[string][]Item
	cleared   []string
}

func newMemoryMirror() *memoryMirror {
	return &memoryMirror{snapshots: map[string][]Item{}}
}

func (m *memoryMirror) Replace(ctx context.Context, sessionID string, items []Item) error {
	m.snapshots[sessionID] = items
	return nil
}

func (m *memoryMirror) Snapshot(ctx context.Context, sessionID string) ([]Item, error) {
	return m.snapshots[sessionID], nil
}

func (m *memoryMirror) Clear(ctx context.Context, sessionID string) error {
	m.cleared = append(m.cleared, sessionID)
	delete(m.snapshots, sessionID)
	return nil
}

func newTestService(t *testing.T, fetcher *stubFetcher, cache *passthroughCache, mirror *memoryMirror) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Upstream: fetcher, Cache: cache, Mirror: mirror})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestAddToCartPostsExactlyOnce(t *testing.T) {
	fetcher := &stubFetcher{payload: json.RawMessage(`{"cart_id":"c1"}`)}
	cache := &passthroughCache{}
	mirror := newMemoryMirror()
	svc := newTestService(t, fetcher, cache, mirror)

	product := &catalog.Product{ID: "m1", Name: "Kacchi Biryani", Price: 450}
	result, err := svc.AddToCart(context.Background(), "tok", "sess-1", product, 2)
	if err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if result == nil || result.Redirect != CartRedirect {
		t.Fatalf("unexpected result %+v", result)
	}

	if len(fetcher.requests) != 1 {
		t.Fatalf("expected exactly one upstream request, got %d", len(fetcher.requests))
	}
	req := fetcher.requests[0]
	if req.Method != "POST" || req.Path != "/cart/add-items" {
		t.Fatalf("unexpected request %+v", req)
	}
	body, ok := req.Body.(addItemRequest)
	if !ok || body.MenuItemID != "m1" || body.Quantity != 2 {
		t.Fatalf("unexpected body %+v", req.Body)
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != ResourceCartItems {
		t.Fatalf("unexpected invalidations %v", cache.invalidated)
	}
	if len(mirror.cleared) != 1 || mirror.cleared[0] != "sess-1" {
		t.Fatalf("expected mirror clear for session, got %v", mirror.cleared)
	}
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	fetcher := &stubFetcher{payload: json.RawMessage(`{}`)}
	cache := &passthroughCache{}
	svc := newTestService(t, fetcher, cache, newMemoryMirror())

	if _, err := svc.AddToCart(context.Background(), "tok", "sess-1", &catalog.Product{ID: "m1"}, 0); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	body := fetcher.requests[0].Body.(addItemRequest)
	if body.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", body.Quantity)
	}
}

func TestAddToCartNilProductIsNoOp(t *testing.T) {
	fetcher := &stubFetcher{}
	cache := &passthroughCache{}
	svc := newTestService(t, fetcher, cache, newMemoryMirror())

	result, err := svc.AddToCart(context.Background(), "tok", "sess-1", nil, 3)
	if err != nil {
		t.Fatalf("expected nil error for nil product, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
	if len(fetcher.requests) != 0 {
		t.Fatalf("expected no upstream request, got %d", len(fetcher.requests))
	}
}

func TestUpdateItemQuantityRejectsOutOfRange(t *testing.T) {
	for _, quantity := range []int{0, -2, 11, 100} {
		fetcher := &stubFetcher{}
		cache := &passthroughCache{}
		svc := newTestService(t, fetcher, cache, newMemoryMirror())

		err := svc.UpdateItemQuantity(context.Background(), "tok", "sess-1", "ci1", quantity)
		if err == nil {
			t.Fatalf("quantity %d: expected validation error", quantity)
		}
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("quantity %d: unexpected error %v", quantity, err)
		}
		if len(fetcher.requests) != 0 {
			t.Fatalf("quantity %d: expected no upstream request", quantity)
		}
	}
}

func TestUpdateItemQuantityPatchesInRange(t *testing.T) {
	fetcher := &stubFetcher{payload: json.RawMessage(`{}`)}
	cache := &passthroughCache{}
	svc := newTestService(t, fetcher, cache, newMemoryMirror())

	if err := svc.UpdateItemQuantity(context.Background(), "tok", "sess-1", "ci1", 5); err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	req := fetcher.requests[0]
	if req.Method != "PATCH" || req.Path != "/cart/update-quantity/ci1" {
		t.Fatalf("unexpected request %+v", req)
	}
	body := req.Body.(updateQuantityRequest)
	if body.Quantity != 5 {
		t.Fatalf("unexpected quantity %d", body.Quantity)
	}
}

func TestRemoveItemDeletesUpstream(t *testing.T) {
	fetcher := &stubFetcher{payload: json.RawMessage(`{}`)}
	cache := &passthroughCache{}
	mirror := newMemoryMirror()
	svc := newTestService(t, fetcher, cache, mirror)

	if err := svc.RemoveItem(context.Background(), "tok", "sess-1", "ci1"); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	req := fetcher.requests[0]
	if req.Method != "DELETE" || req.Path != "/cart/remove-item/ci1" {
		t.Fatalf("unexpected request %+v", req)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected cache invalidation, got %v", cache.invalidated)
	}
}

func TestItemsFallsBackToMirrorWhenUpstreamDown(t *testing.T) {
	fetcher := &stubFetcher{err: pkgerrors.New(pkgerrors.CodeUpstream, "failed to fetch cartItems")}
	cache := &passthroughCache{}
	mirror := newMemoryMirror()
	mirror.snapshots["sess-1"] = []Item{{CartID: "c1", Name: "Kacchi Biryani", Price: 450, Quantity: 2}}
	svc := newTestService(t, fetcher, cache, mirror)

	items, err := svc.Items(context.Background(), "tok", "sess-1")
	if err != nil {
		t.Fatalf("expected mirror fallback, got %v", err)
	}
	if len(items) != 1 || items[0].Name != "Kacchi Biryani" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestItemsRefreshesMirrorOnSuccess(t *testing.T) {
	fetcher := &stubFetcher{payload: json.RawMessage(`[{"cart_id":"c1","menu_item_id":"m1","name":"Beef Tehari","price":320,"quantity":1}]`)}
	cache := &passthroughCache{}
	mirror := newMemoryMirror()
	svc := newTestService(t, fetcher, cache, mirror)

	items, err := svc.Items(context.Background(), "tok", "sess-1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 || items[0].MenuItemID != "m1" {
		t.Fatalf("unexpected items %+v", items)
	}
	if snapshot := mirror.snapshots["sess-1"]; len(snapshot) != 1 || snapshot[0].Name != "Beef Tehari" {
		t.Fatalf("mirror was not refreshed: %+v", snapshot)
	}
}

func TestSummarizeTotalsWithDecimalMath(t *testing.T) {
	svc := newTestService(t, &stubFetcher{}, &passthroughCache{}, newMemoryMirror())

	items := []Item{{Name: "Kacchi Biryani", Price: 450, Quantity: 2}}
	summary := svc.Summarize(items, "standard")

	if got := summary.Subtotal.String(); got != "900" {
		t.Fatalf("unexpected subtotal %s", got)
	}
	if got := summary.DeliveryFee.String(); got != "4.99" {
		t.Fatalf("unexpected delivery fee %s", got)
	}
	if got := summary.Total.String(); got != "904.99" {
		t.Fatalf("unexpected total %s", got)
	}
	if summary.ItemCount != 2 || summary.IsEmpty {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestSummarizeExpressAndFreeTiers(t *testing.T) {
	svc := newTestService(t, &stubFetcher{}, &passthroughCache{}, newMemoryMirror())
	items := []Item{{Price: 100, Quantity: 1}}

	if got := svc.Summarize(items, "express").Total.String(); got != "109.99" {
		t.Fatalf("unexpected express total %s", got)
	}
	if got := svc.Summarize(items, "free").Total.String(); got != "100" {
		t.Fatalf("unexpected free total %s", got)
	}
	// Unknown tiers fall back to standard delivery.
	if got := svc.Summarize(items, "warp").Total.String(); got != "104.99" {
		t.Fatalf("unexpected fallback total %s", got)
	}
}

func TestSummarizeEmptyCart(t *testing.T) {
	svc := newTestService(t, &stubFetcher{}, &passthroughCache{}, newMemoryMirror())

	summary := svc.Summarize(nil, "standard")
	if !summary.IsEmpty {
		t.Fatal("expected empty summary")
	}
	if summary.EmptyMessage != "Your cart is empty" {
		t.Fatalf("unexpected message %q", summary.EmptyMessage)
	}
	if !summary.Total.IsZero() || !summary.DeliveryFee.IsZero() {
		t.Fatalf("expected zero totals, got %+v", summary)
	}
}

func TestEmptyCartTransitionAfterLastRemove(t *testing.T) {
	fetcher := &stubFetcher{payload: json.RawMessage(`{}`)}
	cache := &passthroughCache{}
	mirror := newMemoryMirror()
	mirror.snapshots["sess-1"] = []Item{{CartID: "c1", Price: 450, Quantity: 1}}
	svc := newTestService(t, fetcher, cache, mirror)

	if err := svc.RemoveItem(context.Background(), "tok", "sess-1", "c1"); err != nil {
		t.Fatalf("remove item: %v", err)
	}

	// Mirror is dropped with the write; the refetched list comes back empty.
	fetcher.payload = json.RawMessage(`[]`)
	items, err := svc.Items(context.Background(), "tok", "sess-1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	summary := svc.Summarize(items, "standard")
	if !summary.IsEmpty || summary.EmptyMessage == "" {
		t.Fatalf("expected empty cart state, got %+v", summary)
	}
}
