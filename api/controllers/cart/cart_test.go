package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/cart"
	catalogsvc "github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/pagination"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/types"
)

type stubCartService struct {
	addProduct  *catalogsvc.Product
	addQuantity int
	addResult   *cartsvc.AddResult
	addErr      error
	items       []cartsvc.Item
	itemsErr    error
}

func (s *stubCartService) AddToCart(ctx context.Context, token, sessionID string, product *catalogsvc.Product, quantity int) (*cartsvc.AddResult, error) {
	s.addProduct = product
	s.addQuantity = quantity
	if s.addErr != nil {
		return nil, s.addErr
	}
	if product == nil {
		return nil, nil
	}
	return s.addResult, nil
}

func (s *stubCartService) Items(ctx context.Context, token, sessionID string) ([]cartsvc.Item, error) {
	return s.items, s.itemsErr
}

func (s *stubCartService) RemoveItem(ctx context.Context, token, sessionID, itemID string) error {
	return nil
}

func (s *stubCartService) UpdateItemQuantity(ctx context.Context, token, sessionID, itemID string, quantity int) error {
	return nil
}

func (s *stubCartService) DeliveryOptions() []cartsvc.DeliveryOption {
	return nil
}

func (s *stubCartService) Summarize(items []cartsvc.Item, deliveryOptionID string) cartsvc.Summary {
	return cartsvc.Summary{IsEmpty: len(items) == 0}
}

type stubCatalogService struct {
	product *catalogsvc.Product
	err     error
}

func (s *stubCatalogService) ActiveCategories(ctx context.Context, token string) ([]catalogsvc.Category, error) {
	return nil, nil
}

func (s *stubCatalogService) Menu(ctx context.Context, token string, page pagination.Params) ([]catalogsvc.Product, error) {
	return nil, nil
}

func (s *stubCatalogService) ProductsByCategory(ctx context.Context, token, categoryID string, page pagination.Params) ([]catalogsvc.Product, error) {
	return nil, nil
}

func (s *stubCatalogService) Product(ctx context.Context, token, productID string) (*catalogsvc.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) InvalidateMenu(ctx context.Context) error {
	return nil
}

func TestAddItemRedirectsToCart(t *testing.T) {
	cartStub := &stubCartService{addResult: &cartsvc.AddResult{Redirect: "/cart"}}
	catalogStub := &stubCatalogService{product: &catalogsvc.Product{ID: "m1", Name: "Kacchi Biryani"}}

	handler := AddItem(cartStub, catalogStub, nil)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"menu_item_id":"m1","quantity":2}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if cartStub.addProduct == nil || cartStub.addProduct.ID != "m1" || cartStub.addQuantity != 2 {
		t.Fatalf("service got %+v quantity %d", cartStub.addProduct, cartStub.addQuantity)
	}

	var body types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := body.Data.(map[string]any)
	if data["redirect"] != "/cart" {
		t.Fatalf("expected redirect hint, got %v", data)
	}
}

func TestAddItemUnknownProductIsQuietNoOp(t *testing.T) {
	cartStub := &stubCartService{}
	catalogStub := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}

	handler := AddItem(cartStub, catalogStub, nil)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"menu_item_id":"ghost"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if cartStub.addProduct != nil {
		t.Fatalf("expected nil product passed through, got %+v", cartStub.addProduct)
	}
}

func TestAddItemRejectsMalformedBody(t *testing.T) {
	handler := AddItem(&stubCartService{}, &stubCatalogService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"quantity":2}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateQuantityRejectsOutOfRangeBody(t *testing.T) {
	handler := UpdateQuantity(&stubCartService{}, nil)
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/ci1", strings.NewReader(`{"quantity":11}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSummaryRendersEmptyStateOnMissingCart(t *testing.T) {
	cartStub := &stubCartService{itemsErr: pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")}

	handler := Summary(cartStub, nil)
	req := httptest.NewRequest(http.MethodGet, "/cart/summary?delivery=standard", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := body.Data.(map[string]any)
	if data["is_empty"] != true {
		t.Fatalf("expected empty cart summary, got %v", data)
	}
}
