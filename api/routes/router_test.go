package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/cart"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/catalog"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/dashboard"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/reviews"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/internal/session"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/config"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) ActiveCategories(ctx context.Context, token string) ([]catalog.Category, error) {
	return []catalog.Category{}, nil
}

func (stubCatalogService) Menu(ctx context.Context, token string, page pagination.Params) ([]catalog.Product, error) {
	return []catalog.Product{}, nil
}

func (stubCatalogService) ProductsByCategory(ctx context.Context, token, categoryID string, page pagination.Params) ([]catalog.Product, error) {
	return []catalog.Product{}, nil
}

func (stubCatalogService) Product(ctx context.Context, token, productID string) (*catalog.Product, error) {
	return &catalog.Product{ID: productID}, nil
}

func (stubCatalogService) InvalidateMenu(ctx context.Context) error {
	return nil
}

type stubAdminCatalogService struct{}

func (stubAdminCatalogService) CreateMenuItem(ctx context.Context, token string, input catalog.MenuItemInput) (*catalog.Product, error) {
	return &catalog.Product{Name: input.Name}, nil
}

func (stubAdminCatalogService) UpdateMenuItem(ctx context.Context, token, productID string, input catalog.MenuItemInput) (*catalog.Product, error) {
	return &catalog.Product{ID: productID}, nil
}

func (stubAdminCatalogService) DeleteMenuItem(ctx context.Context, token, productID string) error {
	return nil
}

type stubReviewsService struct{}

func (stubReviewsService) ByProduct(ctx context.Context, token, productID string, page pagination.Params) ([]reviews.Review, error) {
	return []reviews.Review{}, nil
}

func (stubReviewsService) Submit(ctx context.Context, token, productID string, submission reviews.Submission) error {
	return nil
}

type stubCartService struct{}

func (stubCartService) AddToCart(ctx context.Context, token, sessionID string, product *catalog.Product, quantity int) (*cart.AddResult, error) {
	return &cart.AddResult{Redirect: "/cart"}, nil
}

func (stubCartService) Items(ctx context.Context, token, sessionID string) ([]cart.Item, error) {
	return []cart.Item{}, nil
}

func (stubCartService) RemoveItem(ctx context.Context, token, sessionID, itemID string) error {
	return nil
}

func (stubCartService) UpdateItemQuantity(ctx context.Context, token, sessionID, itemID string, quantity int) error {
	return nil
}

func (stubCartService) DeliveryOptions() []cart.DeliveryOption {
	return nil
}

func (stubCartService) Summarize(items []cart.Item, deliveryOptionID string) cart.Summary {
	return cart.Summary{IsEmpty: true}
}

type stubSessionService struct{}

func (stubSessionService) Login(ctx context.Context, token string) (string, session.State, error) {
	return "sess-1", session.State{LoggedIn: true}, nil
}

func (stubSessionService) Current(ctx context.Context, sessionID string) (session.State, error) {
	return session.State{}, nil
}

func (stubSessionService) Refresh(ctx context.Context, sessionID string) (session.State, error) {
	return session.State{}, nil
}

func (stubSessionService) Logout(ctx context.Context, sessionID string) error {
	return nil
}

type stubFavoritesService struct{}

func (stubFavoritesService) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	return true, nil
}

func (stubFavoritesService) List(ctx context.Context, sessionID string) ([]string, error) {
	return []string{}, nil
}

func (stubFavoritesService) IsFavorite(ctx context.Context, sessionID, productID string) (bool, error) {
	return false, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: "test", Port: "0"},
		Auth: config.AuthConfig{AdminRole: "admin"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		stubPinger{},
		stubCatalogService{},
		stubAdminCatalogService{},
		stubReviewsService{},
		stubCartService{},
		stubSessionService{},
		stubFavoritesService{},
		dashboard.NewService(),
	)
}

func buildToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1"}
	if role != "" {
		claims["role"] = role
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestPublicCatalogRoutesNeedNoToken(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{
		"/api/v1/categories/active",
		"/api/v1/menus/",
		"/api/v1/menus/menu/m1",
		"/api/v1/menus/cat1",
		"/api/v1/reviews/menu/m1",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestCartRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/items", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestCartRoutesAcceptBearerToken(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/items", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, "customer"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	router := newTestRouter(testConfig())

	nonAdmin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard/stats", nil)
	nonAdmin.Header.Set("Authorization", "Bearer "+buildToken(t, "customer"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, nonAdmin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard/stats", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, "admin"))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestAdminGroupRejectsMissingToken(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/dashboard/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestMetricsEndpointIsMounted(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for /metrics got %d", resp.Code)
	}
}
