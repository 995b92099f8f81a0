package favorites

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
)

type memoryStore struct {
	sets map[string]map[string]bool
	ttls map[string]time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sets: map[string]map[string]bool{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) SAdd(ctx context.Context, key string, ttl time.Duration, members ...any) error {
	set, ok := m.sets[key]
	if !ok {
		set = map[string]bool{}
		m.sets[key] = set
	}
	for _, member := range members {
		set[member.(string)] = true
	}
	m.ttls[key] = ttl
	return nil
}

func (m *memoryStore) SRem(ctx context.Context, key string, members ...any) error {
	for _, member := range members {
		delete(m.sets[key], member.(string))
	}
	return nil
}

func (m *memoryStore) SMembers(ctx context.Context, key string) ([]string, error) {
	var members []string
	for member := range m.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

func (m *memoryStore) SIsMember(ctx context.Context, key string, member any) (bool, error) {
	return m.sets[key][member.(string)], nil
}

func (m *memoryStore) FavoritesKey(sessionID string) string {
	return "sf:favorites:" + sessionID
}

func newTestService(t *testing.T, store *memoryStore) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Store: store, TTL: time.Hour})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestToggleFlipsFavoriteState(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	favorite, err := svc.Toggle(ctx, "sess-1", "m1")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !favorite {
		t.Fatal("expected favorite after first toggle")
	}

	if got, err := svc.IsFavorite(ctx, "sess-1", "m1"); err != nil || !got {
		t.Fatalf("expected favorite, got %v %v", got, err)
	}

	favorite, err = svc.Toggle(ctx, "sess-1", "m1")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if favorite {
		t.Fatal("expected unfavorited after second toggle")
	}

	if got, _ := svc.IsFavorite(ctx, "sess-1", "m1"); got {
		t.Fatal("favorite should be cleared")
	}
}

func TestListReturnsSessionFavorites(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	for _, id := range []string{"m1", "m2"} {
		if _, err := svc.Toggle(ctx, "sess-1", id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}
	if _, err := svc.Toggle(ctx, "sess-2", "m3"); err != nil {
		t.Fatalf("toggle other session: %v", err)
	}

	favorites, err := svc.List(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favorites) != 2 {
		t.Fatalf("expected 2 favorites, got %v", favorites)
	}

	if ttl := store.ttls[store.FavoritesKey("sess-1")]; ttl != time.Hour {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestValidationRejectsBlankIDs(t *testing.T) {
	svc := newTestService(t, newMemoryStore())
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "", "m1"); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Toggle(ctx, "sess-1", "  "); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.List(ctx, ""); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
}
