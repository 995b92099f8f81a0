package cart

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newMirrorDB(t *testing.T) *Mirror {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	mirror := NewMirror(conn)
	if err := mirror.Migrate(); err != nil {
		t.Fatalf("failed to migrate mirror: %v", err)
	}
	return mirror
}

func TestMirrorReplaceAndSnapshot(t *testing.T) {
	mirror := newMirrorDB(t)
	ctx := context.Background()

	items := []Item{
		{
			CartID:     "c1",
			MenuItemID: "m1",
			Name:       "Kacchi Biryani",
			Price:      450,
			Quantity:   2,
			InStock:    true,
			Images:     []ItemImage{{ID: "img1", ImageURL: "https://cdn.test/kacchi.jpg", IsPrimary: true}},
		},
		{CartID: "c2", MenuItemID: "m2", Name: "Borhani", Price: 60, Quantity: 1, InStock: true},
	}

	if err := mirror.Replace(ctx, "sess-1", items); err != nil {
		t.Fatalf("replace: %v", err)
	}

	snapshot, err := mirror.Snapshot(ctx, "sess-1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 items, got %d", len(snapshot))
	}
	if snapshot[0].Name != "Kacchi Biryani" || snapshot[0].Quantity != 2 {
		t.Fatalf("unexpected first item %+v", snapshot[0])
	}
	if len(snapshot[0].Images) != 1 || !snapshot[0].Images[0].IsPrimary {
		t.Fatalf("images did not round-trip: %+v", snapshot[0].Images)
	}
}

func TestMirrorReplaceSwapsSnapshot(t *testing.T) {
	mirror := newMirrorDB(t)
	ctx := context.Background()

	if err := mirror.Replace(ctx, "sess-1", []Item{{CartID: "c1", Name: "Old", Quantity: 1}}); err != nil {
		t.Fatalf("seed replace: %v", err)
	}
	if err := mirror.Replace(ctx, "sess-1", []Item{{CartID: "c2", Name: "New", Quantity: 3}}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	snapshot, err := mirror.Snapshot(ctx, "sess-1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot) != 1 || snapshot[0].Name != "New" {
		t.Fatalf("expected swapped snapshot, got %+v", snapshot)
	}
}

func TestMirrorScopesBySession(t *testing.T) {
	mirror := newMirrorDB(t)
	ctx := context.Background()

	if err := mirror.Replace(ctx, "sess-1", []Item{{CartID: "c1", Name: "Mine"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := mirror.Replace(ctx, "sess-2", []Item{{CartID: "c2", Name: "Theirs"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if err := mirror.Clear(ctx, "sess-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	mine, err := mirror.Snapshot(ctx, "sess-1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("expected cleared snapshot, got %+v", mine)
	}

	theirs, err := mirror.Snapshot(ctx, "sess-2")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(theirs) != 1 || theirs[0].Name != "Theirs" {
		t.Fatalf("other session affected: %+v", theirs)
	}
}
