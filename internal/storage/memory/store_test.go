package memory

import (
	"context"
	"testing"

	"github.com/tiwariParth/todo-json/internal/models"
)

func TestLoadUnknownPathIsEmpty(t *testing.T) {
	store := NewMemoryStore()

	items, err := store.Load(context.Background(), "TODO.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list, got %d items", len(items))
	}
}

func TestSaveStoresCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	items := []models.Item{models.NewItem(1, "work", "write report")}
	if err := store.Save(ctx, "TODO.json", items); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	items[0].Description = "changed after save"

	loaded, err := store.Load(ctx, "TODO.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded[0].Description != "write report" {
		t.Errorf("Description: got %q, want %q", loaded[0].Description, "write report")
	}

	loaded[0].Description = "changed after load"
	again, _ := store.Load(ctx, "TODO.json")
	if again[0].Description != "write report" {
		t.Errorf("Load returned shared slice: got %q", again[0].Description)
	}
}

func TestOverlayReadsThroughAndNeverWritesBase(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	seed := []models.Item{models.NewItem(1, "work", "write report")}
	if err := base.Save(ctx, "TODO.json", seed); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	overlay := NewOverlay(base)
	items, err := overlay.Load(ctx, "TODO.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item from base, got %d", len(items))
	}

	items = append(items, models.NewItem(2, "home", "water plants"))
	if err := overlay.Save(ctx, "TODO.json", items); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fromOverlay, _ := overlay.Load(ctx, "TODO.json")
	if len(fromOverlay) != 2 {
		t.Errorf("overlay: got %d items, want 2", len(fromOverlay))
	}
	fromBase, _ := base.Load(ctx, "TODO.json")
	if len(fromBase) != 1 {
		t.Errorf("base: got %d items, want 1", len(fromBase))
	}
	if overlay.Len() != 1 {
		t.Errorf("Len: got %d, want 1", overlay.Len())
	}
}
