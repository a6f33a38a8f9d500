package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prawinrajulu/reclaim/internal/model"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetItem(ctx, "itm-1")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	s.Put(model.Item{ID: "itm-1", Keyword: "Umbrella", Kind: model.ItemKindFound})

	item, err := s.GetItem(ctx, "itm-1")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.Keyword != "Umbrella" {
		t.Errorf("unexpected item: %+v", item)
	}

	// Put replaces
	s.Put(model.Item{ID: "itm-1", Keyword: "Red Umbrella", Kind: model.ItemKindFound})
	item, _ = s.GetItem(ctx, "itm-1")
	if item.Keyword != "Red Umbrella" {
		t.Errorf("expected replacement, got %+v", item)
	}
}

func TestMemoryStore_ReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Put(model.Item{ID: "itm-1", Status: model.ItemStatusOpen})

	item, err := s.GetItem(context.Background(), "itm-1")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}

	item.Status = model.ItemStatusClaimed

	again, _ := s.GetItem(context.Background(), "itm-1")
	if again.Status != model.ItemStatusOpen {
		t.Error("mutating a returned item must not affect the store")
	}
}
