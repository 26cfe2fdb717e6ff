package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

func buildStoredList(t *testing.T, repo adapter.ListRepository, ownerID uuid.UUID, entryNames ...string) *entity.ShoppingList {
	t.Helper()
	ctx := context.Background()
	list := entity.NewShoppingList("Groceries", entity.PriorityNormal, ownerID, testTime(1, 10))
	for _, name := range entryNames {
		list.Entries = append(list.Entries, entity.NewProductEntry(nil, name, 1, "piece", "", ownerID, testTime(1, 10)))
	}
	if err := repo.Create(ctx, list); err != nil {
		t.Fatalf("Failed to store list: %v", err)
	}
	return list
}

func TestListRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and FindByID roundtrip the aggregate", func(t *testing.T) {
		repo := NewListRepository(newTestDB(t))
		ownerID := uuid.New()
		granteeID := uuid.New()

		list := entity.NewShoppingList("Groceries", entity.PriorityHigh, ownerID, testTime(1, 10))
		list.Entries = append(list.Entries,
			entity.NewProductEntry(nil, "Milk", 2, "liter", "whole", ownerID, testTime(1, 10)),
			entity.NewProductEntry(nil, "Bread", 1, "piece", "", ownerID, testTime(1, 11)),
		)
		if err := list.Share(granteeID, entity.PermissionEdit, testTime(1, 12)); err != nil {
			t.Fatalf("Share failed: %v", err)
		}

		if err := repo.Create(ctx, list); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := repo.FindByID(ctx, list.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.Name != "Groceries" || found.Priority != entity.PriorityHigh {
			t.Errorf("Unexpected metadata: %q/%q", found.Name, found.Priority)
		}
		if found.Version != 1 {
			t.Errorf("Expected version 1, got %d", found.Version)
		}
		if len(found.Entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(found.Entries))
		}
		if found.Entries[0].Name != "Milk" || found.Entries[1].Name != "Bread" {
			t.Errorf("Entries out of order: %q, %q", found.Entries[0].Name, found.Entries[1].Name)
		}
		if found.Entries[0].Quantity != 2 || found.Entries[0].Notes != "whole" {
			t.Errorf("Entry fields lost: %+v", found.Entries[0])
		}
		if len(found.Shares) != 1 || found.Shares[0].GranteeUserID != granteeID {
			t.Errorf("Unexpected shares: %+v", found.Shares)
		}
	})

	t.Run("FindByID returns domain error for unknown id", func(t *testing.T) {
		repo := NewListRepository(newTestDB(t))
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrListNotFound) {
			t.Errorf("Expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("Update persists changes and bumps the version", func(t *testing.T) {
		repo := NewListRepository(newTestDB(t))
		ownerID := uuid.New()
		list := buildStoredList(t, repo, ownerID, "Milk")

		list.Rename("Weekend shopping", testTime(2, 9))
		list.Entries[0].IsPurchased = true
		if err := repo.Update(ctx, list); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if list.Version != 2 {
			t.Errorf("Expected in-memory version 2, got %d", list.Version)
		}

		found, err := repo.FindByID(ctx, list.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.Name != "Weekend shopping" {
			t.Errorf("Expected renamed list, got %q", found.Name)
		}
		if found.Version != 2 {
			t.Errorf("Expected stored version 2, got %d", found.Version)
		}
		if !found.Entries[0].IsPurchased {
			t.Error("Expected entry flag to be persisted")
		}
	})

	t.Run("Update replaces the entry set", func(t *testing.T) {
		repo := NewListRepository(newTestDB(t))
		ownerID := uuid.New()
		list := buildStoredList(t, repo, ownerID, "Milk", "Bread", "Eggs")

		if err := list.RemoveEntry(list.Entries[1].ID, testTime(2, 9)); err != nil {
			t.Fatalf("RemoveEntry failed: %v", err)
		}
		if err := repo.Update(ctx, list); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := repo.FindByID(ctx, list.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if len(found.Entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(found.Entries))
		}
		if found.Entries[0].Name != "Milk" || found.Entries[1].Name != "Eggs" {
			t.Errorf("Unexpected entries: %q, %q", found.Entries[0].Name, found.Entries[1].Name)
		}
	})

	t.Run("Concurrent update loses with a conflict", func(t *testing.T) {
		repo := NewListRepository(newTestDB(t))
		ownerID := uuid.New()
		list := buildStoredList(t, repo, ownerID, "Milk")

		first, err := repo.FindByID(ctx, list.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		second, err := repo.FindByID(ctx, list.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}

		first.Rename("First writer", testTime(2, 9))
		if err := repo.Update(ctx, first); err != nil {
			t.Fatalf("First update failed: %v", err)
		}

		second.Rename("Second writer", testTime(2, 10))
		err = repo.Update(ctx, second)
		if !errors.Is(err, domainerror.ErrListConflict) {
			t.Errorf("Expected ErrListConflict, got %v", err)
		}

		// The losing write must not have touched the stored state.
		found, err := repo.FindByID(ctx, list.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.Name != "First writer" {
			t.Errorf("Expected first writer to win, got %q", found.Name)
		}
	})

	t.Run("Delete removes the list and its rows", func(t *testing.T) {
		repo := NewListRepository(newTestDB(t))
		ownerID := uuid.New()
		list := buildStoredList(t, repo, ownerID, "Milk")
		if err := list.Share(uuid.New(), entity.PermissionView, testTime(1, 12)); err != nil {
			t.Fatalf("Share failed: %v", err)
		}
		if err := repo.Update(ctx, list); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if err := repo.Delete(ctx, list.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, list.ID); !errors.Is(err, domainerror.ErrListNotFound) {
			t.Errorf("Expected ErrListNotFound after delete, got %v", err)
		}
	})

	t.Run("FindByOwner returns newest first", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewListRepository(db)
		ownerID := uuid.New()

		older := entity.NewShoppingList("Older", entity.PriorityNormal, ownerID, testTime(1, 8))
		newer := entity.NewShoppingList("Newer", entity.PriorityNormal, ownerID, testTime(3, 8))
		unrelated := entity.NewShoppingList("Other", entity.PriorityNormal, uuid.New(), testTime(2, 8))
		for _, l := range []*entity.ShoppingList{older, newer, unrelated} {
			if err := repo.Create(ctx, l); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		lists, err := repo.FindByOwner(ctx, ownerID)
		if err != nil {
			t.Fatalf("FindByOwner failed: %v", err)
		}
		if len(lists) != 2 {
			t.Fatalf("Expected 2 lists, got %d", len(lists))
		}
		if lists[0].Name != "Newer" || lists[1].Name != "Older" {
			t.Errorf("Unexpected order: %q, %q", lists[0].Name, lists[1].Name)
		}
	})

	t.Run("FindSharedWith follows share grants", func(t *testing.T) {
		repo := NewListRepository(newTestDB(t))
		granteeID := uuid.New()

		shared := entity.NewShoppingList("Shared", entity.PriorityNormal, uuid.New(), testTime(1, 8))
		if err := shared.Share(granteeID, entity.PermissionView, testTime(1, 9)); err != nil {
			t.Fatalf("Share failed: %v", err)
		}
		notShared := entity.NewShoppingList("Private", entity.PriorityNormal, uuid.New(), testTime(1, 8))
		for _, l := range []*entity.ShoppingList{shared, notShared} {
			if err := repo.Create(ctx, l); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		lists, err := repo.FindSharedWith(ctx, granteeID)
		if err != nil {
			t.Fatalf("FindSharedWith failed: %v", err)
		}
		if len(lists) != 1 || lists[0].Name != "Shared" {
			t.Errorf("Expected only the shared list, got %d lists", len(lists))
		}
	})
}
