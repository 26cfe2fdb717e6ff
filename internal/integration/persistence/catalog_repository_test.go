package persistence

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
	"github.com/shoplist/backend/internal/integration/persistence/model"
)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and FindByID roundtrip the item", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		item := entity.NewCatalogItem("Whole Milk", []string{"Dairy", "Milk"}, "liter", uuid.New(), testTime(1, 10))

		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := repo.FindByID(ctx, item.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.Name != "Whole Milk" || found.DefaultUnit != "liter" {
			t.Errorf("Unexpected item: %+v", found)
		}
		if !reflect.DeepEqual(found.CategoryPath, []string{"Dairy", "Milk"}) {
			t.Errorf("Category path lost: %v", found.CategoryPath)
		}
		if found.UsageCount != 0 || found.LastUsedAt != nil {
			t.Errorf("Expected zero usage, got %d/%v", found.UsageCount, found.LastUsedAt)
		}
	})

	t.Run("FindByID returns domain error for unknown id", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrCatalogItemNotFound) {
			t.Errorf("Expected ErrCatalogItemNotFound, got %v", err)
		}
	})

	t.Run("ExistsByNameAndCategory ignores case", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		item := entity.NewCatalogItem("Whole Milk", []string{"Dairy"}, "liter", uuid.New(), testTime(1, 10))
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		exists, err := repo.ExistsByNameAndCategory(ctx, "WHOLE MILK", []string{"DAIRY"})
		if err != nil {
			t.Fatalf("ExistsByNameAndCategory failed: %v", err)
		}
		if !exists {
			t.Error("Expected case-insensitive match")
		}

		exists, err = repo.ExistsByNameAndCategory(ctx, "Whole Milk", []string{"Beverages"})
		if err != nil {
			t.Fatalf("ExistsByNameAndCategory failed: %v", err)
		}
		if exists {
			t.Error("Expected no match in a different category")
		}
	})

	t.Run("Search matches substrings and ranks by usage", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		popular := entity.NewCatalogItem("Whole Milk", []string{"Dairy"}, "liter", uuid.New(), testTime(1, 10))
		popular.UsageCount = 10
		fresh := entity.NewCatalogItem("Almond Milk", []string{"Dairy"}, "liter", uuid.New(), testTime(1, 10))
		fresh.UsageCount = 2
		other := entity.NewCatalogItem("Bread", nil, "piece", uuid.New(), testTime(1, 10))
		for _, item := range []*entity.CatalogItem{fresh, popular, other} {
			if err := repo.Create(ctx, item); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		items, err := repo.Search(ctx, "milk", 10)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("Expected 2 matches, got %d", len(items))
		}
		if items[0].Name != "Whole Milk" || items[1].Name != "Almond Milk" {
			t.Errorf("Unexpected ranking: %q, %q", items[0].Name, items[1].Name)
		}
	})

	t.Run("Search matches the category path", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		cheddar := entity.NewCatalogItem("Cheddar", []string{"Dairy", "Cheese"}, "gram", uuid.New(), testTime(1, 10))
		bread := entity.NewCatalogItem("Bread", []string{"Bakery"}, "piece", uuid.New(), testTime(1, 10))
		for _, item := range []*entity.CatalogItem{cheddar, bread} {
			if err := repo.Create(ctx, item); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		items, err := repo.Search(ctx, "DAIRY", 10)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Cheddar" {
			t.Errorf("Expected the dairy item, got %d items", len(items))
		}
	})

	t.Run("FindByNames ignores case and unknown names", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		milk := entity.NewCatalogItem("Whole Milk", []string{"Dairy"}, "liter", uuid.New(), testTime(1, 10))
		if err := repo.Create(ctx, milk); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		items, err := repo.FindByNames(ctx, []string{"WHOLE MILK", "Nonexistent"})
		if err != nil {
			t.Fatalf("FindByNames failed: %v", err)
		}
		if len(items) != 1 || items[0].ID != milk.ID {
			t.Errorf("Expected the stored item, got %d items", len(items))
		}

		items, err = repo.FindByNames(ctx, nil)
		if err != nil {
			t.Fatalf("FindByNames failed: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected no items for no names, got %d", len(items))
		}
	})

	t.Run("Search honors the limit", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		names := []string{"Milk A", "Milk B", "Milk C"}
		for _, name := range names {
			item := entity.NewCatalogItem(name, nil, "piece", uuid.New(), testTime(1, 10))
			if err := repo.Create(ctx, item); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		items, err := repo.Search(ctx, "milk", 2)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("Expected 2 items, got %d", len(items))
		}
	})

	t.Run("IncrementUsage bumps the counter and timestamp", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		item := entity.NewCatalogItem("Milk", nil, "liter", uuid.New(), testTime(1, 10))
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		usedAt := testTime(2, 15)
		if err := repo.IncrementUsage(ctx, item.ID, usedAt); err != nil {
			t.Fatalf("IncrementUsage failed: %v", err)
		}
		if err := repo.IncrementUsage(ctx, item.ID, usedAt); err != nil {
			t.Fatalf("IncrementUsage failed: %v", err)
		}

		found, err := repo.FindByID(ctx, item.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.UsageCount != 2 {
			t.Errorf("Expected usage count 2, got %d", found.UsageCount)
		}
		if found.LastUsedAt == nil || !found.LastUsedAt.Equal(usedAt) {
			t.Errorf("Expected last used %v, got %v", usedAt, found.LastUsedAt)
		}
	})

	t.Run("IncrementUsage on unknown id returns domain error", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		err := repo.IncrementUsage(ctx, uuid.New(), testTime(2, 15))
		if !errors.Is(err, domainerror.ErrCatalogItemNotFound) {
			t.Errorf("Expected ErrCatalogItemNotFound, got %v", err)
		}
	})

	t.Run("FindTopUsed skips unused items", func(t *testing.T) {
		repo := NewCatalogRepository(newTestDB(t))
		used := entity.NewCatalogItem("Milk", nil, "liter", uuid.New(), testTime(1, 10))
		used.UsageCount = 5
		unused := entity.NewCatalogItem("Caviar", nil, "gram", uuid.New(), testTime(1, 10))
		for _, item := range []*entity.CatalogItem{used, unused} {
			if err := repo.Create(ctx, item); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		items, err := repo.FindTopUsed(ctx, 10)
		if err != nil {
			t.Fatalf("FindTopUsed failed: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Milk" {
			t.Errorf("Expected only the used item, got %d items", len(items))
		}
	})

	t.Run("CountEntryReferences counts linked list entries", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatalogRepository(db)
		item := entity.NewCatalogItem("Milk", nil, "liter", uuid.New(), testTime(1, 10))
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		listRepo := NewListRepository(db)
		ownerID := uuid.New()
		list := entity.NewShoppingList("Groceries", entity.PriorityNormal, ownerID, testTime(1, 10))
		list.Entries = append(list.Entries,
			entity.NewProductEntry(&item.ID, "Milk", 1, "liter", "", ownerID, testTime(1, 10)),
			entity.NewProductEntry(nil, "Bread", 1, "piece", "", ownerID, testTime(1, 10)),
		)
		if err := listRepo.Create(ctx, list); err != nil {
			t.Fatalf("List create failed: %v", err)
		}

		count, err := repo.CountEntryReferences(ctx, item.ID)
		if err != nil {
			t.Fatalf("CountEntryReferences failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 reference, got %d", count)
		}
	})

	t.Run("Delete removes the item", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCatalogRepository(db)
		item := entity.NewCatalogItem("Milk", nil, "liter", uuid.New(), testTime(1, 10))
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if err := repo.Delete(ctx, item.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		var count int64
		if err := db.Model(&model.CatalogItemModel{}).Count(&count).Error; err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected empty table, got %d rows", count)
		}
	})
}
