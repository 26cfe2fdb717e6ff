package list

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }
func boolPtr(v bool) *bool           { return &v }
func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

// assertListCode fails the test unless err is a ListError with the given code.
func assertListCode(t *testing.T, err error, code domainerror.ListErrorCode) {
	t.Helper()
	var listErr *domainerror.ListError
	if !errors.As(err, &listErr) {
		t.Fatalf("Expected ListError, got %v", err)
	}
	if listErr.Code != code {
		t.Errorf("Expected code %s, got %s", code, listErr.Code)
	}
}

// assertCatalogCode fails the test unless err is a CatalogError with the given code.
func assertCatalogCode(t *testing.T, err error, code domainerror.CatalogErrorCode) {
	t.Helper()
	var catErr *domainerror.CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("Expected CatalogError, got %v", err)
	}
	if catErr.Code != code {
		t.Errorf("Expected code %s, got %s", code, catErr.Code)
	}
}

// seedList stores a list owned by ownerID with optional share grants.
func seedList(t *testing.T, repo *fakeListRepository, ownerID uuid.UUID, shares ...entity.ShareGrant) *entity.ShoppingList {
	t.Helper()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	list := entity.NewShoppingList("Groceries", entity.PriorityNormal, ownerID, now)
	for _, grant := range shares {
		if err := list.Share(grant.GranteeUserID, grant.Level, grant.GrantedAt); err != nil {
			t.Fatalf("Failed to seed share: %v", err)
		}
	}
	if err := repo.Create(context.Background(), list); err != nil {
		t.Fatalf("Failed to seed list: %v", err)
	}
	return list
}

// seedEntry appends an ad-hoc entry to a stored list.
func seedEntry(t *testing.T, repo *fakeListRepository, list *entity.ShoppingList, name string) entity.ProductEntry {
	t.Helper()
	now := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	entry := entity.NewProductEntry(nil, name, 1, "piece", "", list.OwnerID, now)
	stored := repo.lists[list.ID]
	stored.Entries = append(stored.Entries, entry)
	return entry
}
