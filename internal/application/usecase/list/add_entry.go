// Package list contains shopping-list-related use cases.
package list

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

// AddEntryInput represents the input for adding a product entry.
type AddEntryInput struct {
	ListID  uuid.UUID
	UserID  uuid.UUID
	Request ResolveEntryRequest
}

// AddEntryOutput represents the output of adding a product entry.
type AddEntryOutput struct {
	Entry entity.ProductEntry
	List  *entity.ShoppingList
}

// AddEntryUseCase handles appending a product entry to a list.
type AddEntryUseCase struct {
	listRepo adapter.ListRepository
	resolver *EntryResolver
	clock    adapter.Clock
}

// NewAddEntryUseCase creates a new AddEntryUseCase instance.
func NewAddEntryUseCase(listRepo adapter.ListRepository, resolver *EntryResolver, clock adapter.Clock) *AddEntryUseCase {
	return &AddEntryUseCase{
		listRepo: listRepo,
		resolver: resolver,
		clock:    clock,
	}
}

// Execute resolves the request against the catalog and appends the entry.
// Requires edit permission.
func (uc *AddEntryUseCase) Execute(ctx context.Context, input AddEntryInput) (*AddEntryOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.CanEdit() {
		return nil, editForbiddenError()
	}

	resolved, err := uc.resolver.Resolve(ctx, input.Request)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	entry := entity.NewProductEntry(
		resolved.CatalogItemID,
		resolved.Name,
		resolved.Quantity,
		resolved.Unit,
		resolved.Notes,
		input.UserID,
		now,
	)
	list.AddEntry(entry, now)

	if err := saveList(ctx, uc.listRepo, list); err != nil {
		return nil, err
	}

	return &AddEntryOutput{Entry: entry, List: list}, nil
}
