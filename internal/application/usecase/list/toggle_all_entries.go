// Package list contains shopping-list-related use cases.
package list

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

// ToggleAllEntriesInput represents the input for bulk-toggling entries.
type ToggleAllEntriesInput struct {
	ListID      uuid.UUID
	UserID      uuid.UUID
	IsPurchased bool
}

// ToggleAllEntriesOutput represents the output of bulk-toggling entries.
type ToggleAllEntriesOutput struct {
	List *entity.ShoppingList
}

// ToggleAllEntriesUseCase handles bulk-setting the purchased flag.
type ToggleAllEntriesUseCase struct {
	listRepo adapter.ListRepository
	clock    adapter.Clock
}

// NewToggleAllEntriesUseCase creates a new ToggleAllEntriesUseCase instance.
func NewToggleAllEntriesUseCase(listRepo adapter.ListRepository, clock adapter.Clock) *ToggleAllEntriesUseCase {
	return &ToggleAllEntriesUseCase{
		listRepo: listRepo,
		clock:    clock,
	}
}

// Execute bulk-sets the purchased flag on every entry. Requires edit
// permission. The optimistic version check on save makes the bulk toggle
// atomic with respect to concurrent single-entry updates: whichever write
// loses the race gets a conflict instead of silently reverting the other.
func (uc *ToggleAllEntriesUseCase) Execute(ctx context.Context, input ToggleAllEntriesInput) (*ToggleAllEntriesOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.CanEdit() {
		return nil, editForbiddenError()
	}

	list.ToggleAllEntries(input.IsPurchased, uc.clock.Now())

	if err := saveList(ctx, uc.listRepo, list); err != nil {
		return nil, err
	}

	return &ToggleAllEntriesOutput{List: list}, nil
}
