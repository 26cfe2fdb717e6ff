// Package list contains shopping-list-related use cases.
package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// RemoveEntryInput represents the input for removing a product entry.
type RemoveEntryInput struct {
	ListID  uuid.UUID
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// RemoveEntryOutput represents the output of removing a product entry.
type RemoveEntryOutput struct {
	List *entity.ShoppingList
}

// RemoveEntryUseCase handles product entry removal.
type RemoveEntryUseCase struct {
	listRepo adapter.ListRepository
	clock    adapter.Clock
}

// NewRemoveEntryUseCase creates a new RemoveEntryUseCase instance.
func NewRemoveEntryUseCase(listRepo adapter.ListRepository, clock adapter.Clock) *RemoveEntryUseCase {
	return &RemoveEntryUseCase{
		listRepo: listRepo,
		clock:    clock,
	}
}

// Execute removes the entry. Requires edit permission. Removing an unknown
// entry id is a not-found error, not a silent no-op, so callers can
// distinguish already-removed races.
func (uc *RemoveEntryUseCase) Execute(ctx context.Context, input RemoveEntryInput) (*RemoveEntryOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.CanEdit() {
		return nil, editForbiddenError()
	}

	if err := list.RemoveEntry(input.EntryID, uc.clock.Now()); err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewListError(
				domainerror.ErrCodeEntryNotFound,
				"product entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to remove entry: %w", err)
	}

	if err := saveList(ctx, uc.listRepo, list); err != nil {
		return nil, err
	}

	return &RemoveEntryOutput{List: list}, nil
}
