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

// UpdateEntryInput represents the input for patching a product entry.
// Only the mutable subset of fields is accepted; unit changes are rejected
// for catalog-linked entries.
type UpdateEntryInput struct {
	ListID  uuid.UUID
	UserID  uuid.UUID
	EntryID uuid.UUID
	Patch   entity.EntryPatch
}

// UpdateEntryOutput represents the output of patching a product entry.
type UpdateEntryOutput struct {
	Entry entity.ProductEntry
	List  *entity.ShoppingList
}

// UpdateEntryUseCase handles product entry updates.
type UpdateEntryUseCase struct {
	listRepo adapter.ListRepository
	clock    adapter.Clock
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(listRepo adapter.ListRepository, clock adapter.Clock) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		listRepo: listRepo,
		clock:    clock,
	}
}

// Execute applies the patch to the entry. Requires edit permission.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.CanEdit() {
		return nil, editForbiddenError()
	}

	if input.Patch.Notes != nil && len(*input.Patch.Notes) > MaxNotesLength {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeMissingListFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}

	if err := list.UpdateEntry(input.EntryID, input.Patch, uc.clock.Now()); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrEntryNotFound):
			return nil, domainerror.NewListError(
				domainerror.ErrCodeEntryNotFound,
				"product entry not found",
				domainerror.ErrEntryNotFound,
			)
		case errors.Is(err, domainerror.ErrInvalidQuantity):
			return nil, domainerror.NewListError(
				domainerror.ErrCodeInvalidQuantity,
				"quantity must be at least 1",
				domainerror.ErrInvalidQuantity,
			)
		case errors.Is(err, domainerror.ErrEntryCatalogLocked):
			return nil, domainerror.NewListError(
				domainerror.ErrCodeEntryCatalogLocked,
				"unit of a catalog-linked entry cannot be edited",
				domainerror.ErrEntryCatalogLocked,
			)
		default:
			return nil, fmt.Errorf("failed to update entry: %w", err)
		}
	}

	if err := saveList(ctx, uc.listRepo, list); err != nil {
		return nil, err
	}

	return &UpdateEntryOutput{Entry: *list.FindEntry(input.EntryID), List: list}, nil
}
