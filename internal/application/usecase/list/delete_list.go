// Package list contains shopping-list-related use cases.
package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
)

// DeleteListInput represents the input for list deletion.
type DeleteListInput struct {
	ListID uuid.UUID
	UserID uuid.UUID
}

// DeleteListOutput represents the output of list deletion.
type DeleteListOutput struct {
	Deleted bool
}

// DeleteListUseCase handles shopping list deletion.
type DeleteListUseCase struct {
	listRepo adapter.ListRepository
}

// NewDeleteListUseCase creates a new DeleteListUseCase instance.
func NewDeleteListUseCase(listRepo adapter.ListRepository) *DeleteListUseCase {
	return &DeleteListUseCase{
		listRepo: listRepo,
	}
}

// Execute deletes the list with its entries and shares. Only the owner may delete.
func (uc *DeleteListUseCase) Execute(ctx context.Context, input DeleteListInput) (*DeleteListOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.IsOwner() {
		return nil, ownerOnlyError()
	}

	if err := uc.listRepo.Delete(ctx, list.ID); err != nil {
		return nil, fmt.Errorf("failed to delete list: %w", err)
	}

	return &DeleteListOutput{Deleted: true}, nil
}
