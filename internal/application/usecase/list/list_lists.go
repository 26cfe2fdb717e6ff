// Package list contains shopping-list-related use cases.
package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

// ListListsInput represents the input for listing visible lists.
type ListListsInput struct {
	UserID uuid.UUID
}

// ListListsOutput represents the output of listing visible lists.
// Owned and shared are disjoint since a list never carries a grant
// for its owner.
type ListListsOutput struct {
	Owned  []*entity.ShoppingList
	Shared []*entity.ShoppingList
}

// ListListsUseCase handles listing all lists visible to a user.
type ListListsUseCase struct {
	listRepo adapter.ListRepository
}

// NewListListsUseCase creates a new ListListsUseCase instance.
func NewListListsUseCase(listRepo adapter.ListRepository) *ListListsUseCase {
	return &ListListsUseCase{
		listRepo: listRepo,
	}
}

// Execute returns the user's owned and shared lists.
func (uc *ListListsUseCase) Execute(ctx context.Context, input ListListsInput) (*ListListsOutput, error) {
	owned, err := uc.listRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned lists: %w", err)
	}

	shared, err := uc.listRepo.FindSharedWith(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared lists: %w", err)
	}

	return &ListListsOutput{Owned: owned, Shared: shared}, nil
}
