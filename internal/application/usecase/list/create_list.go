// Package list contains shopping-list-related use cases.
package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// CreateListInput represents the input for list creation.
type CreateListInput struct {
	OwnerID  uuid.UUID
	Name     string
	Priority entity.ListPriority // defaults to normal when empty
}

// CreateListOutput represents the output of list creation.
type CreateListOutput struct {
	List *entity.ShoppingList
}

// CreateListUseCase handles shopping list creation logic.
type CreateListUseCase struct {
	listRepo adapter.ListRepository
	clock    adapter.Clock
}

// NewCreateListUseCase creates a new CreateListUseCase instance.
func NewCreateListUseCase(listRepo adapter.ListRepository, clock adapter.Clock) *CreateListUseCase {
	return &CreateListUseCase{
		listRepo: listRepo,
		clock:    clock,
	}
}

// Execute performs the list creation. The creator becomes the owner.
func (uc *CreateListUseCase) Execute(ctx context.Context, input CreateListInput) (*CreateListOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeListNameRequired,
			"list name is required",
			domainerror.ErrListNameRequired,
		)
	}
	if len(name) > MaxListNameLength {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeListNameTooLong,
			fmt.Sprintf("list name must not exceed %d characters", MaxListNameLength),
			domainerror.ErrListNameTooLong,
		)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	if !priority.IsValid() {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeInvalidPriority,
			"priority must be 'low', 'normal' or 'high'",
			domainerror.ErrInvalidPriority,
		)
	}

	list := entity.NewShoppingList(name, priority, input.OwnerID, uc.clock.Now())

	if err := uc.listRepo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return &CreateListOutput{List: list}, nil
}
