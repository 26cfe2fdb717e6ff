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

// UpdateListInput represents the input for updating list metadata.
// Nil fields are left unchanged.
type UpdateListInput struct {
	ListID   uuid.UUID
	UserID   uuid.UUID
	Name     *string
	Priority *entity.ListPriority
}

// UpdateListOutput represents the output of a list metadata update.
type UpdateListOutput struct {
	List *entity.ShoppingList
}

// UpdateListUseCase handles renaming and priority changes.
type UpdateListUseCase struct {
	listRepo adapter.ListRepository
	clock    adapter.Clock
}

// NewUpdateListUseCase creates a new UpdateListUseCase instance.
func NewUpdateListUseCase(listRepo adapter.ListRepository, clock adapter.Clock) *UpdateListUseCase {
	return &UpdateListUseCase{
		listRepo: listRepo,
		clock:    clock,
	}
}

// Execute performs the list metadata update. Requires edit permission.
func (uc *UpdateListUseCase) Execute(ctx context.Context, input UpdateListInput) (*UpdateListOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.CanEdit() {
		return nil, editForbiddenError()
	}

	now := uc.clock.Now()

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
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
		list.Rename(name, now)
	}

	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, domainerror.NewListError(
				domainerror.ErrCodeInvalidPriority,
				"priority must be 'low', 'normal' or 'high'",
				domainerror.ErrInvalidPriority,
			)
		}
		list.SetPriority(*input.Priority, now)
	}

	if err := saveList(ctx, uc.listRepo, list); err != nil {
		return nil, err
	}

	return &UpdateListOutput{List: list}, nil
}
