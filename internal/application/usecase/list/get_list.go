// Package list contains shopping-list-related use cases.
package list

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

// GetListInput represents the input for reading a single list.
type GetListInput struct {
	ListID uuid.UUID
	UserID uuid.UUID
}

// GetListOutput represents the output of reading a single list.
type GetListOutput struct {
	List   *entity.ShoppingList
	Access entity.AccessLevel
}

// GetListUseCase handles reading a single list.
type GetListUseCase struct {
	listRepo adapter.ListRepository
}

// NewGetListUseCase creates a new GetListUseCase instance.
func NewGetListUseCase(listRepo adapter.ListRepository) *GetListUseCase {
	return &GetListUseCase{
		listRepo: listRepo,
	}
}

// Execute returns the list when the caller has at least view access.
func (uc *GetListUseCase) Execute(ctx context.Context, input GetListInput) (*GetListOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetListOutput{List: list, Access: access}, nil
}
