// Package catalog contains product catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// DeleteCatalogItemInput represents the input for catalog item deletion.
type DeleteCatalogItemInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// DeleteCatalogItemOutput represents the output of catalog item deletion.
type DeleteCatalogItemOutput struct {
	Deleted bool
}

// DeleteCatalogItemUseCase handles removing items from the shared catalog.
type DeleteCatalogItemUseCase struct {
	catalogRepo adapter.CatalogRepository
	userRepo    adapter.UserRepository
}

// NewDeleteCatalogItemUseCase creates a new DeleteCatalogItemUseCase instance.
func NewDeleteCatalogItemUseCase(
	catalogRepo adapter.CatalogRepository,
	userRepo adapter.UserRepository,
) *DeleteCatalogItemUseCase {
	return &DeleteCatalogItemUseCase{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
	}
}

// Execute deletes a catalog item. Only admins may delete, and an item
// still referenced by any list entry is protected.
func (uc *DeleteCatalogItemUseCase) Execute(ctx context.Context, input DeleteCatalogItemInput) (*DeleteCatalogItemOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}
	if !user.IsAdmin() {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeNotCatalogAdmin,
			"only administrators can delete catalog items",
			domainerror.ErrNotCatalogAdmin,
		)
	}

	item, err := uc.catalogRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCatalogItemNotFound,
			"catalog item not found",
			domainerror.ErrCatalogItemNotFound,
		)
	}

	references, err := uc.catalogRepo.CountEntryReferences(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog item references: %w", err)
	}
	if references > 0 {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCatalogItemInUse,
			"catalog item is referenced by existing list entries",
			domainerror.ErrCatalogItemInUse,
		)
	}

	if err := uc.catalogRepo.Delete(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("failed to delete catalog item: %w", err)
	}

	return &DeleteCatalogItemOutput{Deleted: true}, nil
}
