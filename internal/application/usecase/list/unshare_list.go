// Package list contains shopping-list-related use cases.
package list

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

// UnshareListInput represents the input for revoking a share grant.
type UnshareListInput struct {
	ListID        uuid.UUID
	UserID        uuid.UUID
	GranteeUserID uuid.UUID
}

// UnshareListOutput represents the output of revoking a share grant.
type UnshareListOutput struct {
	List *entity.ShoppingList
}

// UnshareListUseCase handles revoking list access.
type UnshareListUseCase struct {
	listRepo adapter.ListRepository
	clock    adapter.Clock
}

// NewUnshareListUseCase creates a new UnshareListUseCase instance.
func NewUnshareListUseCase(listRepo adapter.ListRepository, clock adapter.Clock) *UnshareListUseCase {
	return &UnshareListUseCase{
		listRepo: listRepo,
		clock:    clock,
	}
}

// Execute removes the grant for the grantee. Only the owner may unshare.
// Revoking an absent grant is an idempotent no-op: the desired end state,
// no access, already holds.
func (uc *UnshareListUseCase) Execute(ctx context.Context, input UnshareListInput) (*UnshareListOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.IsOwner() {
		return nil, ownerOnlyError()
	}

	list.Unshare(input.GranteeUserID, uc.clock.Now())

	if err := saveList(ctx, uc.listRepo, list); err != nil {
		return nil, err
	}

	return &UnshareListOutput{List: list}, nil
}
