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

const (
	// MaxListNameLength is the maximum allowed length for list names.
	MaxListNameLength = 100
	// MaxNotesLength is the maximum allowed length for entry notes.
	MaxNotesLength = 500
)

// loadListWithAccess fetches a list and evaluates the caller's access level.
// A missing list and a list the caller has no access to are deliberately
// indistinguishable: both surface as not-found so existence is never leaked.
func loadListWithAccess(ctx context.Context, repo adapter.ListRepository, listID, userID uuid.UUID) (*entity.ShoppingList, entity.AccessLevel, error) {
	list, err := repo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, domainerror.ErrListNotFound) {
			return nil, entity.AccessNone, notFoundError()
		}
		return nil, entity.AccessNone, fmt.Errorf("failed to find list: %w", err)
	}

	access := entity.EvaluateAccess(list, userID)
	if access == entity.AccessNone {
		return nil, entity.AccessNone, notFoundError()
	}
	return list, access, nil
}

// notFoundError builds the coded not-found error shared by all list operations.
func notFoundError() error {
	return domainerror.NewListError(
		domainerror.ErrCodeListNotFound,
		"shopping list not found",
		domainerror.ErrListNotFound,
	)
}

// editForbiddenError builds the coded authorization error for mutating
// operations attempted without edit permission.
func editForbiddenError() error {
	return domainerror.NewListError(
		domainerror.ErrCodeListAccessDenied,
		"edit permission required",
		domainerror.ErrListAccessDenied,
	)
}

// ownerOnlyError builds the coded authorization error for owner-only operations.
func ownerOnlyError() error {
	return domainerror.NewListError(
		domainerror.ErrCodeNotListOwner,
		"only the list owner can perform this action",
		domainerror.ErrNotListOwner,
	)
}

// saveList persists the aggregate and maps a stale version to the coded
// conflict error callers are expected to retry.
func saveList(ctx context.Context, repo adapter.ListRepository, list *entity.ShoppingList) error {
	if err := repo.Update(ctx, list); err != nil {
		if errors.Is(err, domainerror.ErrListConflict) {
			return domainerror.NewListError(
				domainerror.ErrCodeListConflict,
				"list was modified concurrently, re-read and retry",
				domainerror.ErrListConflict,
			)
		}
		return fmt.Errorf("failed to save list: %w", err)
	}
	return nil
}
