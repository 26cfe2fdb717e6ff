// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
)

// ListRepository defines the interface for shopping list persistence.
// The list is the transactional unit: a save replaces the aggregate
// (metadata, entries and shares) atomically.
type ListRepository interface {
	// Create persists a new shopping list with its entries and shares.
	Create(ctx context.Context, list *entity.ShoppingList) error

	// FindByID retrieves a list with its entries (in order) and shares.
	// Returns domain ErrListNotFound when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error)

	// Update saves the aggregate under an optimistic version check.
	// When the stored version no longer matches list.Version the update is
	// rejected with domain ErrListConflict and nothing is written.
	// On success the repository bumps list.Version.
	Update(ctx context.Context, list *entity.ShoppingList) error

	// Delete removes a list together with its entries and shares.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByOwner retrieves all lists owned by the user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingList, error)

	// FindSharedWith retrieves all lists with a share grant for the user.
	FindSharedWith(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error)
}
