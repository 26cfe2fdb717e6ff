// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
)

// CatalogRepository defines the interface for catalog item persistence.
type CatalogRepository interface {
	// Create creates a new catalog item.
	Create(ctx context.Context, item *entity.CatalogItem) error

	// FindByID retrieves a catalog item by its ID.
	// Returns domain ErrCatalogItemNotFound when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error)

	// ExistsByNameAndCategory checks, case-insensitively, whether an item
	// with the given name exists in the category path.
	ExistsByNameAndCategory(ctx context.Context, name string, categoryPath []string) (bool, error)

	// Search retrieves items whose name or category path matches the query,
	// case-insensitively, ranked by usage count and then name.
	Search(ctx context.Context, query string, limit int) ([]*entity.CatalogItem, error)

	// FindTopUsed retrieves the most used items in descending usage order.
	FindTopUsed(ctx context.Context, limit int) ([]*entity.CatalogItem, error)

	// FindByNames retrieves items whose name matches any of the given
	// names, compared case-insensitively.
	FindByNames(ctx context.Context, names []string) ([]*entity.CatalogItem, error)

	// IncrementUsage atomically increments the item's usage count and sets
	// its last-used timestamp. The increment happens in the store, never as
	// read-modify-write in application code.
	IncrementUsage(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// CountEntryReferences counts live product entries referencing the item.
	CountEntryReferences(ctx context.Context, id uuid.UUID) (int64, error)

	// Delete removes a catalog item.
	Delete(ctx context.Context, id uuid.UUID) error
}
