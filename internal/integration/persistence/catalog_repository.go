// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
	"github.com/shoplist/backend/internal/integration/persistence/model"
)

// catalogRepository implements the adapter.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository instance.
func NewCatalogRepository(db *gorm.DB) adapter.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// Create creates a new catalog item in the database.
func (r *catalogRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	itemModel := model.CatalogItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a catalog item by its ID.
func (r *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	var itemModel model.CatalogItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCatalogItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// ExistsByNameAndCategory checks for an item with the same name in the
// same category, compared case-insensitively.
func (r *catalogRepository) ExistsByNameAndCategory(ctx context.Context, name string, categoryPath []string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CatalogItemModel{}).
		Where("LOWER(name) = LOWER(?) AND category_key = ?", name, entity.CategoryKey(categoryPath)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Search retrieves catalog items whose name or category path contains
// the query, compared case-insensitively, most used first. The
// category_key column already holds the lowercase joined path.
func (r *catalogRepository) Search(ctx context.Context, query string, limit int) ([]*entity.CatalogItem, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var itemModels []model.CatalogItemModel
	result := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR category_key LIKE ?", pattern, pattern).
		Order("usage_count DESC, name ASC").
		Limit(limit).
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(itemModels), nil
}

// FindByNames retrieves items whose name matches any of the given
// names, compared case-insensitively.
func (r *catalogRepository) FindByNames(ctx context.Context, names []string) ([]*entity.CatalogItem, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	var itemModels []model.CatalogItemModel
	result := r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", lowered).
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(itemModels), nil
}

// FindTopUsed retrieves the most used catalog items.
func (r *catalogRepository) FindTopUsed(ctx context.Context, limit int) ([]*entity.CatalogItem, error) {
	var itemModels []model.CatalogItemModel
	result := r.db.WithContext(ctx).
		Where("usage_count > 0").
		Order("usage_count DESC, name ASC").
		Limit(limit).
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(itemModels), nil
}

// IncrementUsage bumps the usage counter atomically in the database so
// concurrent adds never lose an increment.
func (r *catalogRepository) IncrementUsage(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.CatalogItemModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"usage_count":  gorm.Expr("usage_count + 1"),
			"last_used_at": usedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCatalogItemNotFound
	}
	return nil
}

// CountEntryReferences counts list entries linked to the catalog item.
func (r *catalogRepository) CountEntryReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProductEntryModel{}).
		Where("catalog_item_id = ?", id).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes a catalog item from the database.
func (r *catalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CatalogItemModel{}, "id = ?", id)
	return result.Error
}

func toEntities(itemModels []model.CatalogItemModel) []*entity.CatalogItem {
	items := make([]*entity.CatalogItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToEntity()
	}
	return items
}
