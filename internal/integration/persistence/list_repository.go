// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
	"github.com/shoplist/backend/internal/integration/persistence/model"
)

// listRepository implements the adapter.ListRepository interface.
type listRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new list repository instance.
func NewListRepository(db *gorm.DB) adapter.ListRepository {
	return &listRepository{
		db: db,
	}
}

// Create persists a new list with its entries and share grants.
func (r *listRepository) Create(ctx context.Context, list *entity.ShoppingList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ShoppingListFromEntity(list)).Error; err != nil {
			return err
		}
		if entries := model.ProductEntriesFromEntity(list); len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		if shares := model.ShareGrantsFromEntity(list); len(shares) > 0 {
			if err := tx.Create(&shares).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a list with its entries and share grants.
func (r *listRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	var listModel model.ShoppingListModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&listModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrListNotFound
		}
		return nil, result.Error
	}

	entries, shares, err := r.loadRows(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return listModel.ToEntity(entries[id], shares[id]), nil
}

// Update saves the list guarded by its version. The write succeeds only
// when the stored version still matches the one the list was loaded
// with; otherwise a concurrent writer got there first and
// ErrListConflict is returned. Entries and grants are replaced
// wholesale inside the same transaction, and the in-memory version is
// bumped on success so the caller holds the current state.
func (r *listRepository) Update(ctx context.Context, list *entity.ShoppingList) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listModel := model.ShoppingListFromEntity(list)
		result := tx.Model(&model.ShoppingListModel{}).
			Where("id = ? AND version = ?", list.ID, list.Version).
			Updates(map[string]any{
				"name":       listModel.Name,
				"priority":   listModel.Priority,
				"version":    list.Version + 1,
				"updated_at": listModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrListConflict
		}

		if err := tx.Delete(&model.ProductEntryModel{}, "list_id = ?", list.ID).Error; err != nil {
			return err
		}
		if entries := model.ProductEntriesFromEntity(list); len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&model.ShareGrantModel{}, "list_id = ?", list.ID).Error; err != nil {
			return err
		}
		if shares := model.ShareGrantsFromEntity(list); len(shares) > 0 {
			if err := tx.Create(&shares).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	list.Version++
	return nil
}

// Delete removes a list with its entries and share grants.
func (r *listRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProductEntryModel{}, "list_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ShareGrantModel{}, "list_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ShoppingListModel{}, "id = ?", id).Error
	})
}

// FindByOwner retrieves all lists owned by the user, newest first.
func (r *listRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingList, error) {
	var listModels []model.ShoppingListModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.hydrate(ctx, listModels)
}

// FindSharedWith retrieves all lists shared with the user, newest first.
func (r *listRepository) FindSharedWith(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	var listModels []model.ShoppingListModel
	result := r.db.WithContext(ctx).
		Joins("INNER JOIN share_grants sg ON sg.list_id = shopping_lists.id").
		Where("sg.grantee_user_id = ?", userID).
		Order("shopping_lists.created_at DESC").
		Find(&listModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.hydrate(ctx, listModels)
}

// hydrate attaches entries and grants to list rows.
func (r *listRepository) hydrate(ctx context.Context, listModels []model.ShoppingListModel) ([]*entity.ShoppingList, error) {
	if len(listModels) == 0 {
		return []*entity.ShoppingList{}, nil
	}

	ids := make([]uuid.UUID, len(listModels))
	for i, lm := range listModels {
		ids[i] = lm.ID
	}

	entries, shares, err := r.loadRows(ctx, ids)
	if err != nil {
		return nil, err
	}

	lists := make([]*entity.ShoppingList, len(listModels))
	for i := range listModels {
		lists[i] = listModels[i].ToEntity(entries[listModels[i].ID], shares[listModels[i].ID])
	}
	return lists, nil
}

// loadRows fetches entry and grant rows for the given list IDs, grouped
// by list. Entries come back in insertion order.
func (r *listRepository) loadRows(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][]model.ProductEntryModel, map[uuid.UUID][]model.ShareGrantModel, error) {
	var entryModels []model.ProductEntryModel
	if err := r.db.WithContext(ctx).
		Where("list_id IN ?", listIDs).
		Order("position ASC").
		Find(&entryModels).Error; err != nil {
		return nil, nil, err
	}

	var shareModels []model.ShareGrantModel
	if err := r.db.WithContext(ctx).
		Where("list_id IN ?", listIDs).
		Order("granted_at ASC").
		Find(&shareModels).Error; err != nil {
		return nil, nil, err
	}

	entries := make(map[uuid.UUID][]model.ProductEntryModel)
	for _, em := range entryModels {
		entries[em.ListID] = append(entries[em.ListID], em)
	}
	shares := make(map[uuid.UUID][]model.ShareGrantModel)
	for _, sm := range shareModels {
		shares[sm.ListID] = append(shares[sm.ListID], sm)
	}
	return entries, shares, nil
}
