// Package catalog contains product catalog use cases.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// CreateCatalogItemInput represents the input for catalog item creation.
type CreateCatalogItemInput struct {
	UserID       uuid.UUID
	Name         string
	CategoryPath []string
	DefaultUnit  string
}

// CreateCatalogItemOutput represents the output of catalog item creation.
type CreateCatalogItemOutput struct {
	Item *entity.CatalogItem
}

// CreateCatalogItemUseCase handles adding new items to the shared catalog.
type CreateCatalogItemUseCase struct {
	catalogRepo adapter.CatalogRepository
	clock       adapter.Clock
	defaultUnit string
}

// NewCreateCatalogItemUseCase creates a new CreateCatalogItemUseCase instance.
func NewCreateCatalogItemUseCase(
	catalogRepo adapter.CatalogRepository,
	clock adapter.Clock,
	defaultUnit string,
) *CreateCatalogItemUseCase {
	return &CreateCatalogItemUseCase{
		catalogRepo: catalogRepo,
		clock:       clock,
		defaultUnit: defaultUnit,
	}
}

// Execute creates a catalog item. Names are unique per category path,
// compared case-insensitively.
func (uc *CreateCatalogItemUseCase) Execute(ctx context.Context, input CreateCatalogItemInput) (*CreateCatalogItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCatalogItemNameRequired,
			"catalog item name is required",
			domainerror.ErrCatalogItemNameRequired,
		)
	}

	categoryPath := normalizeCategoryPath(input.CategoryPath)

	exists, err := uc.catalogRepo.ExistsByNameAndCategory(ctx, name, categoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check catalog item existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCatalogItemExists,
			"catalog item already exists in this category",
			domainerror.ErrCatalogItemExists,
		)
	}

	unit := strings.TrimSpace(input.DefaultUnit)
	if unit == "" {
		unit = uc.defaultUnit
	}

	item := entity.NewCatalogItem(name, categoryPath, unit, input.UserID, uc.clock.Now())
	if err := uc.catalogRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create catalog item: %w", err)
	}

	return &CreateCatalogItemOutput{Item: item}, nil
}

// normalizeCategoryPath trims each segment and drops empty ones so that
// ["Dairy", " ", ""] and ["Dairy"] name the same category.
func normalizeCategoryPath(path []string) []string {
	normalized := make([]string, 0, len(path))
	for _, segment := range path {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			normalized = append(normalized, segment)
		}
	}
	return normalized
}
