// Package catalog contains product catalog use cases.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

// SearchCatalogInput represents the input for catalog search.
type SearchCatalogInput struct {
	Query string
	Limit int
}

// SearchCatalogOutput represents the output of catalog search.
type SearchCatalogOutput struct {
	Items []*entity.CatalogItem
}

// SearchCatalogUseCase handles case-insensitive catalog name search.
type SearchCatalogUseCase struct {
	catalogRepo  adapter.CatalogRepository
	defaultLimit int
}

// NewSearchCatalogUseCase creates a new SearchCatalogUseCase instance.
func NewSearchCatalogUseCase(catalogRepo adapter.CatalogRepository, defaultLimit int) *SearchCatalogUseCase {
	return &SearchCatalogUseCase{
		catalogRepo:  catalogRepo,
		defaultLimit: defaultLimit,
	}
}

// Execute searches catalog items by name substring. An empty query
// returns an empty result rather than the whole catalog.
func (uc *SearchCatalogUseCase) Execute(ctx context.Context, input SearchCatalogInput) (*SearchCatalogOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchCatalogOutput{Items: []*entity.CatalogItem{}}, nil
	}

	limit := input.Limit
	if limit <= 0 || limit > uc.defaultLimit {
		limit = uc.defaultLimit
	}

	items, err := uc.catalogRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	return &SearchCatalogOutput{Items: items}, nil
}
