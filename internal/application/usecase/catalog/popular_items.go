// Package catalog contains product catalog use cases.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

// PopularItemsInput represents the input for the popularity ranking.
type PopularItemsInput struct {
	Limit int
}

// PopularItemsOutput represents the output of the popularity ranking.
type PopularItemsOutput struct {
	Items []*entity.CatalogItem
}

// PopularItemsUseCase returns catalog items ranked by usage count.
// The redis leaderboard is consulted first when available; the
// database usage counters are the fallback and source of truth.
type PopularItemsUseCase struct {
	catalogRepo  adapter.CatalogRepository
	popularity   adapter.PopularityStore
	defaultLimit int
}

// NewPopularItemsUseCase creates a new PopularItemsUseCase instance.
func NewPopularItemsUseCase(
	catalogRepo adapter.CatalogRepository,
	popularity adapter.PopularityStore,
	defaultLimit int,
) *PopularItemsUseCase {
	return &PopularItemsUseCase{
		catalogRepo:  catalogRepo,
		popularity:   popularity,
		defaultLimit: defaultLimit,
	}
}

// Execute returns the most used catalog items, highest usage first.
func (uc *PopularItemsUseCase) Execute(ctx context.Context, input PopularItemsInput) (*PopularItemsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > uc.defaultLimit {
		limit = uc.defaultLimit
	}

	if items, ok := uc.fromLeaderboard(ctx, limit); ok {
		return &PopularItemsOutput{Items: items}, nil
	}

	items, err := uc.catalogRepo.FindTopUsed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load popular items: %w", err)
	}

	return &PopularItemsOutput{Items: items}, nil
}

// fromLeaderboard ranks items in redis leaderboard order. It reports
// false when the leaderboard is unavailable, empty, or names nothing
// still in the catalog, so the database counters take over.
func (uc *PopularItemsUseCase) fromLeaderboard(ctx context.Context, limit int) ([]*entity.CatalogItem, bool) {
	if uc.popularity == nil {
		return nil, false
	}

	entries, err := uc.popularity.Top(ctx, limit)
	if err != nil {
		slog.Debug("Popularity leaderboard unavailable", "error", err)
		return nil, false
	}
	if len(entries) == 0 {
		return nil, false
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	found, err := uc.catalogRepo.FindByNames(ctx, names)
	if err != nil {
		slog.Debug("Failed to resolve leaderboard items", "error", err)
		return nil, false
	}

	byName := make(map[string][]*entity.CatalogItem, len(found))
	for _, item := range found {
		key := strings.ToLower(item.Name)
		byName[key] = append(byName[key], item)
	}

	ranked := make([]*entity.CatalogItem, 0, len(found))
	for _, name := range names {
		ranked = append(ranked, byName[strings.ToLower(name)]...)
	}
	if len(ranked) == 0 {
		return nil, false
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, true
}
