// Package stats contains the personal statistics use case.
package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/domain/entity"
)

const (
	topProductsLimit   = 10
	recentActivityDays = 30
)

// ComputeStatsInput represents the input for statistics computation.
type ComputeStatsInput struct {
	UserID uuid.UUID
}

// ComputeStatsOutput represents the output of statistics computation.
type ComputeStatsOutput struct {
	Snapshot *entity.PersonalStatsSnapshot
}

// ComputeStatsUseCase aggregates a user's statistics across every list
// visible to them, owned and shared alike.
type ComputeStatsUseCase struct {
	listRepo adapter.ListRepository
	clock    adapter.Clock
}

// NewComputeStatsUseCase creates a new ComputeStatsUseCase instance.
func NewComputeStatsUseCase(listRepo adapter.ListRepository, clock adapter.Clock) *ComputeStatsUseCase {
	return &ComputeStatsUseCase{
		listRepo: listRepo,
		clock:    clock,
	}
}

// Execute computes the statistics snapshot from current list state.
// Nothing is cached or persisted, so the numbers always reflect the
// lists as they are at call time.
func (uc *ComputeStatsUseCase) Execute(ctx context.Context, input ComputeStatsInput) (*ComputeStatsOutput, error) {
	owned, err := uc.listRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owned lists: %w", err)
	}

	shared, err := uc.listRepo.FindSharedWith(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared lists: %w", err)
	}

	now := uc.clock.Now()
	visible := make([]*entity.ShoppingList, 0, len(owned)+len(shared))
	visible = append(visible, owned...)
	visible = append(visible, shared...)

	snapshot := &entity.PersonalStatsSnapshot{
		TotalOwnedLists:  len(owned),
		TotalSharedLists: len(shared),
		LastUpdated:      now,
	}

	recentCutoff := now.AddDate(0, 0, -recentActivityDays)
	frequencies := make(map[string]*entity.ProductFrequency)

	for _, list := range visible {
		snapshot.TotalProducts += len(list.Entries)
		snapshot.TotalPurchasedProducts += list.PurchasedCount()

		// An empty list is neither active nor completed.
		if list.IsCompleted() {
			snapshot.CompletedLists++
		} else if len(list.Entries) > 0 {
			snapshot.ActiveLists++
		}

		for _, entry := range list.Entries {
			key := strings.ToLower(entry.Name)
			freq, ok := frequencies[key]
			if !ok {
				freq = &entity.ProductFrequency{Name: entry.Name}
				frequencies[key] = freq
			}
			freq.Count++
		}
	}

	for _, list := range owned {
		if !list.CreatedAt.Before(recentCutoff) {
			snapshot.RecentActivity.ListsCreatedLast30Days++
		}
	}

	if snapshot.TotalProducts > 0 {
		snapshot.ProductCompletionRate = float64(snapshot.TotalPurchasedProducts) / float64(snapshot.TotalProducts) * 100
	}

	snapshot.MostAddedProducts = topProducts(frequencies, topProductsLimit)

	return &ComputeStatsOutput{Snapshot: snapshot}, nil
}

// topProducts ranks product frequencies by count descending, breaking
// ties by name ascending so the ordering is deterministic.
func topProducts(frequencies map[string]*entity.ProductFrequency, limit int) []entity.ProductFrequency {
	ranked := make([]entity.ProductFrequency, 0, len(frequencies))
	for _, freq := range frequencies {
		ranked = append(ranked, *freq)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return strings.ToLower(ranked[i].Name) < strings.ToLower(ranked[j].Name)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
