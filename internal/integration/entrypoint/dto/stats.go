// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shoplist/backend/internal/domain/entity"
)

// ProductFrequencyResponse represents a product frequency entry.
type ProductFrequencyResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsResponse represents the personal statistics snapshot.
type StatsResponse struct {
	TotalOwnedLists        int                        `json:"total_owned_lists"`
	TotalSharedLists       int                        `json:"total_shared_lists"`
	TotalProducts          int                        `json:"total_products"`
	TotalPurchasedProducts int                        `json:"total_purchased_products"`
	ProductCompletionRate  float64                    `json:"product_completion_rate"`
	MostAddedProducts      []ProductFrequencyResponse `json:"most_added_products"`
	ActiveLists            int                        `json:"active_lists"`
	CompletedLists         int                        `json:"completed_lists"`
	ListsCreatedLast30Days int                        `json:"lists_created_last_30_days"`
	LastUpdated            time.Time                  `json:"last_updated"`
}

// ToStatsResponse converts a domain snapshot to a StatsResponse DTO.
func ToStatsResponse(snapshot *entity.PersonalStatsSnapshot) StatsResponse {
	resp := StatsResponse{
		TotalOwnedLists:        snapshot.TotalOwnedLists,
		TotalSharedLists:       snapshot.TotalSharedLists,
		TotalProducts:          snapshot.TotalProducts,
		TotalPurchasedProducts: snapshot.TotalPurchasedProducts,
		ProductCompletionRate:  snapshot.ProductCompletionRate,
		MostAddedProducts:      make([]ProductFrequencyResponse, len(snapshot.MostAddedProducts)),
		ActiveLists:            snapshot.ActiveLists,
		CompletedLists:         snapshot.CompletedLists,
		ListsCreatedLast30Days: snapshot.RecentActivity.ListsCreatedLast30Days,
		LastUpdated:            snapshot.LastUpdated,
	}
	for i, p := range snapshot.MostAddedProducts {
		resp.MostAddedProducts[i] = ProductFrequencyResponse{
			Name:  p.Name,
			Count: p.Count,
		}
	}
	return resp
}
