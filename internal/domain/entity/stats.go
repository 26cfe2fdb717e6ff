// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// ProductFrequency is one row of the most-added-products ranking.
type ProductFrequency struct {
	Name  string
	Count int
}

// RecentActivity summarizes a user's recent list activity.
type RecentActivity struct {
	ListsCreatedLast30Days int
}

// PersonalStatsSnapshot is a computed, non-persisted projection of a user's
// activity across owned and shared lists. It is recomputed on demand and
// never cached; LastUpdated is the evaluation instant.
type PersonalStatsSnapshot struct {
	TotalOwnedLists        int
	TotalSharedLists       int
	TotalProducts          int
	TotalPurchasedProducts int
	ProductCompletionRate  float64
	MostAddedProducts      []ProductFrequency
	ActiveLists            int
	CompletedLists         int
	RecentActivity         RecentActivity
	LastUpdated            time.Time
}
