// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// PopularityEntry is one row of the product popularity ranking.
type PopularityEntry struct {
	Name  string
	Score int64
}

// PopularityStore tracks how often catalog products are added to lists.
// Increments are atomic in the store so concurrent adds never lose updates.
// The store is advisory: callers treat failures as non-fatal.
type PopularityStore interface {
	// IncrementUsage bumps the counter for a product name.
	IncrementUsage(ctx context.Context, name string) error

	// Top returns the highest-scoring product names in descending order.
	Top(ctx context.Context, limit int) ([]PopularityEntry, error)
}
