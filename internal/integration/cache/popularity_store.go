// Package cache implements cache-backed adapters on top of Redis.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/shoplist/backend/internal/application/adapter"
)

// popularityKey holds the sorted set ranking catalog items by usage.
const popularityKey = "catalog:popularity"

// popularityStore implements the adapter.PopularityStore interface
// with a Redis sorted set. ZINCRBY keeps concurrent increments atomic.
type popularityStore struct {
	client *redis.Client
}

// NewPopularityStore creates a new popularity store instance.
func NewPopularityStore(client *redis.Client) adapter.PopularityStore {
	return &popularityStore{
		client: client,
	}
}

// IncrementUsage bumps the item's score in the leaderboard.
func (s *popularityStore) IncrementUsage(ctx context.Context, name string) error {
	return s.client.ZIncrBy(ctx, popularityKey, 1, name).Err()
}

// Top returns the highest scored items, best first.
func (s *popularityStore) Top(ctx context.Context, limit int) ([]adapter.PopularityEntry, error) {
	if limit <= 0 {
		return []adapter.PopularityEntry{}, nil
	}

	members, err := s.client.ZRevRangeWithScores(ctx, popularityKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]adapter.PopularityEntry, 0, len(members))
	for _, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, adapter.PopularityEntry{
			Name:  name,
			Score: int64(m.Score),
		})
	}
	return entries, nil
}
