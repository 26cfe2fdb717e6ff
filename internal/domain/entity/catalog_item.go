// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CatalogItem represents a canonical product definition shared by all users.
// Its name is unique within a category path, compared case-insensitively.
// After creation only the usage statistics change, or an administrator edits it.
type CatalogItem struct {
	ID           uuid.UUID
	Name         string
	CategoryPath []string // ordered root-to-leaf category names
	DefaultUnit  string
	UsageCount   int64
	LastUsedAt   *time.Time
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCatalogItem creates a new CatalogItem with zero usage.
func NewCatalogItem(name string, categoryPath []string, defaultUnit string, createdBy uuid.UUID, now time.Time) *CatalogItem {
	return &CatalogItem{
		ID:           uuid.New(),
		Name:         name,
		CategoryPath: categoryPath,
		DefaultUnit:  defaultUnit,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CategoryKey returns the lowercase joined category path used for
// case-insensitive uniqueness and search.
func CategoryKey(categoryPath []string) string {
	return strings.ToLower(strings.Join(categoryPath, "/"))
}
