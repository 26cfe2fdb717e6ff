// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/shoplist/backend/internal/domain/entity"
)

// CatalogItemModel represents the catalog_items table in the database.
// CategoryKey is the lowercase joined category path and backs the
// per-category uniqueness constraint.
type CatalogItemModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_catalog_name_category"`
	CategoryPath pq.StringArray `gorm:"type:text[]"`
	CategoryKey  string         `gorm:"type:varchar(500);not null;uniqueIndex:idx_catalog_name_category"`
	DefaultUnit  string         `gorm:"type:varchar(30);not null"`
	UsageCount   int64          `gorm:"not null;default:0"`
	LastUsedAt   *time.Time
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the CatalogItemModel.
func (CatalogItemModel) TableName() string {
	return "catalog_items"
}

// ToEntity converts a CatalogItemModel to a domain CatalogItem entity.
func (m *CatalogItemModel) ToEntity() *entity.CatalogItem {
	return &entity.CatalogItem{
		ID:           m.ID,
		Name:         m.Name,
		CategoryPath: []string(m.CategoryPath),
		DefaultUnit:  m.DefaultUnit,
		UsageCount:   m.UsageCount,
		LastUsedAt:   m.LastUsedAt,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CatalogItemFromEntity creates a CatalogItemModel from a domain CatalogItem entity.
func CatalogItemFromEntity(item *entity.CatalogItem) *CatalogItemModel {
	return &CatalogItemModel{
		ID:           item.ID,
		Name:         item.Name,
		CategoryPath: pq.StringArray(item.CategoryPath),
		CategoryKey:  entity.CategoryKey(item.CategoryPath),
		DefaultUnit:  item.DefaultUnit,
		UsageCount:   item.UsageCount,
		LastUsedAt:   item.LastUsedAt,
		CreatedBy:    item.CreatedBy,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
