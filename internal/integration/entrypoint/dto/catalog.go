// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shoplist/backend/internal/domain/entity"
)

// CreateCatalogItemRequest represents the request body for catalog item creation.
type CreateCatalogItemRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=255"`
	CategoryPath []string `json:"category_path"`
	DefaultUnit  string   `json:"default_unit" binding:"max=30"`
}

// CatalogItemResponse represents a catalog item in API responses.
type CatalogItemResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	CategoryPath []string   `json:"category_path"`
	DefaultUnit  string     `json:"default_unit"`
	UsageCount   int64      `json:"usage_count"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CatalogItemListResponse represents a collection of catalog items.
type CatalogItemListResponse struct {
	Items []CatalogItemResponse `json:"items"`
}

// ToCatalogItemResponse converts a domain CatalogItem to a response DTO.
func ToCatalogItemResponse(item *entity.CatalogItem) CatalogItemResponse {
	categoryPath := item.CategoryPath
	if categoryPath == nil {
		categoryPath = []string{}
	}
	return CatalogItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		CategoryPath: categoryPath,
		DefaultUnit:  item.DefaultUnit,
		UsageCount:   item.UsageCount,
		LastUsedAt:   item.LastUsedAt,
		CreatedAt:    item.CreatedAt,
	}
}

// ToCatalogItemListResponse converts catalog items to a collection DTO.
func ToCatalogItemListResponse(items []*entity.CatalogItem) CatalogItemListResponse {
	resp := CatalogItemListResponse{
		Items: make([]CatalogItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = ToCatalogItemResponse(item)
	}
	return resp
}
