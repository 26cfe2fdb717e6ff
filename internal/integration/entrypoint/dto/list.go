// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shoplist/backend/internal/domain/entity"
)

// CreateListRequest represents the request body for list creation.
type CreateListRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Priority string `json:"priority" binding:"omitempty,oneof=low normal high"`
}

// UpdateListRequest represents the request body for list updates.
// Absent fields are left unchanged.
type UpdateListRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low normal high"`
}

// AddEntryRequest represents the request body for adding a product entry.
// Either catalog_item_id or name must be provided.
type AddEntryRequest struct {
	CatalogItemID *string `json:"catalog_item_id"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	Unit          string  `json:"unit"`
	Notes         string  `json:"notes" binding:"max=500"`
}

// UpdateEntryRequest represents the request body for entry updates.
// Absent fields are left unchanged.
type UpdateEntryRequest struct {
	Quantity    *int    `json:"quantity" binding:"omitempty,min=1"`
	Unit        *string `json:"unit"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
	IsPurchased *bool   `json:"is_purchased"`
}

// ToggleAllRequest represents the request body for bulk purchase toggling.
type ToggleAllRequest struct {
	IsPurchased *bool `json:"is_purchased" binding:"required"`
}

// ShareListRequest represents the request body for sharing a list.
type ShareListRequest struct {
	Username        string `json:"username" binding:"required"`
	PermissionLevel string `json:"permission_level" binding:"required,oneof=view edit"`
}

// EntryResponse represents a product entry in API responses.
type EntryResponse struct {
	ID            string    `json:"id"`
	CatalogItemID *string   `json:"catalog_item_id,omitempty"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	Unit          string    `json:"unit"`
	IsPurchased   bool      `json:"is_purchased"`
	Notes         string    `json:"notes,omitempty"`
	AddedBy       string    `json:"added_by"`
	AddedAt       time.Time `json:"added_at"`
}

// ShareGrantResponse represents a share grant in API responses.
type ShareGrantResponse struct {
	GranteeUserID   string    `json:"grantee_user_id"`
	PermissionLevel string    `json:"permission_level"`
	GrantedAt       time.Time `json:"granted_at"`
}

// ListResponse represents a shopping list in API responses.
type ListResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Priority    string               `json:"priority"`
	OwnerID     string               `json:"owner_id"`
	Access      string               `json:"access,omitempty"`
	Entries     []EntryResponse      `json:"entries"`
	Shares      []ShareGrantResponse `json:"shares,omitempty"`
	Progress    float64              `json:"progress"`
	IsCompleted bool                 `json:"is_completed"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ListSummaryResponse represents a list without its entries.
type ListSummaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Priority    string    `json:"priority"`
	OwnerID     string    `json:"owner_id"`
	EntryCount  int       `json:"entry_count"`
	Progress    float64   `json:"progress"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListCollectionResponse represents the owned/shared split of visible lists.
type ListCollectionResponse struct {
	Owned  []ListSummaryResponse `json:"owned"`
	Shared []ListSummaryResponse `json:"shared"`
}

// ToEntryResponse converts a domain ProductEntry to an EntryResponse DTO.
func ToEntryResponse(entry *entity.ProductEntry) EntryResponse {
	resp := EntryResponse{
		ID:          entry.ID.String(),
		Name:        entry.Name,
		Quantity:    entry.Quantity,
		Unit:        entry.Unit,
		IsPurchased: entry.IsPurchased,
		Notes:       entry.Notes,
		AddedBy:     entry.AddedByUserID.String(),
		AddedAt:     entry.AddedAt,
	}
	if entry.CatalogItemID != nil {
		id := entry.CatalogItemID.String()
		resp.CatalogItemID = &id
	}
	return resp
}

// ToListResponse converts a domain ShoppingList to a ListResponse DTO.
// Share grants are included only for the owner's view.
func ToListResponse(list *entity.ShoppingList, access entity.AccessLevel) ListResponse {
	resp := ListResponse{
		ID:          list.ID.String(),
		Name:        list.Name,
		Priority:    string(list.Priority),
		OwnerID:     list.OwnerID.String(),
		Access:      string(access),
		Entries:     make([]EntryResponse, len(list.Entries)),
		Progress:    list.Progress(),
		IsCompleted: list.IsCompleted(),
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
	for i := range list.Entries {
		resp.Entries[i] = ToEntryResponse(&list.Entries[i])
	}
	if access.IsOwner() {
		resp.Shares = make([]ShareGrantResponse, len(list.Shares))
		for i, s := range list.Shares {
			resp.Shares[i] = ShareGrantResponse{
				GranteeUserID:   s.GranteeUserID.String(),
				PermissionLevel: string(s.Level),
				GrantedAt:       s.GrantedAt,
			}
		}
	}
	return resp
}

// ToListSummaryResponse converts a domain ShoppingList to a summary DTO.
func ToListSummaryResponse(list *entity.ShoppingList) ListSummaryResponse {
	return ListSummaryResponse{
		ID:          list.ID.String(),
		Name:        list.Name,
		Priority:    string(list.Priority),
		OwnerID:     list.OwnerID.String(),
		EntryCount:  len(list.Entries),
		Progress:    list.Progress(),
		IsCompleted: list.IsCompleted(),
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}
