// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
)

// ShoppingListModel represents the shopping_lists table in the database.
type ShoppingListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Priority  string    `gorm:"type:varchar(10);not null;default:'normal'"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ShoppingListModel.
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// ProductEntryModel represents the product_entries table in the database.
// Position preserves the insertion order of entries within a list.
type ProductEntryModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ListID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CatalogItemID *uuid.UUID `gorm:"type:uuid;index"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Quantity      int        `gorm:"not null;default:1"`
	Unit          string     `gorm:"type:varchar(30);not null"`
	IsPurchased   bool       `gorm:"not null;default:false"`
	Notes         string     `gorm:"type:varchar(500)"`
	AddedByUserID uuid.UUID  `gorm:"type:uuid;not null"`
	AddedAt       time.Time  `gorm:"not null"`
	Position      int        `gorm:"not null"`
}

// TableName returns the table name for the ProductEntryModel.
func (ProductEntryModel) TableName() string {
	return "product_entries"
}

// ShareGrantModel represents the share_grants table in the database.
type ShareGrantModel struct {
	ListID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GranteeUserID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Level         string    `gorm:"type:varchar(10);not null"`
	GrantedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ShareGrantModel.
func (ShareGrantModel) TableName() string {
	return "share_grants"
}

// ToEntity converts a ShoppingListModel with its rows to a domain ShoppingList entity.
func (m *ShoppingListModel) ToEntity(entries []ProductEntryModel, shares []ShareGrantModel) *entity.ShoppingList {
	list := &entity.ShoppingList{
		ID:        m.ID,
		Name:      m.Name,
		Priority:  entity.ListPriority(m.Priority),
		OwnerID:   m.OwnerID,
		Entries:   make([]entity.ProductEntry, len(entries)),
		Shares:    make([]entity.ShareGrant, len(shares)),
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i, e := range entries {
		list.Entries[i] = entity.ProductEntry{
			ID:            e.ID,
			CatalogItemID: e.CatalogItemID,
			Name:          e.Name,
			Quantity:      e.Quantity,
			Unit:          e.Unit,
			IsPurchased:   e.IsPurchased,
			Notes:         e.Notes,
			AddedByUserID: e.AddedByUserID,
			AddedAt:       e.AddedAt,
		}
	}
	for i, s := range shares {
		list.Shares[i] = entity.ShareGrant{
			GranteeUserID: s.GranteeUserID,
			Level:         entity.PermissionLevel(s.Level),
			GrantedAt:     s.GrantedAt,
		}
	}
	return list
}

// ShoppingListFromEntity creates a ShoppingListModel from a domain ShoppingList entity.
func ShoppingListFromEntity(list *entity.ShoppingList) *ShoppingListModel {
	return &ShoppingListModel{
		ID:        list.ID,
		Name:      list.Name,
		Priority:  string(list.Priority),
		OwnerID:   list.OwnerID,
		Version:   list.Version,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

// ProductEntriesFromEntity creates entry rows from a domain ShoppingList entity.
func ProductEntriesFromEntity(list *entity.ShoppingList) []ProductEntryModel {
	rows := make([]ProductEntryModel, len(list.Entries))
	for i, e := range list.Entries {
		rows[i] = ProductEntryModel{
			ID:            e.ID,
			ListID:        list.ID,
			CatalogItemID: e.CatalogItemID,
			Name:          e.Name,
			Quantity:      e.Quantity,
			Unit:          e.Unit,
			IsPurchased:   e.IsPurchased,
			Notes:         e.Notes,
			AddedByUserID: e.AddedByUserID,
			AddedAt:       e.AddedAt,
			Position:      i,
		}
	}
	return rows
}

// ShareGrantsFromEntity creates grant rows from a domain ShoppingList entity.
func ShareGrantsFromEntity(list *entity.ShoppingList) []ShareGrantModel {
	rows := make([]ShareGrantModel, len(list.Shares))
	for i, s := range list.Shares {
		rows[i] = ShareGrantModel{
			ListID:        list.ID,
			GranteeUserID: s.GranteeUserID,
			Level:         string(s.Level),
			GrantedAt:     s.GrantedAt,
		}
	}
	return rows
}
