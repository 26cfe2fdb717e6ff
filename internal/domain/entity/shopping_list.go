// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// ListPriority represents the priority of a shopping list.
type ListPriority string

const (
	PriorityLow    ListPriority = "low"
	PriorityNormal ListPriority = "normal"
	PriorityHigh   ListPriority = "high"
)

// IsValid reports whether the priority is one of the known values.
func (p ListPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityNormal || p == PriorityHigh
}

// PermissionLevel represents the permission granted to a non-owner on a list.
type PermissionLevel string

const (
	PermissionView PermissionLevel = "view"
	PermissionEdit PermissionLevel = "edit"
)

// IsValid reports whether the permission level is one of the known values.
func (p PermissionLevel) IsValid() bool {
	return p == PermissionView || p == PermissionEdit
}

// ShareGrant authorizes a non-owner user to access a list.
// A list holds at most one grant per grantee.
type ShareGrant struct {
	GranteeUserID uuid.UUID
	Level         PermissionLevel
	GrantedAt     time.Time
}

// ProductEntry is a value object inside a ShoppingList.
// A nil CatalogItemID marks an ad-hoc entry with freeform name and unit;
// otherwise name and unit derive from the catalog item and are locked.
type ProductEntry struct {
	ID            uuid.UUID
	CatalogItemID *uuid.UUID
	Name          string
	Quantity      int
	Unit          string
	IsPurchased   bool
	Notes         string
	AddedByUserID uuid.UUID
	AddedAt       time.Time
}

// NewProductEntry creates a new unpurchased ProductEntry.
func NewProductEntry(catalogItemID *uuid.UUID, name string, quantity int, unit, notes string, addedBy uuid.UUID, now time.Time) ProductEntry {
	return ProductEntry{
		ID:            uuid.New(),
		CatalogItemID: catalogItemID,
		Name:          name,
		Quantity:      quantity,
		Unit:          unit,
		Notes:         notes,
		AddedByUserID: addedBy,
		AddedAt:       now,
	}
}

// IsCatalogLinked reports whether the entry references a catalog item.
func (e *ProductEntry) IsCatalogLinked() bool {
	return e.CatalogItemID != nil
}

// EntryPatch carries the caller-mutable fields of a ProductEntry.
// Nil fields are left unchanged. Unit is only applicable to ad-hoc entries.
type EntryPatch struct {
	Quantity    *int
	Unit        *string
	Notes       *string
	IsPurchased *bool
}

// ShoppingList is the aggregate root owning its entries and share grants.
// All mutation rules for entries and shares live here; the Version field
// supports the optimistic per-list concurrency check at the repository.
type ShoppingList struct {
	ID        uuid.UUID
	Name      string
	Priority  ListPriority
	OwnerID   uuid.UUID
	Entries   []ProductEntry
	Shares    []ShareGrant
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewShoppingList creates a new empty ShoppingList owned by ownerID.
func NewShoppingList(name string, priority ListPriority, ownerID uuid.UUID, now time.Time) *ShoppingList {
	return &ShoppingList{
		ID:        uuid.New(),
		Name:      name,
		Priority:  priority,
		OwnerID:   ownerID,
		Entries:   []ProductEntry{},
		Shares:    []ShareGrant{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename changes the list name. Validation of the new name happens in the
// application layer; the aggregate only records the change.
func (l *ShoppingList) Rename(name string, now time.Time) {
	l.Name = name
	l.UpdatedAt = now
}

// SetPriority changes the list priority.
func (l *ShoppingList) SetPriority(priority ListPriority, now time.Time) {
	l.Priority = priority
	l.UpdatedAt = now
}

// AddEntry appends an entry to the ordered collection.
func (l *ShoppingList) AddEntry(entry ProductEntry, now time.Time) {
	l.Entries = append(l.Entries, entry)
	l.UpdatedAt = now
}

// FindEntry returns a pointer to the entry with the given id, or nil.
func (l *ShoppingList) FindEntry(entryID uuid.UUID) *ProductEntry {
	for i := range l.Entries {
		if l.Entries[i].ID == entryID {
			return &l.Entries[i]
		}
	}
	return nil
}

// UpdateEntry applies the patch to the entry with the given id.
// Quantities below 1 are rejected, leaving prior state unchanged.
// Unit changes on catalog-linked entries are rejected; name is never
// patchable at all, so a linked entry can never drift from its catalog item.
func (l *ShoppingList) UpdateEntry(entryID uuid.UUID, patch EntryPatch, now time.Time) error {
	entry := l.FindEntry(entryID)
	if entry == nil {
		return domainerror.ErrEntryNotFound
	}

	if patch.Quantity != nil && *patch.Quantity < 1 {
		return domainerror.ErrInvalidQuantity
	}
	if patch.Unit != nil && entry.IsCatalogLinked() {
		return domainerror.ErrEntryCatalogLocked
	}

	if patch.Quantity != nil {
		entry.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		entry.Unit = *patch.Unit
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}
	if patch.IsPurchased != nil {
		entry.IsPurchased = *patch.IsPurchased
	}
	l.UpdatedAt = now
	return nil
}

// RemoveEntry removes the entry with the given id. Removing an unknown id is
// an error, not a silent no-op, so callers can distinguish already-removed races.
func (l *ShoppingList) RemoveEntry(entryID uuid.UUID, now time.Time) error {
	for i := range l.Entries {
		if l.Entries[i].ID == entryID {
			l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
			l.UpdatedAt = now
			return nil
		}
	}
	return domainerror.ErrEntryNotFound
}

// ToggleAllEntries bulk-sets the purchased flag on every entry.
func (l *ShoppingList) ToggleAllEntries(isPurchased bool, now time.Time) {
	for i := range l.Entries {
		l.Entries[i].IsPurchased = isPurchased
	}
	l.UpdatedAt = now
}

// Share upserts a grant for the grantee: re-sharing with an existing grantee
// replaces the permission level rather than duplicating the grant.
// The owner can never appear in the share set.
func (l *ShoppingList) Share(granteeID uuid.UUID, level PermissionLevel, now time.Time) error {
	if granteeID == l.OwnerID {
		return domainerror.ErrCannotShareWithOwner
	}
	for i := range l.Shares {
		if l.Shares[i].GranteeUserID == granteeID {
			l.Shares[i].Level = level
			l.UpdatedAt = now
			return nil
		}
	}
	l.Shares = append(l.Shares, ShareGrant{
		GranteeUserID: granteeID,
		Level:         level,
		GrantedAt:     now,
	})
	l.UpdatedAt = now
	return nil
}

// Unshare removes the grant for the grantee. Removing an absent grant is a
// no-op since the desired end state, no access, already holds.
func (l *ShoppingList) Unshare(granteeID uuid.UUID, now time.Time) {
	for i := range l.Shares {
		if l.Shares[i].GranteeUserID == granteeID {
			l.Shares = append(l.Shares[:i], l.Shares[i+1:]...)
			l.UpdatedAt = now
			return
		}
	}
}

// PurchasedCount returns the number of purchased entries.
func (l *ShoppingList) PurchasedCount() int {
	count := 0
	for i := range l.Entries {
		if l.Entries[i].IsPurchased {
			count++
		}
	}
	return count
}

// Progress returns the completion percentage in [0, 100].
// An empty list has progress 0.
func (l *ShoppingList) Progress() float64 {
	if len(l.Entries) == 0 {
		return 0
	}
	return float64(l.PurchasedCount()) / float64(len(l.Entries)) * 100
}

// IsCompleted reports whether every entry is purchased.
// An empty list is neither active nor completed.
func (l *ShoppingList) IsCompleted() bool {
	return len(l.Entries) > 0 && l.PurchasedCount() == len(l.Entries)
}
