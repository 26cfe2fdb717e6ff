// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// AccessLevel is the effective access a user has on a shopping list.
type AccessLevel string

const (
	AccessOwner AccessLevel = "owner"
	AccessEdit  AccessLevel = "edit"
	AccessView  AccessLevel = "view"
	AccessNone  AccessLevel = "none"
)

// EvaluateAccess maps (list, user) to an effective access level.
// It is total and side-effect-free, and every operation that reads or
// mutates a list consults it before touching the aggregate.
func EvaluateAccess(list *ShoppingList, userID uuid.UUID) AccessLevel {
	if list.OwnerID == userID {
		return AccessOwner
	}
	for i := range list.Shares {
		if list.Shares[i].GranteeUserID == userID {
			// A grant with an unrecognized stored level confers nothing.
			switch list.Shares[i].Level {
			case PermissionEdit:
				return AccessEdit
			case PermissionView:
				return AccessView
			default:
				return AccessNone
			}
		}
	}
	return AccessNone
}

// CanView reports whether the level allows reading the list.
func (a AccessLevel) CanView() bool {
	return a == AccessOwner || a == AccessEdit || a == AccessView
}

// CanEdit reports whether the level allows mutating entries and list metadata.
func (a AccessLevel) CanEdit() bool {
	return a == AccessOwner || a == AccessEdit
}

// IsOwner reports whether the level allows sharing, unsharing and deletion.
func (a AccessLevel) IsOwner() bool {
	return a == AccessOwner
}
