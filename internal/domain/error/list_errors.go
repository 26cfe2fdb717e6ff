// Package error defines domain-specific errors for the shopping list application.
package error

import "errors"

// Shopping list domain errors.
var (
	// ErrListNotFound is returned when a list does not exist or is not visible to the caller.
	ErrListNotFound = errors.New("shopping list not found")

	// ErrListNameRequired is returned when the list name is empty after trimming.
	ErrListNameRequired = errors.New("list name is required")

	// ErrListNameTooLong is returned when the list name exceeds the maximum length.
	ErrListNameTooLong = errors.New("list name too long")

	// ErrInvalidPriority is returned when an unknown priority value is provided.
	ErrInvalidPriority = errors.New("invalid list priority")

	// ErrEntryNotFound is returned when an entry id does not belong to the list.
	ErrEntryNotFound = errors.New("product entry not found")

	// ErrInvalidQuantity is returned when a quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrEntryNameRequired is returned when an ad-hoc entry has no name after trimming.
	ErrEntryNameRequired = errors.New("entry name is required")

	// ErrEntryCatalogLocked is returned when name or unit of a catalog-linked entry is edited.
	ErrEntryCatalogLocked = errors.New("name and unit of a catalog-linked entry cannot be edited")

	// ErrInvalidPermissionLevel is returned when an unknown share permission is provided.
	ErrInvalidPermissionLevel = errors.New("invalid permission level")

	// ErrCannotShareWithOwner is returned when the owner is named as a share grantee.
	ErrCannotShareWithOwner = errors.New("cannot share a list with its owner")

	// ErrGranteeNotFound is returned when the grantee username does not resolve to a user.
	ErrGranteeNotFound = errors.New("grantee user not found")

	// ErrListAccessDenied is returned when the caller lacks the permission level an operation needs.
	ErrListAccessDenied = errors.New("insufficient permission for this list")

	// ErrNotListOwner is returned when a non-owner calls an owner-only operation.
	ErrNotListOwner = errors.New("only the list owner can perform this action")

	// ErrListConflict is returned when a concurrent modification invalidated the caller's
	// version of the list. Callers are expected to re-read and retry.
	ErrListConflict = errors.New("list was modified concurrently")
)

// ListErrorCode defines error codes for shopping list errors.
// Format: LST-XXYYYY where XX is category and YYYY is specific error.
type ListErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeListNotFound    ListErrorCode = "LST-010001"
	ErrCodeEntryNotFound   ListErrorCode = "LST-010002"
	ErrCodeGranteeNotFound ListErrorCode = "LST-010003"

	// Validation errors (02XXXX)
	ErrCodeListNameRequired       ListErrorCode = "LST-020001"
	ErrCodeListNameTooLong        ListErrorCode = "LST-020002"
	ErrCodeInvalidPriority        ListErrorCode = "LST-020003"
	ErrCodeInvalidQuantity        ListErrorCode = "LST-020004"
	ErrCodeEntryNameRequired      ListErrorCode = "LST-020005"
	ErrCodeEntryCatalogLocked     ListErrorCode = "LST-020006"
	ErrCodeInvalidPermissionLevel ListErrorCode = "LST-020007"
	ErrCodeCannotShareWithOwner   ListErrorCode = "LST-020008"
	ErrCodeMissingListFields      ListErrorCode = "LST-020009"

	// Conflict errors (03XXXX)
	ErrCodeListConflict ListErrorCode = "LST-030001"

	// Authorization errors (04XXXX)
	ErrCodeListAccessDenied ListErrorCode = "LST-040001"
	ErrCodeNotListOwner     ListErrorCode = "LST-040002"
)

// ListError represents a shopping list error with code and message.
type ListError struct {
	Code    ListErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ListError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ListError) Unwrap() error {
	return e.Err
}

// NewListError creates a new ListError with the given code and message.
func NewListError(code ListErrorCode, message string, err error) *ListError {
	return &ListError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
