// Package error defines domain-specific errors for the shopping list application.
package error

import "errors"

// Catalog domain errors.
var (
	// ErrCatalogItemNotFound is returned when a catalog item is not found.
	ErrCatalogItemNotFound = errors.New("catalog item not found")

	// ErrCatalogItemNameRequired is returned when the item name is empty after trimming.
	ErrCatalogItemNameRequired = errors.New("catalog item name is required")

	// ErrCatalogItemExists is returned when an item with the same name already exists
	// in the category (names are compared case-insensitively).
	ErrCatalogItemExists = errors.New("catalog item already exists in this category")

	// ErrCatalogItemInUse is returned when deleting an item still referenced by a list entry.
	ErrCatalogItemInUse = errors.New("catalog item is referenced by shopping list entries")

	// ErrNotCatalogAdmin is returned when a non-admin performs an administrative catalog edit.
	ErrNotCatalogAdmin = errors.New("only administrators can modify catalog items")
)

// CatalogErrorCode defines error codes for catalog errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CatalogErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeCatalogItemNotFound CatalogErrorCode = "CAT-010001"

	// Validation errors (02XXXX)
	ErrCodeCatalogItemNameRequired CatalogErrorCode = "CAT-020001"
	ErrCodeMissingCatalogFields    CatalogErrorCode = "CAT-020002"

	// Conflict errors (03XXXX)
	ErrCodeCatalogItemExists CatalogErrorCode = "CAT-030001"
	ErrCodeCatalogItemInUse  CatalogErrorCode = "CAT-030002"

	// Authorization errors (04XXXX)
	ErrCodeNotCatalogAdmin CatalogErrorCode = "CAT-040001"
)

// CatalogError represents a catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
