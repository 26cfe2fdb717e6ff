// Package list contains shopping-list-related use cases.
package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/application/adapter"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// ResolveEntryRequest is an incoming add-product request before resolution.
// A non-nil CatalogItemID references a catalog item; otherwise the request
// describes an ad-hoc entry.
type ResolveEntryRequest struct {
	CatalogItemID *uuid.UUID
	Name          string
	Quantity      int
	Unit          string
	Notes         string
}

// ResolvedEntryFields are the reconciled fields for a new product entry.
type ResolvedEntryFields struct {
	CatalogItemID *uuid.UUID
	Name          string
	Quantity      int
	Unit          string
	Notes         string
}

// EntryResolver decides whether an add-product request references a catalog
// item or is ad-hoc, and reconciles the editable fields accordingly. This is
// the only construction path for product entries and the only place catalog
// usage statistics are mutated.
type EntryResolver struct {
	catalogRepo adapter.CatalogRepository
	popularity  adapter.PopularityStore
	clock       adapter.Clock
	defaultUnit string
}

// NewEntryResolver creates a new EntryResolver instance.
func NewEntryResolver(
	catalogRepo adapter.CatalogRepository,
	popularity adapter.PopularityStore,
	clock adapter.Clock,
	defaultUnit string,
) *EntryResolver {
	return &EntryResolver{
		catalogRepo: catalogRepo,
		popularity:  popularity,
		clock:       clock,
		defaultUnit: defaultUnit,
	}
}

// Resolve validates the request and returns the reconciled entry fields.
// Zero or negative quantities are rejected rather than coerced, since silent
// coercion would mask client bugs.
func (r *EntryResolver) Resolve(ctx context.Context, req ResolveEntryRequest) (*ResolvedEntryFields, error) {
	if req.Quantity < 1 {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be a positive integer",
			domainerror.ErrInvalidQuantity,
		)
	}
	if len(req.Notes) > MaxNotesLength {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeMissingListFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}

	if req.CatalogItemID != nil {
		return r.resolveCatalogLinked(ctx, req)
	}
	return r.resolveAdHoc(req)
}

// resolveCatalogLinked resolves a request referencing a catalog item.
// Name always comes from the catalog item; the unit may be overridden.
func (r *EntryResolver) resolveCatalogLinked(ctx context.Context, req ResolveEntryRequest) (*ResolvedEntryFields, error) {
	item, err := r.catalogRepo.FindByID(ctx, *req.CatalogItemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCatalogItemNotFound) {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeCatalogItemNotFound,
				"catalog item not found",
				domainerror.ErrCatalogItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find catalog item: %w", err)
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = item.DefaultUnit
	}

	if err := r.catalogRepo.IncrementUsage(ctx, item.ID, r.clock.Now()); err != nil {
		return nil, fmt.Errorf("failed to increment catalog usage: %w", err)
	}
	if r.popularity != nil {
		if err := r.popularity.IncrementUsage(ctx, item.Name); err != nil {
			slog.Debug("Failed to bump product popularity",
				"catalogItemID", item.ID,
				"error", err,
			)
		}
	}

	return &ResolvedEntryFields{
		CatalogItemID: &item.ID,
		Name:          item.Name,
		Quantity:      req.Quantity,
		Unit:          unit,
		Notes:         req.Notes,
	}, nil
}

// resolveAdHoc resolves a freeform request with no catalog reference.
func (r *EntryResolver) resolveAdHoc(req ResolveEntryRequest) (*ResolvedEntryFields, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeEntryNameRequired,
			"entry name is required for ad-hoc products",
			domainerror.ErrEntryNameRequired,
		)
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = r.defaultUnit
	}

	return &ResolvedEntryFields{
		Name:     name,
		Quantity: req.Quantity,
		Unit:     unit,
		Notes:    req.Notes,
	}, nil
}
