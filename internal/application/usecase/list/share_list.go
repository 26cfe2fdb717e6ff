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
	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

// ShareListInput represents the input for sharing a list.
type ShareListInput struct {
	ListID          uuid.UUID
	UserID          uuid.UUID
	GranteeUsername string
	PermissionLevel entity.PermissionLevel
}

// ShareListOutput represents the output of sharing a list.
type ShareListOutput struct {
	List    *entity.ShoppingList
	Grantee *entity.User
}

// ShareListUseCase handles granting list access to another user.
type ShareListUseCase struct {
	listRepo adapter.ListRepository
	userRepo adapter.UserRepository
	notifier adapter.ShareNotifier
	clock    adapter.Clock
}

// NewShareListUseCase creates a new ShareListUseCase instance.
func NewShareListUseCase(
	listRepo adapter.ListRepository,
	userRepo adapter.UserRepository,
	notifier adapter.ShareNotifier,
	clock adapter.Clock,
) *ShareListUseCase {
	return &ShareListUseCase{
		listRepo: listRepo,
		userRepo: userRepo,
		notifier: notifier,
		clock:    clock,
	}
}

// Execute upserts a share grant for the grantee. Only the owner may share.
// Sharing twice with the same grantee replaces the permission level rather
// than duplicating the grant.
func (uc *ShareListUseCase) Execute(ctx context.Context, input ShareListInput) (*ShareListOutput, error) {
	list, access, err := loadListWithAccess(ctx, uc.listRepo, input.ListID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !access.IsOwner() {
		return nil, ownerOnlyError()
	}

	if !input.PermissionLevel.IsValid() {
		return nil, domainerror.NewListError(
			domainerror.ErrCodeInvalidPermissionLevel,
			"permission level must be 'view' or 'edit'",
			domainerror.ErrInvalidPermissionLevel,
		)
	}

	username := strings.TrimSpace(input.GranteeUsername)
	grantee, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewListError(
				domainerror.ErrCodeGranteeNotFound,
				"grantee user not found",
				domainerror.ErrGranteeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve grantee: %w", err)
	}

	if err := list.Share(grantee.ID, input.PermissionLevel, uc.clock.Now()); err != nil {
		if errors.Is(err, domainerror.ErrCannotShareWithOwner) {
			return nil, domainerror.NewListError(
				domainerror.ErrCodeCannotShareWithOwner,
				"cannot share a list with its owner",
				domainerror.ErrCannotShareWithOwner,
			)
		}
		return nil, fmt.Errorf("failed to share list: %w", err)
	}

	if err := saveList(ctx, uc.listRepo, list); err != nil {
		return nil, err
	}

	uc.notifyGrantee(ctx, list, grantee, input)

	return &ShareListOutput{List: list, Grantee: grantee}, nil
}

// notifyGrantee sends a best-effort notification email. Delivery failures
// are logged and never surface to the caller.
func (uc *ShareListUseCase) notifyGrantee(ctx context.Context, list *entity.ShoppingList, grantee *entity.User, input ShareListInput) {
	if uc.notifier == nil {
		return
	}

	owner, err := uc.userRepo.FindByID(ctx, list.OwnerID)
	if err != nil {
		slog.Debug("Failed to load owner for share notification",
			"listID", list.ID,
			"error", err,
		)
		return
	}

	err = uc.notifier.NotifyListShared(ctx, adapter.ShareNotificationInput{
		GranteeEmail:    grantee.Email,
		GranteeUsername: grantee.Username,
		OwnerUsername:   owner.Username,
		ListName:        list.Name,
		PermissionLevel: string(input.PermissionLevel),
	})
	if err != nil {
		slog.Warn("Failed to send share notification",
			"listID", list.ID,
			"granteeID", grantee.ID,
			"error", err,
		)
	}
}
