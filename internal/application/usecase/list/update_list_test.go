package list

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

func TestUpdateListUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Owner can rename and reprioritize", func(t *testing.T) {
		repo := newFakeListRepository()
		ownerID := uuid.New()
		list := seedList(t, repo, ownerID)
		uc := NewUpdateListUseCase(repo, newFakeClock())

		priority := entity.PriorityLow
		output, err := uc.Execute(ctx, UpdateListInput{
			ListID:   list.ID,
			UserID:   ownerID,
			Name:     strPtr("Weekend shopping"),
			Priority: &priority,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.List.Name != "Weekend shopping" {
			t.Errorf("Expected renamed list, got %q", output.List.Name)
		}
		if output.List.Priority != entity.PriorityLow {
			t.Errorf("Expected priority %q, got %q", entity.PriorityLow, output.List.Priority)
		}
		if output.List.Version != 2 {
			t.Errorf("Expected version bump to 2, got %d", output.List.Version)
		}
	})

	t.Run("Edit grantee can update metadata", func(t *testing.T) {
		repo := newFakeListRepository()
		editorID := uuid.New()
		list := seedList(t, repo, uuid.New(), entity.ShareGrant{
			GranteeUserID: editorID,
			Level:         entity.PermissionEdit,
			GrantedAt:     now,
		})
		uc := NewUpdateListUseCase(repo, newFakeClock())

		output, err := uc.Execute(ctx, UpdateListInput{
			ListID: list.ID,
			UserID: editorID,
			Name:   strPtr("Renamed by editor"),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.List.Name != "Renamed by editor" {
			t.Errorf("Expected renamed list, got %q", output.List.Name)
		}
	})

	t.Run("View grantee cannot update metadata", func(t *testing.T) {
		repo := newFakeListRepository()
		viewerID := uuid.New()
		list := seedList(t, repo, uuid.New(), entity.ShareGrant{
			GranteeUserID: viewerID,
			Level:         entity.PermissionView,
			GrantedAt:     now,
		})
		uc := NewUpdateListUseCase(repo, newFakeClock())

		_, err := uc.Execute(ctx, UpdateListInput{
			ListID: list.ID,
			UserID: viewerID,
			Name:   strPtr("Should not work"),
		})
		assertListCode(t, err, domainerror.ErrCodeListAccessDenied)
	})

	t.Run("Nil fields leave the list unchanged", func(t *testing.T) {
		repo := newFakeListRepository()
		ownerID := uuid.New()
		list := seedList(t, repo, ownerID)
		uc := NewUpdateListUseCase(repo, newFakeClock())

		output, err := uc.Execute(ctx, UpdateListInput{ListID: list.ID, UserID: ownerID})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.List.Name != list.Name || output.List.Priority != list.Priority {
			t.Error("Expected metadata to be unchanged")
		}
	})

	t.Run("Rejects empty name", func(t *testing.T) {
		repo := newFakeListRepository()
		ownerID := uuid.New()
		list := seedList(t, repo, ownerID)
		uc := NewUpdateListUseCase(repo, newFakeClock())

		_, err := uc.Execute(ctx, UpdateListInput{
			ListID: list.ID,
			UserID: ownerID,
			Name:   strPtr("  "),
		})
		assertListCode(t, err, domainerror.ErrCodeListNameRequired)
	})

	t.Run("Stale version surfaces as conflict", func(t *testing.T) {
		repo := newFakeListRepository()
		ownerID := uuid.New()
		list := seedList(t, repo, ownerID)
		repo.forceStale = true
		uc := NewUpdateListUseCase(repo, newFakeClock())

		_, err := uc.Execute(ctx, UpdateListInput{
			ListID: list.ID,
			UserID: ownerID,
			Name:   strPtr("Doomed rename"),
		})
		assertListCode(t, err, domainerror.ErrCodeListConflict)
	})
}
