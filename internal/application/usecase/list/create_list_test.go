package list

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

func TestCreateListUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a list owned by the caller", func(t *testing.T) {
		repo := newFakeListRepository()
		uc := NewCreateListUseCase(repo, newFakeClock())
		ownerID := uuid.New()

		output, err := uc.Execute(ctx, CreateListInput{
			OwnerID:  ownerID,
			Name:     "Weekly groceries",
			Priority: entity.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.List.OwnerID != ownerID {
			t.Error("Expected caller to become owner")
		}
		if output.List.Priority != entity.PriorityHigh {
			t.Errorf("Expected priority %q, got %q", entity.PriorityHigh, output.List.Priority)
		}
		if output.List.Version != 1 {
			t.Errorf("Expected version 1, got %d", output.List.Version)
		}
		if _, ok := repo.lists[output.List.ID]; !ok {
			t.Error("Expected list to be persisted")
		}
	})

	t.Run("Defaults priority to normal", func(t *testing.T) {
		repo := newFakeListRepository()
		uc := NewCreateListUseCase(repo, newFakeClock())

		output, err := uc.Execute(ctx, CreateListInput{OwnerID: uuid.New(), Name: "Groceries"})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.List.Priority != entity.PriorityNormal {
			t.Errorf("Expected priority %q, got %q", entity.PriorityNormal, output.List.Priority)
		}
	})

	t.Run("Trims the list name", func(t *testing.T) {
		repo := newFakeListRepository()
		uc := NewCreateListUseCase(repo, newFakeClock())

		output, err := uc.Execute(ctx, CreateListInput{OwnerID: uuid.New(), Name: "  Groceries  "})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.List.Name != "Groceries" {
			t.Errorf("Expected trimmed name, got %q", output.List.Name)
		}
	})

	t.Run("Rejects empty name", func(t *testing.T) {
		uc := NewCreateListUseCase(newFakeListRepository(), newFakeClock())
		_, err := uc.Execute(ctx, CreateListInput{OwnerID: uuid.New(), Name: "   "})
		assertListCode(t, err, domainerror.ErrCodeListNameRequired)
	})

	t.Run("Rejects name over the maximum length", func(t *testing.T) {
		uc := NewCreateListUseCase(newFakeListRepository(), newFakeClock())
		_, err := uc.Execute(ctx, CreateListInput{
			OwnerID: uuid.New(),
			Name:    strings.Repeat("a", MaxListNameLength+1),
		})
		assertListCode(t, err, domainerror.ErrCodeListNameTooLong)
	})

	t.Run("Rejects unknown priority", func(t *testing.T) {
		uc := NewCreateListUseCase(newFakeListRepository(), newFakeClock())
		_, err := uc.Execute(ctx, CreateListInput{
			OwnerID:  uuid.New(),
			Name:     "Groceries",
			Priority: entity.ListPriority("urgent"),
		})
		assertListCode(t, err, domainerror.ErrCodeInvalidPriority)
	})
}
