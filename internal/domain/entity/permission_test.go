package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEvaluateAccess(t *testing.T) {
	owner := uuid.New()
	editor := uuid.New()
	viewer := uuid.New()
	stranger := uuid.New()
	now := time.Now().UTC()

	list := NewShoppingList("Groceries", PriorityNormal, owner, now)
	if err := list.Share(editor, PermissionEdit, now); err != nil {
		t.Fatalf("Share(editor) failed: %v", err)
	}
	if err := list.Share(viewer, PermissionView, now); err != nil {
		t.Fatalf("Share(viewer) failed: %v", err)
	}

	t.Run("Owner gets owner access", func(t *testing.T) {
		if got := EvaluateAccess(list, owner); got != AccessOwner {
			t.Errorf("Expected %q, got %q", AccessOwner, got)
		}
	})

	t.Run("Edit grantee gets edit access", func(t *testing.T) {
		if got := EvaluateAccess(list, editor); got != AccessEdit {
			t.Errorf("Expected %q, got %q", AccessEdit, got)
		}
	})

	t.Run("View grantee gets view access", func(t *testing.T) {
		if got := EvaluateAccess(list, viewer); got != AccessView {
			t.Errorf("Expected %q, got %q", AccessView, got)
		}
	})

	t.Run("Unrelated user gets no access", func(t *testing.T) {
		if got := EvaluateAccess(list, stranger); got != AccessNone {
			t.Errorf("Expected %q, got %q", AccessNone, got)
		}
	})

	t.Run("Grant with a corrupted level confers nothing", func(t *testing.T) {
		corrupted := NewShoppingList("Corrupted", PriorityNormal, owner, now)
		corrupted.Shares = append(corrupted.Shares, ShareGrant{
			GranteeUserID: stranger,
			Level:         PermissionLevel("admin"),
			GrantedAt:     now,
		})
		if got := EvaluateAccess(corrupted, stranger); got != AccessNone {
			t.Errorf("Expected %q, got %q", AccessNone, got)
		}
	})

	t.Run("Owner access wins over a stray grant", func(t *testing.T) {
		// A grant for the owner should never exist, but access evaluation
		// must not depend on that invariant holding.
		tampered := NewShoppingList("Tampered", PriorityNormal, owner, now)
		tampered.Shares = append(tampered.Shares, ShareGrant{
			GranteeUserID: owner,
			Level:         PermissionView,
			GrantedAt:     now,
		})
		if got := EvaluateAccess(tampered, owner); got != AccessOwner {
			t.Errorf("Expected %q, got %q", AccessOwner, got)
		}
	})
}

func TestAccessLevelPredicates(t *testing.T) {
	tests := []struct {
		level   AccessLevel
		canView bool
		canEdit bool
		isOwner bool
	}{
		{AccessOwner, true, true, true},
		{AccessEdit, true, true, false},
		{AccessView, true, false, false},
		{AccessNone, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.CanView(); got != tt.canView {
				t.Errorf("CanView() = %v, expected %v", got, tt.canView)
			}
			if got := tt.level.CanEdit(); got != tt.canEdit {
				t.Errorf("CanEdit() = %v, expected %v", got, tt.canEdit)
			}
			if got := tt.level.IsOwner(); got != tt.isOwner {
				t.Errorf("IsOwner() = %v, expected %v", got, tt.isOwner)
			}
		})
	}
}
