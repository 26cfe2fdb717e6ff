package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shoplist/backend/internal/domain/entity"
	domainerror "github.com/shoplist/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and FindByID roundtrip the user", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := entity.NewUser("alice", "alice@example.com", "hash", testTime(1, 10))

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.Username != "alice" || found.Email != "alice@example.com" {
			t.Errorf("Unexpected user: %+v", found)
		}
		if found.Role != entity.UserRoleMember {
			t.Errorf("Expected member role, got %q", found.Role)
		}
	})

	t.Run("FindByUsername ignores case", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := entity.NewUser("Alice", "alice@example.com", "hash", testTime(1, 10))
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := repo.FindByUsername(ctx, "aLiCe")
		if err != nil {
			t.Fatalf("FindByUsername failed: %v", err)
		}
		if found.ID != user.ID {
			t.Error("Expected the stored user")
		}
	})

	t.Run("Missing user returns domain error", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.FindByUsername(ctx, "nobody"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("Existence checks", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := entity.NewUser("alice", "alice@example.com", "hash", testTime(1, 10))
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if exists, _ := repo.ExistsByEmail(ctx, "alice@example.com"); !exists {
			t.Error("Expected email to exist")
		}
		if exists, _ := repo.ExistsByUsername(ctx, "ALICE"); !exists {
			t.Error("Expected username check to ignore case")
		}
		if exists, _ := repo.ExistsByEmail(ctx, "bob@example.com"); exists {
			t.Error("Expected unknown email not to exist")
		}
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Saved token is valid until invalidated", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))
		userID := uuid.New()
		expiresAt := time.Now().UTC().Add(time.Hour)

		if err := repo.SaveRefreshToken(ctx, "token-1", userID, expiresAt); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-1")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if !valid {
			t.Error("Expected token to be valid")
		}

		if err := repo.InvalidateRefreshToken(ctx, "token-1"); err != nil {
			t.Fatalf("InvalidateRefreshToken failed: %v", err)
		}
		valid, err = repo.IsRefreshTokenValid(ctx, "token-1")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("Expected token to be invalid after invalidation")
		}
	})

	t.Run("Expired token is invalid", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))
		if err := repo.SaveRefreshToken(ctx, "token-expired", uuid.New(), time.Now().UTC().Add(-time.Minute)); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-expired")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("Expected expired token to be invalid")
		}
	})

	t.Run("Unknown token is invalid without error", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))
		valid, err := repo.IsRefreshTokenValid(ctx, "never-issued")
		if err != nil {
			t.Fatalf("IsRefreshTokenValid failed: %v", err)
		}
		if valid {
			t.Error("Expected unknown token to be invalid")
		}
	})

	t.Run("InvalidateAllUserRefreshTokens revokes every token of the user", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))
		userID := uuid.New()
		otherID := uuid.New()
		expiresAt := time.Now().UTC().Add(time.Hour)

		for _, token := range []string{"user-1", "user-2"} {
			if err := repo.SaveRefreshToken(ctx, token, userID, expiresAt); err != nil {
				t.Fatalf("SaveRefreshToken failed: %v", err)
			}
		}
		if err := repo.SaveRefreshToken(ctx, "other-1", otherID, expiresAt); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}

		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("InvalidateAllUserRefreshTokens failed: %v", err)
		}

		for _, token := range []string{"user-1", "user-2"} {
			if valid, _ := repo.IsRefreshTokenValid(ctx, token); valid {
				t.Errorf("Expected %s to be invalid", token)
			}
		}
		if valid, _ := repo.IsRefreshTokenValid(ctx, "other-1"); !valid {
			t.Error("Expected other user's token to stay valid")
		}
	})
}
