// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user in the system.
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

// User represents a user of the shopping list service.
// Other entities reference users by id only and never own them.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with the member role.
func NewUser(username, email, passwordHash string, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		Role:         UserRoleMember,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
