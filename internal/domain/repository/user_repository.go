// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"habitar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. The application layer handles
// these sentinels instead of depending on database error codes.
var (
	// ErrUserNotFound is returned when a user row does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when an insert hits the unique email
	// constraint. The reconciler treats it as the authoritative duplicate
	// signal and falls back to an update.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserFilter narrows ListUsers results. Zero values mean "no filter".
type UserFilter struct {
	Role   entity.Role
	Status entity.UserStatus
	Limit  int
	Offset int
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their identity id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user row. Returns ErrDuplicateUser when the
	// email (or id) unique constraint rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// Update rewrites the mutable columns of the row keyed by user.ID.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRole patches only the role column (and updated_at) of the row
	// keyed by id.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdateStatus patches only the status column (and updated_at).
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) (*entity.User, error)

	// ReassignIdentity rewrites id, user_id and token_identifier of the row
	// keyed by email, refreshing role, status and profile fields. Used when
	// an email already has a row under a stale identity id.
	ReassignIdentity(ctx context.Context, email string, user *entity.User) error

	// ListUsers returns users matching the filter, newest first.
	ListUsers(ctx context.Context, filter UserFilter) ([]*entity.User, error)
}
