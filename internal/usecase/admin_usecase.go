package usecase

import (
	"context"

	"habitar/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersInput filters and pages the admin user listing.
type ListUsersInput struct {
	Role   string `query:"role"`
	Status string `query:"status"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// AdminUsecase defines the administrative user-management operations.
// Authorization (administrador role) is enforced by the delivery layer.
type AdminUsecase interface {
	// ListUsers returns users matching the filter, newest first.
	ListUsers(ctx context.Context, input ListUsersInput) ([]*entity.User, error)

	// UpdateStatus sets an arbitrary valid status on a user.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.User, error)

	// SuspendUser moves a user to the suspended status.
	SuspendUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ActivateUser moves a user back to the active status.
	ActivateUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// BanUser moves a user to the banned status and best-effort revokes
	// every identity session. The identity record itself is kept.
	BanUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
