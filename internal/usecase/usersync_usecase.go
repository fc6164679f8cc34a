package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SyncInput describes a verified identity to reconcile into the users table.
type SyncInput struct {
	ID      uuid.UUID
	Email   string
	Role    string
	NIF     string
	Contact string
}

// SyncResult reports which reconciliation path ran. At most one of Created
// and Updated is true; both false means the row already matched.
type SyncResult struct {
	Created bool
	Updated bool
}

// UserSyncUsecase reconciles the application users table with the external
// identity service after any successful authentication event.
type UserSyncUsecase interface {
	// EnsureUser makes the users table agree with the given identity,
	// creating, patching or reassigning the row as needed. It never
	// creates duplicates for an email.
	EnsureUser(ctx context.Context, input SyncInput) (SyncResult, error)
}
