package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SubscriptionUsecase provisions and inspects freemium subscriptions.
type SubscriptionUsecase interface {
	// EnsureFreemium guarantees the user has an active subscription,
	// invoking the external billing function when none exists. Safe to
	// call repeatedly; an existing active subscription makes it a no-op.
	EnsureFreemium(ctx context.Context, userID uuid.UUID, email string) error

	// HasActiveSubscription reports whether the user currently holds an
	// active subscription. Lookup failures return an error, not false.
	HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error)
}
