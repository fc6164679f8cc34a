// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"habitar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when no subscription row matches.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository reads the subscription rows owned by the billing
// platform. This application never writes them directly; creation goes
// through the external billing function.
type SubscriptionRepository interface {
	// FindActiveByUserID retrieves the active subscription for a user, or
	// ErrSubscriptionNotFound when none exists.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)
}
