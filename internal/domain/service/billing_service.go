package service

import (
	"context"
	"time"

	"habitar/internal/domain/entity"

	"github.com/google/uuid"
)

// TrialPeriod is the trial record the billing function creates alongside a
// freemium subscription. Its absence does not invalidate the subscription.
type TrialPeriod struct {
	UserID         uuid.UUID `json:"user_id"`
	SubscriptionID string    `json:"subscription_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
}

// FreemiumResult is the billing function's response payload.
type FreemiumResult struct {
	Message      string               `json:"message"`
	Subscription *entity.Subscription `json:"subscription"`
	TrialPeriod  *TrialPeriod         `json:"trial_period,omitempty"`
}

// BillingService invokes the external billing function that creates a
// billing customer plus a trial/freemium subscription. The function is
// idempotent on its side (it re-checks for an active subscription), so
// callers may retry it freely.
type BillingService interface {
	CreateFreemiumSubscription(ctx context.Context, userID uuid.UUID, email string) (*FreemiumResult, error)
}
