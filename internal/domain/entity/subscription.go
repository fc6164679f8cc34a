// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatusActive marks the single subscription row per user that
// grants listing access. The billing platform owns every other status value,
// so only this one is modeled as a constant.
const SubscriptionStatusActive = "active"

// Subscription mirrors the billing platform's view of a user's plan. Rows are
// written by the external billing function and by billing webhooks; this
// application only reads them to decide whether to provision a freemium plan.
type Subscription struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               uuid.UUID  `json:"user_id"`
	Status               string     `json:"status"`
	PriceID              string     `json:"price_id"`
	StripeCustomerID     string     `json:"stripe_customer_id"`
	StripeSubscriptionID string     `json:"stripe_subscription_id"`
	CurrentPeriodStart   time.Time  `json:"current_period_start"`
	CurrentPeriodEnd     time.Time  `json:"current_period_end"`
	TrialStart           *time.Time `json:"trial_start,omitempty"`
	TrialEnd             *time.Time `json:"trial_end,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// IsActive reports whether this row currently grants access.
func (s *Subscription) IsActive() bool {
	return s != nil && s.Status == SubscriptionStatusActive
}
