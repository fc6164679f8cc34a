package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. Rows are written by
// the billing function and billing webhooks; this service only reads them.
// A partial unique index (user_id WHERE status = 'active') guards the
// at-most-one-active invariant in the database.
type SubscriptionModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index"`
	Status               string    `gorm:"type:varchar(30);not null;index"`
	PriceID              string    `gorm:"type:varchar(255)"`
	StripeCustomerID     string    `gorm:"type:varchar(255)"`
	StripeSubscriptionID string    `gorm:"type:varchar(255)"`
	CurrentPeriodStart   time.Time
	CurrentPeriodEnd     time.Time
	TrialStart           *time.Time
	TrialEnd             *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
