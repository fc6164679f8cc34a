package postgres

import (
	"context"

	"habitar/internal/domain/entity"
	"habitar/internal/domain/repository"
	"habitar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements repository.SubscriptionRepository using GORM.
// It is read-only; subscription rows are written by the billing platform.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// FindActiveByUserID retrieves the active subscription for a user. The
// partial unique index on (user_id) WHERE status = 'active' guarantees at
// most one row matches.
func (repo *subscriptionRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entity.SubscriptionStatusActive).
		First(&subM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription")
	}

	return toSubscriptionDomain(&subM), nil
}

// toSubscriptionDomain maps the persistence model back to a domain entity.
func toSubscriptionDomain(subM *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:                   subM.ID,
		UserID:               subM.UserID,
		Status:               subM.Status,
		PriceID:              subM.PriceID,
		StripeCustomerID:     subM.StripeCustomerID,
		StripeSubscriptionID: subM.StripeSubscriptionID,
		CurrentPeriodStart:   subM.CurrentPeriodStart,
		CurrentPeriodEnd:     subM.CurrentPeriodEnd,
		TrialStart:           subM.TrialStart,
		TrialEnd:             subM.TrialEnd,
		CreatedAt:            subM.CreatedAt,
	}
}
