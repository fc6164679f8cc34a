package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "habitar/internal/delivery/context"
	"habitar/internal/domain/repository"
	"habitar/internal/domain/service"
	"habitar/internal/retry"
	"habitar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// billingRetry covers the external billing function. Error payloads and
// network failures are both transient from this side; the function re-checks
// for an existing subscription, so repeated invocations are safe.
var billingRetry = retry.Policy{MaxAttempts: 2, Delay: time.Second}

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	billing          service.BillingService
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Billing          service.BillingService
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		billing:          params.Billing,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureFreemium guarantees the user holds an active subscription, invoking
// the billing function when none exists. The check-then-create race is
// resolved remotely: the billing side holds the partial unique index on
// active subscriptions.
func (srv *subscriptionService) EnsureFreemium(ctx context.Context, userID uuid.UUID, email string) error {
	_, err := srv.subscriptionRepo.FindActiveByUserID(ctx, userID)
	if err == nil {
		srv.log(ctx).Debug("User already has an active subscription", slog.Any("userID", userID))

		return nil
	}
	if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return errors.Wrap(err, "failed to check existing subscription")
	}

	result, err := retry.Do(ctx, srv.log(ctx), billingRetry, "create freemium subscription",
		func(ctx context.Context) (*service.FreemiumResult, error) {
			return srv.billing.CreateFreemiumSubscription(ctx, userID, email)
		})
	if err != nil {
		return errors.Wrap(err, "failed to provision freemium subscription")
	}

	srv.log(ctx).Info("Provisioned freemium subscription",
		slog.Any("userID", userID),
		slog.String("message", result.Message))

	return nil
}

// HasActiveSubscription reports whether the user currently holds an active
// subscription.
func (srv *subscriptionService) HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error) {
	sub, err := srv.subscriptionRepo.FindActiveByUserID(ctx, userID)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check subscription")
	}

	return sub.IsActive(), nil
}
