package repository

import (
	"context"

	"habitar/internal/domain/entity"
	"habitar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionRepository is a mock implementation of repository.SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

var _ repository.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// NewMockSubscriptionRepository creates a new mock instance and registers
// expectation checks with the test's cleanup.
func NewMockSubscriptionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockSubscriptionRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	ret := _m.Called(ctx, userID)

	var r0 *entity.Subscription
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Subscription)
	}

	return r0, ret.Error(1)
}

// MockSubscriptionRepositoryExpecter provides the fluent expectation API.
type MockSubscriptionRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockSubscriptionRepository) EXPECT() *MockSubscriptionRepositoryExpecter {
	return &MockSubscriptionRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockSubscriptionRepositoryExpecter) FindActiveByUserID(ctx any, userID any) *mock.Call {
	return _e.mock.On("FindActiveByUserID", ctx, userID)
}
