package service

import (
	"context"

	"habitar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBillingService is a mock implementation of service.BillingService.
type MockBillingService struct {
	mock.Mock
}

var _ service.BillingService = (*MockBillingService)(nil)

// NewMockBillingService creates a new mock instance and registers
// expectation checks with the test's cleanup.
func NewMockBillingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBillingService {
	m := &MockBillingService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockBillingService) CreateFreemiumSubscription(ctx context.Context, userID uuid.UUID, email string) (*service.FreemiumResult, error) {
	ret := _m.Called(ctx, userID, email)

	var r0 *service.FreemiumResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.FreemiumResult)
	}

	return r0, ret.Error(1)
}

// MockBillingServiceExpecter provides the fluent expectation API.
type MockBillingServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockBillingService) EXPECT() *MockBillingServiceExpecter {
	return &MockBillingServiceExpecter{mock: &_m.Mock}
}

func (_e *MockBillingServiceExpecter) CreateFreemiumSubscription(ctx, userID, email any) *mock.Call {
	return _e.mock.On("CreateFreemiumSubscription", ctx, userID, email)
}
