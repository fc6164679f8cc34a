// Package service provides testify mocks for the infrastructure service interfaces.
package service

import (
	"context"

	"habitar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockIdentityService is a mock implementation of service.IdentityService.
type MockIdentityService struct {
	mock.Mock
}

var _ service.IdentityService = (*MockIdentityService)(nil)

// NewMockIdentityService creates a new mock instance and registers
// expectation checks with the test's cleanup.
func NewMockIdentityService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityService {
	m := &MockIdentityService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockIdentityService) SignUp(ctx context.Context, email, password string, metadata service.IdentityMetadata) (*service.Identity, error) {
	ret := _m.Called(ctx, email, password, metadata)

	var r0 *service.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Identity)
	}

	return r0, ret.Error(1)
}

func (_m *MockIdentityService) SignInWithPassword(ctx context.Context, email, password string) (*service.Identity, *service.Session, error) {
	ret := _m.Called(ctx, email, password)

	var r0 *service.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Identity)
	}

	var r1 *service.Session
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*service.Session)
	}

	return r0, r1, ret.Error(2)
}

func (_m *MockIdentityService) GetUser(ctx context.Context, accessToken string) (*service.Identity, error) {
	ret := _m.Called(ctx, accessToken)

	var r0 *service.Identity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Identity)
	}

	return r0, ret.Error(1)
}

func (_m *MockIdentityService) UpdateUserMetadata(ctx context.Context, accessToken string, metadata service.IdentityMetadata) error {
	ret := _m.Called(ctx, accessToken, metadata)

	return ret.Error(0)
}

func (_m *MockIdentityService) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	ret := _m.Called(ctx, accessToken, newPassword)

	return ret.Error(0)
}

func (_m *MockIdentityService) SignOut(ctx context.Context, accessToken string, scope service.SignOutScope) error {
	ret := _m.Called(ctx, accessToken, scope)

	return ret.Error(0)
}

func (_m *MockIdentityService) AdminSignOutUser(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_m *MockIdentityService) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	ret := _m.Called(ctx, email, redirectTo)

	return ret.Error(0)
}

// MockIdentityServiceExpecter provides the fluent expectation API.
type MockIdentityServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockIdentityService) EXPECT() *MockIdentityServiceExpecter {
	return &MockIdentityServiceExpecter{mock: &_m.Mock}
}

func (_e *MockIdentityServiceExpecter) SignUp(ctx, email, password, metadata any) *mock.Call {
	return _e.mock.On("SignUp", ctx, email, password, metadata)
}

func (_e *MockIdentityServiceExpecter) SignInWithPassword(ctx, email, password any) *mock.Call {
	return _e.mock.On("SignInWithPassword", ctx, email, password)
}

func (_e *MockIdentityServiceExpecter) GetUser(ctx, accessToken any) *mock.Call {
	return _e.mock.On("GetUser", ctx, accessToken)
}

func (_e *MockIdentityServiceExpecter) UpdateUserMetadata(ctx, accessToken, metadata any) *mock.Call {
	return _e.mock.On("UpdateUserMetadata", ctx, accessToken, metadata)
}

func (_e *MockIdentityServiceExpecter) UpdatePassword(ctx, accessToken, newPassword any) *mock.Call {
	return _e.mock.On("UpdatePassword", ctx, accessToken, newPassword)
}

func (_e *MockIdentityServiceExpecter) SignOut(ctx, accessToken, scope any) *mock.Call {
	return _e.mock.On("SignOut", ctx, accessToken, scope)
}

func (_e *MockIdentityServiceExpecter) AdminSignOutUser(ctx, userID any) *mock.Call {
	return _e.mock.On("AdminSignOutUser", ctx, userID)
}

func (_e *MockIdentityServiceExpecter) ResetPasswordForEmail(ctx, email, redirectTo any) *mock.Call {
	return _e.mock.On("ResetPasswordForEmail", ctx, email, redirectTo)
}
