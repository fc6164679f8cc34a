// Package usecase provides testify mocks for the application usecase interfaces.
package usecase

import (
	"context"

	"habitar/internal/domain/entity"
	"habitar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserSyncUsecase is a mock implementation of usecase.UserSyncUsecase.
type MockUserSyncUsecase struct {
	mock.Mock
}

var _ usecase.UserSyncUsecase = (*MockUserSyncUsecase)(nil)

// NewMockUserSyncUsecase creates a new mock instance and registers
// expectation checks with the test's cleanup.
func NewMockUserSyncUsecase(t mockConstructorTestingT) *MockUserSyncUsecase {
	m := &MockUserSyncUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockUserSyncUsecase) EnsureUser(ctx context.Context, input usecase.SyncInput) (usecase.SyncResult, error) {
	ret := _m.Called(ctx, input)

	var r0 usecase.SyncResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(usecase.SyncResult)
	}

	return r0, ret.Error(1)
}

// MockUserSyncUsecaseExpecter provides the fluent expectation API.
type MockUserSyncUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockUserSyncUsecase) EXPECT() *MockUserSyncUsecaseExpecter {
	return &MockUserSyncUsecaseExpecter{mock: &_m.Mock}
}

func (_e *MockUserSyncUsecaseExpecter) EnsureUser(ctx, input any) *mock.Call {
	return _e.mock.On("EnsureUser", ctx, input)
}

// MockSubscriptionUsecase is a mock implementation of usecase.SubscriptionUsecase.
type MockSubscriptionUsecase struct {
	mock.Mock
}

var _ usecase.SubscriptionUsecase = (*MockSubscriptionUsecase)(nil)

// NewMockSubscriptionUsecase creates a new mock instance and registers
// expectation checks with the test's cleanup.
func NewMockSubscriptionUsecase(t mockConstructorTestingT) *MockSubscriptionUsecase {
	m := &MockSubscriptionUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockSubscriptionUsecase) EnsureFreemium(ctx context.Context, userID uuid.UUID, email string) error {
	ret := _m.Called(ctx, userID, email)

	return ret.Error(0)
}

func (_m *MockSubscriptionUsecase) HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, userID)

	return ret.Bool(0), ret.Error(1)
}

// MockSubscriptionUsecaseExpecter provides the fluent expectation API.
type MockSubscriptionUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockSubscriptionUsecase) EXPECT() *MockSubscriptionUsecaseExpecter {
	return &MockSubscriptionUsecaseExpecter{mock: &_m.Mock}
}

func (_e *MockSubscriptionUsecaseExpecter) EnsureFreemium(ctx, userID, email any) *mock.Call {
	return _e.mock.On("EnsureFreemium", ctx, userID, email)
}

func (_e *MockSubscriptionUsecaseExpecter) HasActiveSubscription(ctx, userID any) *mock.Call {
	return _e.mock.On("HasActiveSubscription", ctx, userID)
}

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)

// NewMockAuthUsecase creates a new mock instance and registers expectation
// checks with the test's cleanup.
func NewMockAuthUsecase(t mockConstructorTestingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockAuthUsecase) SignUp(ctx context.Context, input usecase.SignUpInput) (usecase.Redirect, error) {
	ret := _m.Called(ctx, input)

	var r0 usecase.Redirect
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(usecase.Redirect)
	}

	return r0, ret.Error(1)
}

func (_m *MockAuthUsecase) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.SignInOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.SignInOutput)
	}

	return r0, ret.Error(1)
}

func (_m *MockAuthUsecase) SignOut(ctx context.Context, input usecase.SignOutInput) (usecase.Redirect, error) {
	ret := _m.Called(ctx, input)

	var r0 usecase.Redirect
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(usecase.Redirect)
	}

	return r0, ret.Error(1)
}

func (_m *MockAuthUsecase) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) (usecase.Redirect, error) {
	ret := _m.Called(ctx, input)

	var r0 usecase.Redirect
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(usecase.Redirect)
	}

	return r0, ret.Error(1)
}

func (_m *MockAuthUsecase) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (usecase.Redirect, error) {
	ret := _m.Called(ctx, input)

	var r0 usecase.Redirect
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(usecase.Redirect)
	}

	return r0, ret.Error(1)
}

// MockAuthUsecaseExpecter provides the fluent expectation API.
type MockAuthUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecaseExpecter {
	return &MockAuthUsecaseExpecter{mock: &_m.Mock}
}

func (_e *MockAuthUsecaseExpecter) SignUp(ctx, input any) *mock.Call {
	return _e.mock.On("SignUp", ctx, input)
}

func (_e *MockAuthUsecaseExpecter) SignIn(ctx, input any) *mock.Call {
	return _e.mock.On("SignIn", ctx, input)
}

func (_e *MockAuthUsecaseExpecter) SignOut(ctx, input any) *mock.Call {
	return _e.mock.On("SignOut", ctx, input)
}

func (_e *MockAuthUsecaseExpecter) ForgotPassword(ctx, input any) *mock.Call {
	return _e.mock.On("ForgotPassword", ctx, input)
}

func (_e *MockAuthUsecaseExpecter) ResetPassword(ctx, input any) *mock.Call {
	return _e.mock.On("ResetPassword", ctx, input)
}

// MockAdminUsecase is a mock implementation of usecase.AdminUsecase.
type MockAdminUsecase struct {
	mock.Mock
}

var _ usecase.AdminUsecase = (*MockAdminUsecase)(nil)

// NewMockAdminUsecase creates a new mock instance and registers expectation
// checks with the test's cleanup.
func NewMockAdminUsecase(t mockConstructorTestingT) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockAdminUsecase) ListUsers(ctx context.Context, input usecase.ListUsersInput) ([]*entity.User, error) {
	ret := _m.Called(ctx, input)

	var r0 []*entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockAdminUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.User, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockAdminUsecase) SuspendUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockAdminUsecase) ActivateUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockAdminUsecase) BanUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

// MockAdminUsecaseExpecter provides the fluent expectation API.
type MockAdminUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockAdminUsecase) EXPECT() *MockAdminUsecaseExpecter {
	return &MockAdminUsecaseExpecter{mock: &_m.Mock}
}

func (_e *MockAdminUsecaseExpecter) ListUsers(ctx, input any) *mock.Call {
	return _e.mock.On("ListUsers", ctx, input)
}

func (_e *MockAdminUsecaseExpecter) UpdateStatus(ctx, id, status any) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, id, status)
}

func (_e *MockAdminUsecaseExpecter) SuspendUser(ctx, id any) *mock.Call {
	return _e.mock.On("SuspendUser", ctx, id)
}

func (_e *MockAdminUsecaseExpecter) ActivateUser(ctx, id any) *mock.Call {
	return _e.mock.On("ActivateUser", ctx, id)
}

func (_e *MockAdminUsecaseExpecter) BanUser(ctx, id any) *mock.Call {
	return _e.mock.On("BanUser", ctx, id)
}
