// Package repository provides testify mocks for the repository interfaces.
package repository

import (
	"context"

	"habitar/internal/domain/entity"
	"habitar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

// NewMockUserRepository creates a new mock instance and registers expectation
// checks with the test's cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	ret := _m.Called(ctx, id, role)

	return ret.Error(0)
}

func (_m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserRepository) ReassignIdentity(ctx context.Context, email string, user *entity.User) error {
	ret := _m.Called(ctx, email, user)

	return ret.Error(0)
}

func (_m *MockUserRepository) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.User)
	}

	return r0, ret.Error(1)
}

// MockUserRepositoryExpecter provides the fluent expectation API.
type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (_m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockUserRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockUserRepositoryExpecter) FindByEmail(ctx any, email any) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_e *MockUserRepositoryExpecter) Create(ctx any, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_e *MockUserRepositoryExpecter) Update(ctx any, user any) *mock.Call {
	return _e.mock.On("Update", ctx, user)
}

func (_e *MockUserRepositoryExpecter) UpdateRole(ctx any, id any, role any) *mock.Call {
	return _e.mock.On("UpdateRole", ctx, id, role)
}

func (_e *MockUserRepositoryExpecter) UpdateStatus(ctx any, id any, status any) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, id, status)
}

func (_e *MockUserRepositoryExpecter) ReassignIdentity(ctx any, email any, user any) *mock.Call {
	return _e.mock.On("ReassignIdentity", ctx, email, user)
}

func (_e *MockUserRepositoryExpecter) ListUsers(ctx any, filter any) *mock.Call {
	return _e.mock.On("ListUsers", ctx, filter)
}
