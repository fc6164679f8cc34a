package impl

import (
	"context"
	"testing"

	"habitar/internal/domain/entity"
	domainerrors "habitar/internal/domain/errors"
	"habitar/internal/domain/repository"
	mockRepo "habitar/internal/mocks/repository"
	mockSvc "habitar/internal/mocks/service"
	"habitar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) (usecase.AdminUsecase, *mockRepo.MockUserRepository, *mockSvc.MockIdentityService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityService(t)
	svc := NewAdminService(AdminServiceParams{
		UserRepo: userRepo,
		Identity: identity,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo, identity
}

func TestAdminService_ListUsers_MapsFilter(t *testing.T) {
	svc, userRepo, _ := newAdminService(t)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: uuid.New(), Email: "ana@example.pt", Role: entity.RoleBuyer, Status: entity.StatusActive},
	}

	userRepo.EXPECT().
		ListUsers(ctx, repository.UserFilter{
			Role:   entity.RoleBuyer,
			Status: entity.StatusActive,
			Limit:  25,
			Offset: 50,
		}).
		Return(expected, nil)

	users, err := svc.ListUsers(ctx, usecase.ListUsersInput{
		Role:   "buyer",
		Status: "active",
		Limit:  25,
		Offset: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestAdminService_ListUsers_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newAdminService(t)

	_, err := svc.ListUsers(context.Background(), usecase.ListUsersInput{Status: "frozen"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newAdminService(t)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "frozen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_SuspendUser(t *testing.T) {
	svc, userRepo, _ := newAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	suspended := &entity.User{ID: id, Status: entity.StatusSuspended}

	userRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusSuspended).Return(suspended, nil)

	user, err := svc.SuspendUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuspended, user.Status)
}

func TestAdminService_ActivateUser(t *testing.T) {
	svc, userRepo, _ := newAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	active := &entity.User{ID: id, Status: entity.StatusActive}

	userRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusActive).Return(active, nil)

	user, err := svc.ActivateUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, user.Status)
}

func TestAdminService_BanUser_RevokesSessions(t *testing.T) {
	svc, userRepo, identity := newAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	banned := &entity.User{ID: id, Status: entity.StatusBanned}

	userRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusBanned).Return(banned, nil)
	identity.EXPECT().AdminSignOutUser(ctx, id).Return(nil)

	user, err := svc.BanUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBanned, user.Status)
}

func TestAdminService_BanUser_SignOutFailureKeepsBan(t *testing.T) {
	svc, userRepo, identity := newAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	banned := &entity.User{ID: id, Status: entity.StatusBanned}

	userRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusBanned).Return(banned, nil)
	identity.EXPECT().AdminSignOutUser(ctx, id).Return(errors.New("identity unavailable"))

	user, err := svc.BanUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBanned, user.Status)
}

func TestAdminService_SetStatus_NotFound(t *testing.T) {
	svc, userRepo, _ := newAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	userRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusSuspended).Return(nil, repository.ErrUserNotFound)

	_, err := svc.SuspendUser(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
