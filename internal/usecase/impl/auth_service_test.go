package impl

import (
	"context"
	"testing"

	"habitar/internal/domain/entity"
	domainerrors "habitar/internal/domain/errors"
	"habitar/internal/domain/repository"
	"habitar/internal/domain/service"
	mockRepo "habitar/internal/mocks/repository"
	mockSvc "habitar/internal/mocks/service"
	mockUC "habitar/internal/mocks/usecase"
	"habitar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	userRepo       *mockRepo.MockUserRepository
	identity       *mockSvc.MockIdentityService
	userSync       *mockUC.MockUserSyncUsecase
	subscriptionUC *mockUC.MockSubscriptionUsecase
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, authServiceMocks) {
	t.Helper()

	mocks := authServiceMocks{
		userRepo:       mockRepo.NewMockUserRepository(t),
		identity:       mockSvc.NewMockIdentityService(t),
		userSync:       mockUC.NewMockUserSyncUsecase(t),
		subscriptionUC: mockUC.NewMockSubscriptionUsecase(t),
	}
	svc := NewAuthService(AuthServiceParams{
		UserRepo:       mocks.userRepo,
		Identity:       mocks.identity,
		UserSync:       mocks.userSync,
		SubscriptionUC: mocks.subscriptionUC,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return svc, mocks
}

func TestAuthService_SignUp_Success(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	metadata := service.IdentityMetadata{
		FullName: "Ana Silva",
		Email:    "ana@example.pt",
		Role:     "comprador(a)",
		NIF:      "123456789",
		Contact:  "+351912345678",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ana@example.pt").Return(nil, repository.ErrUserNotFound)
	mocks.identity.EXPECT().
		SignUp(ctx, "ana@example.pt", "strong-password", metadata).
		Return(&service.Identity{ID: id, Email: "ana@example.pt", Metadata: metadata}, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{
			ID:      id,
			Email:   "ana@example.pt",
			Role:    "comprador(a)",
			NIF:     "123456789",
			Contact: "+351912345678",
		}).
		Return(usecase.SyncResult{Created: true}, nil)
	mocks.subscriptionUC.EXPECT().EnsureFreemium(ctx, id, "ana@example.pt").Return(nil)

	redirect, err := svc.SignUp(ctx, usecase.SignUpInput{
		Email:    " ana@example.pt ",
		Password: "strong-password",
		FullName: "Ana Silva",
		Role:     "buyer",
		NIF:      "123456789",
		Contact:  "+351912345678",
	})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
	assert.Equal(t, "/sign-up", redirect.Path)
	assert.Contains(t, redirect.Message, "Verifique o seu email")
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "ana@example.pt"}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ana@example.pt").Return(existing, nil)

	redirect, err := svc.SignUp(ctx, usecase.SignUpInput{
		Email:    "ana@example.pt",
		Password: "strong-password",
		FullName: "Ana Silva",
		Role:     "buyer",
	})
	require.NoError(t, err)
	assert.False(t, redirect.IsSuccess())
	assert.Equal(t, "/sign-up", redirect.Path)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.Message(), redirect.Message)
}

func TestAuthService_SignUp_MissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	redirect, err := svc.SignUp(context.Background(), usecase.SignUpInput{Email: "ana@example.pt"})
	require.NoError(t, err)
	assert.False(t, redirect.IsSuccess())
	assert.Equal(t, domainerrors.ErrValidationFailed.Message(), redirect.Message)
}

func TestAuthService_SignUp_WeakPassword(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ana@example.pt").Return(nil, repository.ErrUserNotFound)
	mocks.identity.EXPECT().
		SignUp(ctx, "ana@example.pt", "weak", service.IdentityMetadata{
			FullName: "Ana Silva",
			Email:    "ana@example.pt",
			Role:     "comprador(a)",
		}).
		Return(nil, &service.IdentityError{Code: service.IdentityCodeWeakPassword, Message: "weak password"})

	redirect, err := svc.SignUp(ctx, usecase.SignUpInput{
		Email:    "ana@example.pt",
		Password: "weak",
		FullName: "Ana Silva",
		Role:     "buyer",
	})
	require.NoError(t, err)
	assert.False(t, redirect.IsSuccess())
	assert.Equal(t, domainerrors.ErrWeakPassword.Message(), redirect.Message)
}

func TestAuthService_SignUp_SyncExhaustionFailsRegistration(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	metadata := service.IdentityMetadata{
		FullName: "Ana Silva",
		Email:    "ana@example.pt",
		Role:     "comprador(a)",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ana@example.pt").Return(nil, repository.ErrUserNotFound)
	mocks.identity.EXPECT().
		SignUp(ctx, "ana@example.pt", "strong-password", metadata).
		Return(&service.Identity{ID: id, Email: "ana@example.pt", Metadata: metadata}, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{
			ID:    id,
			Email: "ana@example.pt",
			Role:  "comprador(a)",
		}).
		Return(usecase.SyncResult{}, errors.New("database down")).
		Times(2)

	redirect, err := svc.SignUp(ctx, usecase.SignUpInput{
		Email:    "ana@example.pt",
		Password: "strong-password",
		FullName: "Ana Silva",
		Role:     "buyer",
	})
	require.NoError(t, err)
	assert.False(t, redirect.IsSuccess())
	assert.Equal(t, "/sign-up", redirect.Path)
	assert.Equal(t, domainerrors.ErrUserSyncFailed.Message(), redirect.Message)
}

func TestAuthService_SignUp_ProvisionsReconciledBuyer(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	metadata := service.IdentityMetadata{
		FullName: "Ana Silva",
		Email:    "ana@example.pt",
		Role:     "comprador(a)",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ana@example.pt").Return(nil, repository.ErrUserNotFound)
	mocks.identity.EXPECT().
		SignUp(ctx, "ana@example.pt", "strong-password", metadata).
		Return(&service.Identity{ID: id, Email: "ana@example.pt", Metadata: metadata}, nil)
	// The row already existed under another identity id. Provisioning must
	// still run for a buyer even when nothing was created.
	mocks.userSync.EXPECT().
		EnsureUser(ctx, mock.AnythingOfType("usecase.SyncInput")).
		Return(usecase.SyncResult{Updated: true}, nil)
	mocks.subscriptionUC.EXPECT().EnsureFreemium(ctx, id, "ana@example.pt").Return(nil)

	redirect, err := svc.SignUp(ctx, usecase.SignUpInput{
		Email:    "ana@example.pt",
		Password: "strong-password",
		FullName: "Ana Silva",
		Role:     "buyer",
	})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
}

func TestAuthService_SignUp_ProvisioningFailureStillSucceeds(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	metadata := service.IdentityMetadata{
		FullName: "Ana Silva",
		Email:    "ana@example.pt",
		Role:     "comprador(a)",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ana@example.pt").Return(nil, repository.ErrUserNotFound)
	mocks.identity.EXPECT().
		SignUp(ctx, "ana@example.pt", "strong-password", metadata).
		Return(&service.Identity{ID: id, Email: "ana@example.pt", Metadata: metadata}, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, mock.AnythingOfType("usecase.SyncInput")).
		Return(usecase.SyncResult{Created: true}, nil)
	mocks.subscriptionUC.EXPECT().
		EnsureFreemium(ctx, id, "ana@example.pt").
		Return(errors.New("billing down"))

	redirect, err := svc.SignUp(ctx, usecase.SignUpInput{
		Email:    "ana@example.pt",
		Password: "strong-password",
		FullName: "Ana Silva",
		Role:     "buyer",
	})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
	assert.Contains(t, redirect.Message, "Verifique o seu email")
}

func buyerSignInFixture(id uuid.UUID) (*service.Identity, *service.Session, *entity.User) {
	metadata := service.IdentityMetadata{Email: "ana@example.pt", Role: "comprador(a)"}
	identity := &service.Identity{ID: id, Email: "ana@example.pt", Metadata: metadata}
	session := &service.Session{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}
	user := &entity.User{
		ID:     id,
		Email:  "ana@example.pt",
		Role:   entity.RoleBuyer,
		Status: entity.StatusActive,
	}

	return identity, session, user
}

func TestAuthService_SignIn_BuyerRoutesToPricing(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	identity, session, user := buyerSignInFixture(id)

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "strong-password").
		Return(identity, session, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{ID: id, Email: "ana@example.pt", Role: "comprador(a)"}).
		Return(usecase.SyncResult{}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(user, nil)
	mocks.subscriptionUC.EXPECT().EnsureFreemium(ctx, id, "ana@example.pt").Return(nil)

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: " ana@example.pt ", Password: " strong-password "})
	require.NoError(t, err)
	assert.True(t, output.Redirect.IsSuccess())
	assert.Equal(t, "/pricing", output.Redirect.Path)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestAuthService_SignIn_AdminRoutesToAdminDashboard(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	metadata := service.IdentityMetadata{Email: "chefe@example.pt", Role: "administrador"}
	identity := &service.Identity{ID: id, Email: "chefe@example.pt", Metadata: metadata}
	session := &service.Session{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}
	admin := &entity.User{ID: id, Email: "chefe@example.pt", Role: entity.RoleAdmin, Status: entity.StatusActive}

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "chefe@example.pt", "strong-password").
		Return(identity, session, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{ID: id, Email: "chefe@example.pt", Role: "administrador"}).
		Return(usecase.SyncResult{}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(admin, nil)

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: "chefe@example.pt", Password: "strong-password"})
	require.NoError(t, err)
	assert.True(t, output.Redirect.IsSuccess())
	assert.Equal(t, "/dashboard/admin", output.Redirect.Path)
}

func TestAuthService_SignIn_InvalidCredentialsNotRetried(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "wrong").
		Return(nil, nil, &service.IdentityError{Code: service.IdentityCodeInvalidCredentials, Message: "bad credentials"}).
		Once()

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: "ana@example.pt", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, output.Redirect.IsSuccess())
	assert.Equal(t, "/sign-in", output.Redirect.Path)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), output.Redirect.Message)
}

func TestAuthService_SignIn_TransientFailureRetried(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	identity, session, user := buyerSignInFixture(id)

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "strong-password").
		Return(nil, nil, errors.New("gateway timeout")).
		Once()
	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "strong-password").
		Return(identity, session, nil).
		Once()
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{ID: id, Email: "ana@example.pt", Role: "comprador(a)"}).
		Return(usecase.SyncResult{}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(user, nil)
	mocks.subscriptionUC.EXPECT().EnsureFreemium(ctx, id, "ana@example.pt").Return(nil)

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: "ana@example.pt", Password: "strong-password"})
	require.NoError(t, err)
	assert.True(t, output.Redirect.IsSuccess())
}

func TestAuthService_SignIn_SuspendedBlocked(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	identity, session, user := buyerSignInFixture(id)
	user.Status = entity.StatusSuspended

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "strong-password").
		Return(identity, session, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{ID: id, Email: "ana@example.pt", Role: "comprador(a)"}).
		Return(usecase.SyncResult{}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(user, nil)

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: "ana@example.pt", Password: "strong-password"})
	require.NoError(t, err)
	assert.False(t, output.Redirect.IsSuccess())
	assert.Equal(t, domainerrors.ErrAccountSuspended.Message(), output.Redirect.Message)
	assert.Empty(t, output.AccessToken)
}

func TestAuthService_SignIn_BannedBlocked(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	identity, session, user := buyerSignInFixture(id)
	user.Status = entity.StatusBanned

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "strong-password").
		Return(identity, session, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{ID: id, Email: "ana@example.pt", Role: "comprador(a)"}).
		Return(usecase.SyncResult{}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(user, nil)

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: "ana@example.pt", Password: "strong-password"})
	require.NoError(t, err)
	assert.False(t, output.Redirect.IsSuccess())
	assert.Equal(t, domainerrors.ErrAccountBanned.Message(), output.Redirect.Message)
}

func TestAuthService_SignIn_UserFetchExhaustionRoutesToPricing(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	identity, session, _ := buyerSignInFixture(id)

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "strong-password").
		Return(identity, session, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{ID: id, Email: "ana@example.pt", Role: "comprador(a)"}).
		Return(usecase.SyncResult{}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("replica lag")).Times(2)

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: "ana@example.pt", Password: "strong-password"})
	require.NoError(t, err)
	assert.True(t, output.Redirect.IsSuccess())
	assert.Equal(t, "/pricing", output.Redirect.Path)
	assert.Equal(t, "access", output.AccessToken)
}

func TestAuthService_SignIn_SyncFailureKeepsSession(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	identity, session, user := buyerSignInFixture(id)

	mocks.identity.EXPECT().
		SignInWithPassword(ctx, "ana@example.pt", "strong-password").
		Return(identity, session, nil)
	mocks.userSync.EXPECT().
		EnsureUser(ctx, usecase.SyncInput{ID: id, Email: "ana@example.pt", Role: "comprador(a)"}).
		Return(usecase.SyncResult{}, errors.New("database down")).
		Times(2)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(user, nil)
	mocks.subscriptionUC.EXPECT().EnsureFreemium(ctx, id, "ana@example.pt").Return(nil)

	output, err := svc.SignIn(ctx, usecase.SignInInput{Email: "ana@example.pt", Password: "strong-password"})
	require.NoError(t, err)
	assert.True(t, output.Redirect.IsSuccess())
}

func TestAuthService_SignOut(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()

	mocks.identity.EXPECT().SignOut(ctx, "token", service.SignOutLocal).Return(nil)

	redirect, err := svc.SignOut(ctx, usecase.SignOutInput{AccessToken: "token"})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
	assert.Equal(t, "/sign-in", redirect.Path)
}

func TestAuthService_SignOut_FailureStillRedirects(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()

	mocks.identity.EXPECT().SignOut(ctx, "token", service.SignOutLocal).Return(errors.New("revoked"))

	redirect, err := svc.SignOut(ctx, usecase.SignOutInput{AccessToken: "token"})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
	assert.Equal(t, "/sign-in", redirect.Path)
}

func TestAuthService_ForgotPassword_UnknownEmailNonRevealing(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.pt").Return(nil, repository.ErrUserNotFound)

	redirect, err := svc.ForgotPassword(ctx, usecase.ForgotPasswordInput{Email: "ghost@example.pt"})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
	assert.Contains(t, redirect.Message, "enviámos as instruções")
}

func TestAuthService_ForgotPassword_SendsRecoveryEmail(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "ana@example.pt"}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "ana@example.pt").Return(existing, nil)
	mocks.identity.EXPECT().
		ResetPasswordForEmail(ctx, "ana@example.pt", "https://habitar.example/reset-password").
		Return(nil)

	redirect, err := svc.ForgotPassword(ctx, usecase.ForgotPasswordInput{Email: "ana@example.pt"})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
}

func TestAuthService_ResetPassword_Mismatch(t *testing.T) {
	svc, _ := newAuthService(t)

	redirect, err := svc.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		AccessToken:     "recovery",
		Password:        "new-password",
		ConfirmPassword: "other-password",
	})
	require.NoError(t, err)
	assert.False(t, redirect.IsSuccess())
	assert.Equal(t, "As palavras-passe não coincidem", redirect.Message)
}

func TestAuthService_ResetPassword_TooShort(t *testing.T) {
	svc, _ := newAuthService(t)

	redirect, err := svc.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		AccessToken:     "recovery",
		Password:        "short",
		ConfirmPassword: "short",
	})
	require.NoError(t, err)
	assert.False(t, redirect.IsSuccess())
	assert.Equal(t, domainerrors.ErrWeakPassword.Message(), redirect.Message)
}

func TestAuthService_ResetPassword_ReactivatesSuspendedUser(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	suspended := &entity.User{ID: id, Email: "ana@example.pt", Status: entity.StatusSuspended}

	mocks.identity.EXPECT().UpdatePassword(ctx, "recovery", "new-password").Return(nil)
	mocks.identity.EXPECT().
		GetUser(ctx, "recovery").
		Return(&service.Identity{ID: id, Email: "ana@example.pt"}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(suspended, nil)
	mocks.userRepo.EXPECT().
		UpdateStatus(ctx, id, entity.StatusActive).
		Return(&entity.User{ID: id, Status: entity.StatusActive}, nil)

	redirect, err := svc.ResetPassword(ctx, usecase.ResetPasswordInput{
		AccessToken:     "recovery",
		Password:        "new-password",
		ConfirmPassword: "new-password",
	})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
	assert.Equal(t, "/sign-in", redirect.Path)
}

func TestAuthService_ResetPassword_ActiveUserUntouched(t *testing.T) {
	svc, mocks := newAuthService(t)

	ctx := context.Background()
	id := uuid.New()
	active := &entity.User{ID: id, Email: "ana@example.pt", Status: entity.StatusActive}

	mocks.identity.EXPECT().UpdatePassword(ctx, "recovery", "new-password").Return(nil)
	mocks.identity.EXPECT().
		GetUser(ctx, "recovery").
		Return(&service.Identity{ID: id, Email: "ana@example.pt"}, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, id).Return(active, nil)

	redirect, err := svc.ResetPassword(ctx, usecase.ResetPasswordInput{
		AccessToken:     "recovery",
		Password:        "new-password",
		ConfirmPassword: "new-password",
	})
	require.NoError(t, err)
	assert.True(t, redirect.IsSuccess())
}
