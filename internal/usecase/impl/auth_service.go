package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"habitar/config"
	deliverycontext "habitar/internal/delivery/context"
	"habitar/internal/domain/entity"
	domainerrors "habitar/internal/domain/errors"
	"habitar/internal/domain/repository"
	"habitar/internal/domain/service"
	"habitar/internal/retry"
	"habitar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Redirect targets used by the account flows.
const (
	pathSignUp         = "/sign-up"
	pathSignIn         = "/sign-in"
	pathPricing        = "/pricing"
	pathDashboard      = "/dashboard"
	pathAdminDashboard = "/dashboard/admin"
	pathForgotPassword = "/forgot-password"
	pathResetPassword  = "/reset-password"
)

const (
	msgVerifyEmail     = "Verifique o seu email para confirmar a conta."
	msgRecoveryEmail   = "Se existir uma conta com este email, enviámos as instruções de recuperação."
	msgPasswordUpdated = "Palavra-passe atualizada. Inicie sessão com a nova palavra-passe."
	msgPasswordsDiffer = "As palavras-passe não coincidem"
	fireForgetTimeout  = 10 * time.Second
)

// Retry policies for the account flows. Backoff is linear with no jitter.
var (
	signInRetry = retry.Policy{
		MaxAttempts: 3,
		Delay:       time.Second,
		Permanent:   isPermanentSignInError,
	}
	userSyncRetry      = retry.Policy{MaxAttempts: 2, Delay: time.Second}
	userFetchRetry     = retry.Policy{MaxAttempts: 2, Delay: 500 * time.Millisecond}
	passwordResetRetry = retry.Policy{MaxAttempts: 3, Delay: time.Second}
)

// isPermanentSignInError classifies identity failures that retrying cannot
// fix: wrong password, unknown account, disabled account.
func isPermanentSignInError(err error) bool {
	return service.HasIdentityCode(err, service.IdentityCodeInvalidCredentials) ||
		service.HasIdentityCode(err, service.IdentityCodeUserNotFound) ||
		service.HasIdentityCode(err, service.IdentityCodeInvalidGrant)
}

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	identity       service.IdentityService
	userSync       usecase.UserSyncUsecase
	subscriptionUC usecase.SubscriptionUsecase
	siteURL        string
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Identity       service.IdentityService
	UserSync       usecase.UserSyncUsecase
	SubscriptionUC usecase.SubscriptionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	siteURL := ""
	if params.Config != nil && params.Config.Identity != nil {
		siteURL = params.Config.Identity.SiteURL
	}

	return &authService{
		userRepo:       params.UserRepo,
		identity:       params.Identity,
		userSync:       params.UserSync,
		subscriptionUC: params.SubscriptionUC,
		siteURL:        siteURL,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete registration flow. All outcomes, success
// and failure alike, come back as Redirect values; the error return is
// reserved for programming errors, not flow failures.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (usecase.Redirect, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" || strings.TrimSpace(input.Role) == "" {
		return usecase.Failure(pathSignUp, domainerrors.ErrValidationFailed.Message()), nil
	}

	role := entity.NormalizeRole(input.Role)

	srv.log(ctx).Info("Starting sign-up", slog.String("email", email), slog.Any("role", role))

	// Duplicate guard before touching the identity platform. The unique
	// email constraint still backstops the race window behind this check.
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return usecase.Failure(pathSignUp, domainerrors.ErrUserAlreadyExists.Message()), nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Duplicate guard lookup failed", slog.String("email", email), slog.Any("error", err))

		return usecase.Failure(pathSignUp, domainerrors.ErrInternalError.Message()), nil
	}

	metadata := service.IdentityMetadata{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Role:     role.String(),
		NIF:      strings.TrimSpace(input.NIF),
		Contact:  strings.TrimSpace(input.Contact),
	}

	identity, err := srv.identity.SignUp(ctx, email, input.Password, metadata)
	if err != nil {
		return srv.signUpFailure(ctx, email, err), nil
	}

	// The identity account exists at this point, but a registration without
	// its profile row is unusable. Sync exhaustion fails the flow.
	syncInput := usecase.SyncInput{
		ID:      identity.ID,
		Email:   email,
		Role:    role.String(),
		NIF:     metadata.NIF,
		Contact: metadata.Contact,
	}
	if _, syncErr := retry.Do(ctx, srv.log(ctx), userSyncRetry, "sync user after sign-up",
		func(ctx context.Context) (usecase.SyncResult, error) {
			return srv.userSync.EnsureUser(ctx, syncInput)
		}); syncErr != nil {
		srv.log(ctx).Error("User sync after sign-up failed",
			slog.Any("userID", identity.ID),
			slog.Any("error", syncErr))

		return usecase.Failure(pathSignUp, domainerrors.ErrUserSyncFailed.Message()), nil
	}

	if role == entity.RoleBuyer {
		// Best effort; sign-in provisions again if this attempt misses.
		if err := srv.subscriptionUC.EnsureFreemium(ctx, identity.ID, email); err != nil {
			srv.log(ctx).Error("Freemium provisioning on sign-up failed",
				slog.Any("userID", identity.ID),
				slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Sign-up completed", slog.Any("userID", identity.ID))

	return usecase.Success(pathSignUp, msgVerifyEmail), nil
}

// signUpFailure maps an identity sign-up error to the user-facing redirect.
func (srv *authService) signUpFailure(ctx context.Context, email string, err error) usecase.Redirect {
	srv.log(ctx).Warn("Identity sign-up failed", slog.String("email", email), slog.Any("error", err))

	switch {
	case service.HasIdentityCode(err, service.IdentityCodeUserAlreadyExists):
		return usecase.Failure(pathSignUp, domainerrors.ErrUserAlreadyExists.Message())
	case service.HasIdentityCode(err, service.IdentityCodeInvalidEmail):
		return usecase.Failure(pathSignUp, domainerrors.ErrInvalidEmail.Message())
	case service.HasIdentityCode(err, service.IdentityCodeWeakPassword):
		return usecase.Failure(pathSignUp, domainerrors.ErrWeakPassword.Message())
	case service.IsConnectivity(err):
		return usecase.Failure(pathSignUp, domainerrors.ErrConnectivity.Message())
	default:
		return usecase.Failure(pathSignUp, domainerrors.ErrInternalError.Message())
	}
}

// SignIn orchestrates the complete login flow: authenticate, reconcile the
// user row, enforce account status, then route by role.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)

	srv.log(ctx).Info("Starting sign-in", slog.String("email", email))

	identity, session, err := srv.authenticate(ctx, email, password)
	if err != nil {
		return &usecase.SignInOutput{Redirect: srv.signInFailure(ctx, email, err)}, nil
	}

	syncInput := usecase.SyncInput{
		ID:      identity.ID,
		Email:   identity.Email,
		Role:    identity.Metadata.Role,
		NIF:     identity.Metadata.NIF,
		Contact: identity.Metadata.Contact,
	}
	if _, syncErr := retry.Do(ctx, srv.log(ctx), userSyncRetry, "sync user after sign-in",
		func(ctx context.Context) (usecase.SyncResult, error) {
			return srv.userSync.EnsureUser(ctx, syncInput)
		}); syncErr != nil {
		// The row heals on the next sign-in; keep the session usable.
		srv.log(ctx).Error("User sync after sign-in failed",
			slog.Any("userID", identity.ID),
			slog.Any("error", syncErr))
	}

	user, err := retry.Do(ctx, srv.log(ctx), userFetchRetry, "fetch user after sign-in",
		func(ctx context.Context) (*entity.User, error) {
			return srv.userRepo.FindByID(ctx, identity.ID)
		})
	if err != nil {
		srv.log(ctx).Error("User row unavailable after sign-in, routing to pricing",
			slog.Any("userID", identity.ID),
			slog.Any("error", err))

		return srv.sessionOutput(usecase.Success(pathPricing, ""), session), nil
	}

	switch user.Status {
	case entity.StatusSuspended:
		return &usecase.SignInOutput{Redirect: usecase.Failure(pathSignIn, domainerrors.ErrAccountSuspended.Message())}, nil
	case entity.StatusBanned:
		return &usecase.SignInOutput{Redirect: usecase.Failure(pathSignIn, domainerrors.ErrAccountBanned.Message())}, nil
	}

	srv.pushRoleMetadata(ctx, session.AccessToken, user.Role, identity.Metadata.Role)

	return srv.routeByRole(ctx, user, session), nil
}

// authenticate runs the credential check under the sign-in retry policy.
func (srv *authService) authenticate(ctx context.Context, email, password string) (*service.Identity, *service.Session, error) {
	type signInResult struct {
		identity *service.Identity
		session  *service.Session
	}

	result, err := retry.Do(ctx, srv.log(ctx), signInRetry, "sign-in",
		func(ctx context.Context) (signInResult, error) {
			identity, session, err := srv.identity.SignInWithPassword(ctx, email, password)
			if err != nil {
				return signInResult{}, err
			}

			return signInResult{identity: identity, session: session}, nil
		})
	if err != nil {
		return nil, nil, err
	}

	return result.identity, result.session, nil
}

// signInFailure maps an authentication error to the user-facing redirect.
func (srv *authService) signInFailure(ctx context.Context, email string, err error) usecase.Redirect {
	srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

	switch {
	case service.HasIdentityCode(err, service.IdentityCodeInvalidCredentials):
		return usecase.Failure(pathSignIn, domainerrors.ErrInvalidCredentials.Message())
	case service.HasIdentityCode(err, service.IdentityCodeUserNotFound):
		return usecase.Failure(pathSignIn, domainerrors.ErrAccountNotFound.Message())
	case service.HasIdentityCode(err, service.IdentityCodeInvalidGrant):
		return usecase.Failure(pathSignIn, domainerrors.ErrAccountDisabled.Message())
	case service.IsConnectivity(err):
		return usecase.Failure(pathSignIn, domainerrors.ErrConnectivity.Message())
	default:
		return usecase.Failure(pathSignIn, domainerrors.ErrInternalError.Message())
	}
}

// pushRoleMetadata mirrors the canonical role back into the identity
// metadata when it drifted. Fire and forget; the canonical source stays the
// users table either way.
func (srv *authService) pushRoleMetadata(ctx context.Context, accessToken string, role entity.Role, metadataRole string) {
	if metadataRole == role.String() {
		return
	}

	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	go func() {
		ctx, cancel := context.WithTimeout(detached, fireForgetTimeout)
		defer cancel()

		err := srv.identity.UpdateUserMetadata(ctx, accessToken, service.IdentityMetadata{Role: role.String()})
		if err != nil {
			logger.Warn("Role metadata push failed", slog.Any("role", role), slog.Any("error", err))
		}
	}()
}

// routeByRole picks the landing page for a signed-in user.
func (srv *authService) routeByRole(ctx context.Context, user *entity.User, session *service.Session) *usecase.SignInOutput {
	switch user.Role {
	case entity.RoleAdmin:
		return srv.sessionOutput(usecase.Success(pathAdminDashboard, ""), session)
	case entity.RoleBuyer:
		// Best effort; a billing failure never blocks the login.
		if err := srv.subscriptionUC.EnsureFreemium(ctx, user.ID, user.Email); err != nil {
			srv.log(ctx).Error("Freemium provisioning on sign-in failed",
				slog.Any("userID", user.ID),
				slog.Any("error", err))
		}

		return srv.sessionOutput(usecase.Success(pathPricing, ""), session)
	default:
		return srv.sessionOutput(usecase.Success(pathDashboard, ""), session)
	}
}

func (srv *authService) sessionOutput(redirect usecase.Redirect, session *service.Session) *usecase.SignInOutput {
	return &usecase.SignInOutput{
		Redirect:     redirect,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
	}
}

// SignOut invalidates the current session. Failures are logged, not
// surfaced; the user lands on the sign-in page regardless.
func (srv *authService) SignOut(ctx context.Context, input usecase.SignOutInput) (usecase.Redirect, error) {
	if input.AccessToken != "" {
		if err := srv.identity.SignOut(ctx, input.AccessToken, service.SignOutLocal); err != nil {
			srv.log(ctx).Warn("Identity sign-out failed", slog.Any("error", err))
		}
	}

	return usecase.Success(pathSignIn, ""), nil
}

// ForgotPassword triggers the hosted recovery email. The response never
// reveals whether the email exists.
func (srv *authService) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) (usecase.Redirect, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return usecase.Failure(pathForgotPassword, domainerrors.ErrValidationFailed.Message()), nil
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password recovery requested for unknown email")

		return usecase.Success(pathForgotPassword, msgRecoveryEmail), nil
	}
	if err != nil {
		srv.log(ctx).Error("Password recovery lookup failed", slog.Any("error", err))

		return usecase.Failure(pathForgotPassword, domainerrors.ErrInternalError.Message()), nil
	}

	redirectTo := srv.siteURL + pathResetPassword
	_, err = retry.Do(ctx, srv.log(ctx), passwordResetRetry, "password recovery email",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, srv.identity.ResetPasswordForEmail(ctx, email, redirectTo)
		})
	if err != nil {
		if service.IsConnectivity(err) {
			return usecase.Failure(pathForgotPassword, domainerrors.ErrConnectivity.Message()), nil
		}

		return usecase.Failure(pathForgotPassword, domainerrors.ErrInternalError.Message()), nil
	}

	return usecase.Success(pathForgotPassword, msgRecoveryEmail), nil
}

// ResetPassword sets the new password chosen on the recovery page and lifts
// a suspension if one was in place.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (usecase.Redirect, error) {
	if input.Password != input.ConfirmPassword {
		return usecase.Failure(pathResetPassword, msgPasswordsDiffer), nil
	}
	if len(input.Password) < 8 {
		return usecase.Failure(pathResetPassword, domainerrors.ErrWeakPassword.Message()), nil
	}

	if err := srv.identity.UpdatePassword(ctx, input.AccessToken, input.Password); err != nil {
		srv.log(ctx).Warn("Password update failed", slog.Any("error", err))

		switch {
		case service.HasIdentityCode(err, service.IdentityCodeWeakPassword):
			return usecase.Failure(pathResetPassword, domainerrors.ErrWeakPassword.Message()), nil
		case service.IsConnectivity(err):
			return usecase.Failure(pathResetPassword, domainerrors.ErrConnectivity.Message()), nil
		default:
			return usecase.Failure(pathResetPassword, domainerrors.ErrInternalError.Message()), nil
		}
	}

	srv.reactivateSuspended(ctx, input.AccessToken)

	return usecase.Success(pathSignIn, msgPasswordUpdated), nil
}

// reactivateSuspended lifts a suspension after a successful password reset.
// Best effort; a failure leaves the account suspended but the new password
// in place.
func (srv *authService) reactivateSuspended(ctx context.Context, accessToken string) {
	identity, err := srv.identity.GetUser(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Could not resolve identity after password reset", slog.Any("error", err))

		return
	}

	user, err := srv.userRepo.FindByID(ctx, identity.ID)
	if err != nil {
		srv.log(ctx).Warn("Could not load user after password reset",
			slog.Any("userID", identity.ID),
			slog.Any("error", err))

		return
	}

	if user.Status != entity.StatusSuspended {
		return
	}

	if _, err := srv.userRepo.UpdateStatus(ctx, user.ID, entity.StatusActive); err != nil {
		srv.log(ctx).Error("Could not reactivate suspended user",
			slog.Any("userID", user.ID),
			slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Reactivated suspended user after password reset", slog.Any("userID", user.ID))
}
