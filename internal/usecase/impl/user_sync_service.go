// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "habitar/internal/delivery/context"
	"habitar/internal/domain/entity"
	"habitar/internal/domain/repository"
	"habitar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userSyncService implements the UserSyncUsecase interface. It is the single
// writer that keeps the users table in agreement with the identity platform.
type userSyncService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserSyncServiceParams holds dependencies for userSyncService, injected by Fx.
type UserSyncServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserSyncService is the constructor for userSyncService.
func NewUserSyncService(params UserSyncServiceParams) usecase.UserSyncUsecase {
	return &userSyncService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureUser reconciles one verified identity into the users table. The row
// is keyed by the identity id, with email as the fallback key when the
// platform re-issued an id for a known address. Duplicate inserts lose to the
// unique email constraint and degrade into updates, so concurrent sign-ins
// for the same identity converge on one row.
func (srv *userSyncService) EnsureUser(ctx context.Context, input usecase.SyncInput) (usecase.SyncResult, error) {
	role := entity.NormalizeRole(input.Role)
	email := strings.TrimSpace(input.Email)

	existing, err := srv.userRepo.FindByID(ctx, input.ID)
	switch {
	case err == nil:
		return srv.reconcileExisting(ctx, existing, role)
	case errors.Is(err, repository.ErrUserNotFound):
		// Absent under this id; fall through to the email paths.
	default:
		return usecase.SyncResult{}, errors.Wrap(err, "failed to look up user by id")
	}

	byEmail, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return srv.reassign(ctx, byEmail, input, role)
	case errors.Is(err, repository.ErrUserNotFound):
		// No row at all; create one.
	default:
		return usecase.SyncResult{}, errors.Wrap(err, "failed to look up user by email")
	}

	return srv.create(ctx, input, email, role)
}

// reconcileExisting handles a row already keyed by the identity id. Only an
// empty role gets patched; anything else is left alone so administrative
// changes survive sign-ins.
func (srv *userSyncService) reconcileExisting(ctx context.Context, user *entity.User, role entity.Role) (usecase.SyncResult, error) {
	if user.Role != "" {
		srv.log(ctx).Debug("User row already in sync", slog.Any("userID", user.ID))

		return usecase.SyncResult{}, nil
	}

	if err := srv.userRepo.UpdateRole(ctx, user.ID, role); err != nil {
		return usecase.SyncResult{}, errors.Wrap(err, "failed to patch user role")
	}

	srv.log(ctx).Info("Patched missing role on user row",
		slog.Any("userID", user.ID),
		slog.Any("role", role))

	return usecase.SyncResult{Updated: true}, nil
}

// reassign rewires a row found under the same email but a stale identity id.
func (srv *userSyncService) reassign(ctx context.Context, byEmail *entity.User, input usecase.SyncInput, role entity.Role) (usecase.SyncResult, error) {
	candidate := entity.NewUserFromIdentity(input.ID, byEmail.Email, role, input.NIF, input.Contact)

	if err := srv.userRepo.ReassignIdentity(ctx, byEmail.Email, candidate); err != nil {
		return usecase.SyncResult{}, errors.Wrap(err, "failed to reassign user identity")
	}

	srv.log(ctx).Info("Reassigned user row to new identity id",
		slog.String("email", byEmail.Email),
		slog.Any("previousID", byEmail.ID),
		slog.Any("userID", input.ID))

	return usecase.SyncResult{Updated: true}, nil
}

// create inserts a fresh row. A unique violation means another request won
// the race; the insert degrades into an update of whichever row exists.
func (srv *userSyncService) create(ctx context.Context, input usecase.SyncInput, email string, role entity.Role) (usecase.SyncResult, error) {
	candidate := entity.NewUserFromIdentity(input.ID, email, role, input.NIF, input.Contact)

	err := srv.userRepo.Create(ctx, candidate)
	if errors.Is(err, repository.ErrDuplicateUser) {
		srv.log(ctx).Warn("User insert lost a race, falling back to update",
			slog.Any("userID", input.ID),
			slog.String("email", email))

		if updateErr := srv.userRepo.Update(ctx, candidate); updateErr != nil {
			if errors.Is(updateErr, repository.ErrUserNotFound) {
				// The winning row is keyed by email under another id.
				if reassignErr := srv.userRepo.ReassignIdentity(ctx, email, candidate); reassignErr != nil {
					return usecase.SyncResult{}, errors.Wrap(reassignErr, "failed to resolve duplicate user")
				}

				return usecase.SyncResult{Updated: true}, nil
			}

			return usecase.SyncResult{}, errors.Wrap(updateErr, "failed to resolve duplicate user")
		}

		return usecase.SyncResult{Updated: true}, nil
	}
	if err != nil {
		return usecase.SyncResult{}, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Created user row",
		slog.Any("userID", input.ID),
		slog.String("email", email),
		slog.Any("role", role))

	return usecase.SyncResult{Created: true}, nil
}
