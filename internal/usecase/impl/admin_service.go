package impl

import (
	"context"
	"log/slog"

	deliverycontext "habitar/internal/delivery/context"
	"habitar/internal/domain/entity"
	domainerrors "habitar/internal/domain/errors"
	"habitar/internal/domain/repository"
	"habitar/internal/domain/service"
	"habitar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo repository.UserRepository
	identity service.IdentityService
	logger   *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Identity service.IdentityService
	Logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo: params.UserRepo,
		identity: params.Identity,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns users matching the filter, newest first.
func (srv *adminService) ListUsers(ctx context.Context, input usecase.ListUsersInput) ([]*entity.User, error) {
	filter := repository.UserFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}

	if input.Role != "" {
		filter.Role = entity.NormalizeRole(input.Role)
	}
	if input.Status != "" {
		status := entity.UserStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status filter")
		}
		filter.Status = status
	}

	users, err := srv.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateStatus sets an arbitrary valid status on a user.
func (srv *adminService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.User, error) {
	target := entity.UserStatus(status)
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status")
	}

	return srv.setStatus(ctx, id, target)
}

// SuspendUser moves a user to the suspended status.
func (srv *adminService) SuspendUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.setStatus(ctx, id, entity.StatusSuspended)
}

// ActivateUser moves a user back to the active status.
func (srv *adminService) ActivateUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.setStatus(ctx, id, entity.StatusActive)
}

// BanUser moves a user to the banned status and revokes every identity
// session. The identity record is never deleted; a ban is the status flag
// plus the session revocation.
func (srv *adminService) BanUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.setStatus(ctx, id, entity.StatusBanned)
	if err != nil {
		return nil, err
	}

	// Best effort; the status flag blocks the next sign-in even if the
	// revocation fails.
	if err := srv.identity.AdminSignOutUser(ctx, id); err != nil {
		srv.log(ctx).Warn("Global sign-out for banned user failed",
			slog.Any("userID", id),
			slog.Any("error", err))
	}

	return user, nil
}

func (srv *adminService) setStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	user, err := srv.userRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user status")
	}

	srv.log(ctx).Info("Updated user status",
		slog.Any("userID", id),
		slog.Any("status", status))

	return user, nil
}
