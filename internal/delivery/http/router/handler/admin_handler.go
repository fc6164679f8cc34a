package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"habitar/internal/delivery/http/response"
	"habitar/internal/domain/entity"
	"habitar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrative handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// userView is the wire shape of a user row in admin responses.
type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	NIF       string    `json:"nif,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		FullName:  user.FullName,
		Role:      user.Role.String(),
		Status:    user.Status.String(),
		NIF:       user.NIF,
		Contact:   user.Contact,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ListUsers handles the filtered user listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var input usecase.ListUsersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing filter")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	users, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// updateStatusInput is the body of the status patch endpoint.
type updateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles an arbitrary status change.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "User status updated")
}

// SuspendUser handles the suspension shortcut.
func (h *AdminHandler) SuspendUser(c echo.Context) error {
	return h.applyStatusAction(c, h.uc.SuspendUser, "User suspended")
}

// ActivateUser handles the reactivation shortcut.
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	return h.applyStatusAction(c, h.uc.ActivateUser, "User activated")
}

// BanUser handles the ban shortcut.
func (h *AdminHandler) BanUser(c echo.Context) error {
	return h.applyStatusAction(c, h.uc.BanUser, "User banned")
}

func (h *AdminHandler) applyStatusAction(c echo.Context, action func(ctx context.Context, id uuid.UUID) (*entity.User, error), message string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := action(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), message)
}
