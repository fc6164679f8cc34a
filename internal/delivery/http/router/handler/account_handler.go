package handler

import (
	"log/slog"
	"net/http"

	"habitar/internal/delivery/http/middleware"
	"habitar/internal/delivery/http/response"
	"habitar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves the authenticated self-service endpoints.
type AccountHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(subscriptionUC usecase.SubscriptionUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		subscriptionUC: subscriptionUC,
		logger:         logger,
	}
}

// GetSubscription reports whether the signed-in user holds an active
// subscription. Gated pages call this before rendering.
func (h *AccountHandler) GetSubscription(c echo.Context) error {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Not authenticated")
	}

	active, err := h.subscriptionUC.HasActiveSubscription(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"active": active,
	}, "")
}
