// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"habitar/internal/delivery/http/response"
	"habitar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Session cookie names set after a successful sign-in.
const (
	cookieAccessToken  = "access_token"
	cookieRefreshToken = "refresh_token"
)

// AuthHandler holds dependencies for the account flow handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	redirect, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, redirect)
}

// SignIn handles the login request. A successful login stores the session
// tokens in HTTP-only cookies before redirecting.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Redirect.IsSuccess() {
		setSessionCookies(c, output)
	}

	return response.Redirect(c, output.Redirect)
}

// SignOut handles the logout request and clears the session cookies.
func (h *AuthHandler) SignOut(c echo.Context) error {
	input := usecase.SignOutInput{AccessToken: sessionToken(c)}

	redirect, err := h.uc.SignOut(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	clearSessionCookies(c)

	return response.Redirect(c, redirect)
}

// ForgotPassword handles the password recovery request.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recovery input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	redirect, err := h.uc.ForgotPassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, redirect)
}

// ResetPassword handles the new-password submission from the recovery page.
// The recovery session token arrives like any other bearer token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.AccessToken = sessionToken(c)

	redirect, err := h.uc.ResetPassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, redirect)
}

// sessionToken pulls the access token from the Authorization header, falling
// back to the session cookie.
func sessionToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	if cookie, err := c.Cookie(cookieAccessToken); err == nil {
		return cookie.Value
	}

	return ""
}

func setSessionCookies(c echo.Context, output *usecase.SignInOutput) {
	c.SetCookie(&http.Cookie{
		Name:     cookieAccessToken,
		Value:    output.AccessToken,
		Path:     "/",
		MaxAge:   output.ExpiresIn,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     cookieRefreshToken,
		Value:    output.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookies(c echo.Context) {
	for _, name := range []string{cookieAccessToken, cookieRefreshToken} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
