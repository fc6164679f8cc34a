// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// RedirectKind classifies an auth flow outcome for the caller.
type RedirectKind string

const (
	// RedirectSuccess marks a flow that completed as intended.
	RedirectSuccess RedirectKind = "success"
	// RedirectError marks a flow that ended with a user-facing failure.
	RedirectError RedirectKind = "error"
)

// Redirect is the explicit outcome of an auth flow: where to send the user
// and the flash message to show there. Flows return it as a value instead of
// signalling through errors, so a failed sign-in and a successful one travel
// the same path back to the delivery layer.
type Redirect struct {
	Kind    RedirectKind
	Path    string
	Message string
}

// Success builds a success redirect.
func Success(path, message string) Redirect {
	return Redirect{Kind: RedirectSuccess, Path: path, Message: message}
}

// Failure builds an error redirect.
func Failure(path, message string) Redirect {
	return Redirect{Kind: RedirectError, Path: path, Message: message}
}

// IsSuccess reports whether the flow completed as intended.
func (r Redirect) IsSuccess() bool {
	return r.Kind == RedirectSuccess
}

// --- Input DTOs ---

// SignUpInput defines the data collected by the registration form.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role" validate:"required"`
	NIF      string `json:"nif"`
	Contact  string `json:"contact"`
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignOutInput carries the session token to invalidate.
type SignOutInput struct {
	AccessToken string `json:"-"`
}

// ForgotPasswordInput carries the email requesting a recovery link.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput carries the new password chosen on the recovery page.
// AccessToken is the recovery session token from the emailed link.
type ResetPasswordInput struct {
	AccessToken     string `json:"-"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// --- Output DTOs ---

// SignInOutput returns the redirect plus the session issued by the identity
// service when the flow succeeded.
type SignInOutput struct {
	Redirect     Redirect
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// AuthUsecase defines the interface for the account flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (Redirect, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	SignOut(ctx context.Context, input SignOutInput) (Redirect, error)
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) (Redirect, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) (Redirect, error)
}
