// Package service defines interfaces for infrastructure services the
// application depends on, keeping the use case layer free of concrete clients.
package service

import (
	"context"

	"github.com/google/uuid"
)

// Identity error codes surfaced by the hosted identity service.
const (
	IdentityCodeInvalidCredentials = "invalid_credentials"
	IdentityCodeUserNotFound       = "user_not_found"
	IdentityCodeInvalidGrant       = "invalid_grant"
	IdentityCodeUserAlreadyExists  = "user_already_exists"
	IdentityCodeInvalidEmail       = "invalid_email"
	IdentityCodeWeakPassword       = "weak_password"
)

// SignOutScope selects which sessions a sign-out invalidates.
type SignOutScope string

const (
	// SignOutLocal ends only the current session.
	SignOutLocal SignOutScope = "local"
	// SignOutGlobal ends every session of the user. Used when banning.
	SignOutGlobal SignOutScope = "global"
)

// IdentityMetadata is the free-form profile blob stored alongside the
// external identity record at sign-up and synced back on sign-in.
type IdentityMetadata struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	NIF      string `json:"nif,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

// Identity is the external authentication record. It is authoritative for
// credentials only; application authorization reads the users table.
type Identity struct {
	ID       uuid.UUID
	Email    string
	Metadata IdentityMetadata
}

// Session carries the tokens issued by the identity service on sign-in.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// IdentityError is a classified failure from the identity service. Code is
// one of the IdentityCode constants (or a provider-specific string).
type IdentityError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *IdentityError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}

	return e.Message
}

// IdentityService wraps the hosted identity API. All methods are thin
// passthroughs plus error classification; retry policy lives with callers.
type IdentityService interface {
	// SignUp creates a new identity with profile metadata. The service
	// sends the verification email itself.
	SignUp(ctx context.Context, email, password string, metadata IdentityMetadata) (*Identity, error)

	// SignInWithPassword verifies credentials and returns the identity and
	// a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Identity, *Session, error)

	// GetUser resolves the identity behind an access token.
	GetUser(ctx context.Context, accessToken string) (*Identity, error)

	// UpdateUserMetadata merges fields into the identity's metadata blob.
	UpdateUserMetadata(ctx context.Context, accessToken string, metadata IdentityMetadata) error

	// UpdatePassword sets a new password for the authenticated identity.
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error

	// SignOut invalidates the session(s) behind the token.
	SignOut(ctx context.Context, accessToken string, scope SignOutScope) error

	// AdminSignOutUser revokes every session of the given user through the
	// admin API. Requires a service-role key.
	AdminSignOutUser(ctx context.Context, userID uuid.UUID) error

	// ResetPasswordForEmail triggers the hosted password-recovery email.
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error
}
