// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of an account.
type UserStatus string

const (
	// StatusActive is the normal state of an account.
	StatusActive UserStatus = "active"
	// StatusSuspended blocks dashboard access until an administrator (or a
	// successful password reset) reactivates the account.
	StatusSuspended UserStatus = "suspended"
	// StatusBanned permanently blocks the account. The identity record is
	// never deleted; banning is a status flag plus global session sign-out.
	StatusBanned UserStatus = "banned"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a known value.
func (s UserStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusBanned:
		return true
	default:
		return false
	}
}

// User is the application-level record about a person. Its ID mirrors the
// external identity service's user id; Email is unique across the table and
// is the key the reconciler falls back to when the identity id has drifted.
type User struct {
	ID              uuid.UUID  // Mirrors the identity service's user id.
	UserID          uuid.UUID  // Legacy duplicate of ID kept for storefront queries.
	Email           string     // Unique login email.
	Name            string     // Short display name, defaults to the email local part.
	FullName        string     // Full legal name collected at sign-up.
	Role            Role       // Canonical role after alias normalization.
	Status          UserStatus // active, suspended or banned.
	NIF             string     // Portuguese tax number, optional.
	Contact         string     // Phone contact, optional.
	TokenIdentifier string     // Legacy token column, mirrors the identity id.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUserFromIdentity builds the candidate row the reconciler inserts when
// no application record exists yet for a verified identity.
func NewUserFromIdentity(id uuid.UUID, email string, role Role, nif, contact string) *User {
	return &User{
		ID:              id,
		UserID:          id,
		Email:           email,
		Name:            emailLocalPart(email),
		Role:            role,
		Status:          StatusActive,
		NIF:             nif,
		Contact:         contact,
		TokenIdentifier: id.String(),
	}
}

func emailLocalPart(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}

	return local
}
