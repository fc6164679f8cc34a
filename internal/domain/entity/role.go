// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the canonical role of an account in the marketplace.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "administrador"
	// RoleBuyer indicates the buyer-equivalent role. Historically distinct
	// roles (owner, builder, buyer) were collapsed into this one because
	// every non-admin account can both list and browse properties.
	RoleBuyer Role = "comprador(a)"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a canonical value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBuyer:
		return true
	default:
		return false
	}
}

// NormalizeRole maps any historical role alias to its canonical value.
// The mapping is total: unknown values fall back to the buyer-equivalent
// role, and canonical values map to themselves, so normalization is
// idempotent. Matching is case-insensitive.
func NormalizeRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "administrator", string(RoleAdmin):
		return RoleAdmin
	case "owner", "proprietario(a)", "buyer", "builder", string(RoleBuyer):
		return RoleBuyer
	default:
		return RoleBuyer
	}
}
