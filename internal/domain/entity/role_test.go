package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Role
	}{
		{name: "administrator alias", raw: "administrator", want: RoleAdmin},
		{name: "canonical admin", raw: "administrador", want: RoleAdmin},
		{name: "owner alias", raw: "owner", want: RoleBuyer},
		{name: "legacy owner alias", raw: "proprietario(a)", want: RoleBuyer},
		{name: "buyer alias", raw: "buyer", want: RoleBuyer},
		{name: "builder alias", raw: "builder", want: RoleBuyer},
		{name: "canonical buyer", raw: "comprador(a)", want: RoleBuyer},
		{name: "unknown falls back to buyer", raw: "landlord", want: RoleBuyer},
		{name: "empty falls back to buyer", raw: "", want: RoleBuyer},
		{name: "case insensitive", raw: "Administrator", want: RoleAdmin},
		{name: "surrounding whitespace", raw: "  owner  ", want: RoleBuyer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.raw))
		})
	}
}

func TestNormalizeRole_Idempotent(t *testing.T) {
	for _, raw := range []string{"administrator", "owner", "buyer", "builder", "whatever"} {
		once := NormalizeRole(raw)
		assert.Equal(t, once, NormalizeRole(once.String()))
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleBuyer.IsValid())
	assert.False(t, Role("owner").IsValid())
	assert.False(t, Role("").IsValid())
}
