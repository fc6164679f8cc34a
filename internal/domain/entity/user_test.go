package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUserFromIdentity(t *testing.T) {
	id := uuid.New()

	user := NewUserFromIdentity(id, "maria.santos@example.pt", RoleBuyer, "123456789", "+351912345678")

	assert.Equal(t, id, user.ID)
	assert.Equal(t, id, user.UserID)
	assert.Equal(t, "maria.santos@example.pt", user.Email)
	assert.Equal(t, "maria.santos", user.Name)
	assert.Equal(t, RoleBuyer, user.Role)
	assert.Equal(t, StatusActive, user.Status)
	assert.Equal(t, "123456789", user.NIF)
	assert.Equal(t, id.String(), user.TokenIdentifier)
}

func TestNewUserFromIdentity_NameWithoutAtSign(t *testing.T) {
	user := NewUserFromIdentity(uuid.New(), "not-an-email", RoleBuyer, "", "")

	assert.Equal(t, "not-an-email", user.Name)
}

func TestUserStatusIsValid(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusSuspended.IsValid())
	assert.True(t, StatusBanned.IsValid())
	assert.False(t, UserStatus("deleted").IsValid())
}
