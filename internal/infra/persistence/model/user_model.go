package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The primary key is the external
// identity service's user id, not a locally generated UUID.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID `gorm:"type:uuid;not null"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100)"`
	FullName        string    `gorm:"type:varchar(255)"`
	Role            string    `gorm:"type:varchar(50);index"`
	Status          string    `gorm:"type:varchar(20);not null;default:active;index"`
	NIF             string    `gorm:"type:varchar(20);column:nif"`
	Contact         string    `gorm:"type:varchar(50)"`
	TokenIdentifier string    `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
