package models

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Kind         string    `gorm:"type:varchar(20);not null;default:'STUDENT'"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsStaff      bool      `gorm:"not null;default:false"`
	IsSuperuser  bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
