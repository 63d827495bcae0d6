package models

import (
	"time"

	"github.com/google/uuid"
)

type Otp struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;index"`
	Code        string    `gorm:"type:varchar(6);not null"`
	CreatedAt   time.Time
	ExpiresAt   time.Time `gorm:"not null;index"`
}
