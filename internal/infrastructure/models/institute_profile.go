package models

import (
	"time"

	"github.com/google/uuid"
)

type InstituteProfile struct {
	AccountID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	LogoURL     *string   `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Account Account           `gorm:"foreignKey:AccountID"`
	Details []InstituteDetail `gorm:"foreignKey:InstituteID"`
}

type InstituteDetail struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	InstituteID uuid.UUID `gorm:"type:uuid;not null;index"`
	Detail      string    `gorm:"type:varchar(100);not null"`
	Info        string    `gorm:"type:varchar(255);not null"`
}
