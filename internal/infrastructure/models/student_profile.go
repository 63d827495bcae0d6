package models

import (
	"time"

	"github.com/google/uuid"
)

type StudentProfile struct {
	AccountID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName                string     `gorm:"type:varchar(255);not null"`
	PhoneNumber             string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	EmailVerified           bool       `gorm:"not null;default:false"`
	PhoneNumberVerified     bool       `gorm:"not null;default:false"`
	PhoneVerifiedAt         *time.Time `gorm:"type:timestamp"`
	CurrentEducationLevelID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt               time.Time
	UpdatedAt               time.Time

	Account               Account         `gorm:"foreignKey:AccountID"`
	CurrentEducationLevel *EducationLevel `gorm:"foreignKey:CurrentEducationLevelID"`
	SelectedTags          []Tag           `gorm:"many2many:student_tags"`
	Interests             []Interest      `gorm:"many2many:student_interests"`
	PreferredLocations    []Location      `gorm:"many2many:student_locations"`
	Wishlist              []Course        `gorm:"many2many:student_wishlist"`
}
