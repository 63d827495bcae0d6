package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AppliedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BatchID     uuid.UUID `gorm:"type:uuid;not null"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(20);not null"`
	DateOfBirth time.Time `gorm:"type:date;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'UNDER_REVIEW'"`
	SubmittedOn time.Time
	UpdatedOn   time.Time

	FormResponses []ApplicationFormResponse `gorm:"foreignKey:ApplicationID"`
}

type ApplicationFormResponse struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	FormFieldID   uuid.UUID `gorm:"type:uuid;not null"`
	ValueText     *string   `gorm:"type:varchar(255)"`
	ValueNumber   *float64
	ValueFile     *string `gorm:"type:varchar(512)"`
}
