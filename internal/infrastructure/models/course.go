package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OfferedBy       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Slug            string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Mode            string    `gorm:"type:varchar(20);not null;default:'ON_CAMPUS'"`
	Description     string    `gorm:"type:text;not null;default:''"`
	DurationWeeks   int       `gorm:"not null;default:2"`
	FeeAmount       int       `gorm:"not null;default:0"`
	SyllabusURL     *string   `gorm:"type:varchar(512)"`
	FeeBreakdownURL *string   `gorm:"type:varchar(512)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Tags        []Tag                  `gorm:"many2many:course_tags"`
	Batches     []Batch                `gorm:"foreignKey:CourseID"`
	Eligibility []EligibilityCriteria  `gorm:"foreignKey:CourseID"`
	FormFields  []ApplicationFormField `gorm:"foreignKey:CourseID"`
}

type Batch struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Location         string     `gorm:"type:varchar(255);not null"`
	CommencementDate *time.Time `gorm:"type:date"`
	Discount         float64    `gorm:"not null;default:0"`
}

type EligibilityCriteria struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Detail   string    `gorm:"type:text;not null"`
}

func (EligibilityCriteria) TableName() string {
	return "eligibility_criteria"
}

type ApplicationFormField struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label    string    `gorm:"type:varchar(255);not null"`
	Type     string    `gorm:"type:varchar(10);not null;default:'TEXT'"`
	Required bool      `gorm:"not null;default:false"`
}
