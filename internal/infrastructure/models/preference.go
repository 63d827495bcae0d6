package models

import (
	"github.com/google/uuid"
)

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name string    `gorm:"type:varchar(25);uniqueIndex;not null"`
	Type string    `gorm:"type:varchar(20);not null;default:'SKILL'"`
}

type Interest struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name     string    `gorm:"type:varchar(25);uniqueIndex;not null"`
	ImageURL *string   `gorm:"type:varchar(512)"`
}

type Location struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ImageURL *string   `gorm:"type:varchar(512)"`
}

type EducationLevel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name     string    `gorm:"type:varchar(25);uniqueIndex;not null"`
	ImageURL *string   `gorm:"type:varchar(512)"`
}
