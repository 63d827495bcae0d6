package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TagType categorizes tags used for course discovery
type TagType string

const (
	TagTypeExam   TagType = "EXAM"
	TagTypeStream TagType = "STREAM"
	TagTypeSkill  TagType = "SKILL"
)

// Tag labels courses and student interests (exam, stream or skill).
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type TagType   `json:"type"`
}

// Interest is a topic students can follow.
type Interest struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	ImageURL null.String `json:"imageUrl,omitempty"`
}

// Location is a city/region students can prefer.
type Location struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	ImageURL null.String `json:"imageUrl,omitempty"`
}

// EducationLevel is a student's current study level.
type EducationLevel struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	ImageURL null.String `json:"imageUrl,omitempty"`
}

// SelectPreferencesInput attaches reference-data rows to a student.
type SelectPreferencesInput struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// SetEducationLevelInput sets the student's current education level.
type SetEducationLevelInput struct {
	EducationLevelID uuid.UUID `json:"educationLevelId" binding:"required"`
}
