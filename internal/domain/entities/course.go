package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CourseMode represents how a course is delivered
type CourseMode string

const (
	CourseModeOnCampus CourseMode = "ON_CAMPUS"
	CourseModeOnline   CourseMode = "ONLINE"
	CourseModeHybrid   CourseMode = "HYBRID"
)

// Course is a published offering of an institute.
type Course struct {
	ID              uuid.UUID             `json:"id"`
	OfferedBy       uuid.UUID             `json:"offeredBy"`
	Name            string                `json:"name"`
	Slug            string                `json:"slug"`
	Mode            CourseMode            `json:"mode"`
	Description     string                `json:"description"`
	DurationWeeks   int                   `json:"durationWeeks"`
	FeeAmount       int                   `json:"feeAmount"`
	SyllabusURL     null.String           `json:"syllabusUrl,omitempty"`
	FeeBreakdownURL null.String           `json:"feeBreakdownUrl,omitempty"`
	Tags            []Tag                 `json:"tags,omitempty"`
	Batches         []Batch               `json:"batches,omitempty"`
	Eligibility     []EligibilityCriteria `json:"eligibility,omitempty"`
	FormFields      []ApplicationFormField `json:"formFields,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// Batch is a scheduled run of a course at a location.
type Batch struct {
	ID               uuid.UUID `json:"id"`
	CourseID         uuid.UUID `json:"courseId"`
	Location         string    `json:"location"`
	CommencementDate null.Time `json:"commencementDate,omitempty"`
	Discount         float64   `json:"discount"`
}

// EligibilityCriteria is one requirement line on a course.
type EligibilityCriteria struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"courseId"`
	Detail   string    `json:"detail"`
}

// FormFieldType discriminates a dynamic application form field.
type FormFieldType string

const (
	FormFieldText   FormFieldType = "TEXT"
	FormFieldNumber FormFieldType = "NUMBER"
	FormFieldFile   FormFieldType = "FILE"
)

// ApplicationFormField is a per-course dynamic field applicants fill in.
type ApplicationFormField struct {
	ID       uuid.UUID     `json:"id"`
	CourseID uuid.UUID     `json:"courseId"`
	Label    string        `json:"label"`
	Type     FormFieldType `json:"type"`
	Required bool          `json:"required"`
}

// CreateCourseInput creates a course with its nested collections.
type CreateCourseInput struct {
	Name            string                 `json:"name" binding:"required,min=2,max=255"`
	Slug            string                 `json:"slug" binding:"required,min=2,max=64,lowercase"`
	Mode            CourseMode             `json:"mode" binding:"required,oneof=ON_CAMPUS ONLINE HYBRID"`
	Description     string                 `json:"description"`
	DurationWeeks   int                    `json:"durationWeeks" binding:"required,min=1"`
	FeeAmount       int                    `json:"feeAmount" binding:"min=0"`
	SyllabusURL     string                 `json:"syllabusUrl" binding:"omitempty,url"`
	FeeBreakdownURL string                 `json:"feeBreakdownUrl" binding:"omitempty,url"`
	TagIDs          []uuid.UUID            `json:"tagIds"`
	Eligibility     []string               `json:"eligibility"`
	Batches         []BatchInput           `json:"batches" binding:"omitempty,dive"`
	FormFields      []FormFieldInput       `json:"formFields" binding:"omitempty,dive"`
}

// UpdateCourseInput updates mutable course attributes.
type UpdateCourseInput struct {
	Name            string     `json:"name" binding:"omitempty,min=2,max=255"`
	Mode            CourseMode `json:"mode" binding:"omitempty,oneof=ON_CAMPUS ONLINE HYBRID"`
	Description     string     `json:"description"`
	DurationWeeks   int        `json:"durationWeeks" binding:"omitempty,min=1"`
	FeeAmount       *int       `json:"feeAmount" binding:"omitempty,min=0"`
	SyllabusURL     string     `json:"syllabusUrl" binding:"omitempty,url"`
	FeeBreakdownURL string     `json:"feeBreakdownUrl" binding:"omitempty,url"`
}

// BatchInput creates a batch under a course.
type BatchInput struct {
	Location         string     `json:"location" binding:"required,max=255"`
	CommencementDate *time.Time `json:"commencementDate"`
	Discount         float64    `json:"discount" binding:"min=0,max=1"`
}

// FormFieldInput declares one dynamic application form field.
type FormFieldInput struct {
	Label    string        `json:"label" binding:"required,max=255"`
	Type     FormFieldType `json:"type" binding:"required,oneof=TEXT NUMBER FILE"`
	Required bool          `json:"required"`
}
