package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	ApplicationUnderReview    ApplicationStatus = "UNDER_REVIEW"
	ApplicationReviewed       ApplicationStatus = "REVIEWED"
	ApplicationRejected       ApplicationStatus = "REJECTED"
	ApplicationRequestPayment ApplicationStatus = "REQUEST_PAYMENT"
	ApplicationAccepted       ApplicationStatus = "ACCEPTED"
)

// Application is a student's submission for a course batch.
type Application struct {
	ID            uuid.UUID         `json:"id"`
	AppliedBy     uuid.UUID         `json:"appliedBy"`
	CourseID      uuid.UUID         `json:"courseId"`
	BatchID       uuid.UUID         `json:"batchId"`
	FullName      string            `json:"fullName"`
	Email         string            `json:"email"`
	PhoneNumber   string            `json:"phoneNumber"`
	DateOfBirth   time.Time         `json:"dateOfBirth"`
	Status        ApplicationStatus `json:"status"`
	FormResponses []FormResponse    `json:"formResponses,omitempty"`
	SubmittedOn   time.Time         `json:"submittedOn"`
	UpdatedOn     time.Time         `json:"updatedOn"`
}

// FormResponse is the value an applicant supplied for one dynamic form
// field; exactly one of the value columns is set, matching the field
// type.
type FormResponse struct {
	ID          uuid.UUID    `json:"id"`
	FormFieldID uuid.UUID    `json:"formFieldId"`
	ValueText   null.String  `json:"valueText,omitempty"`
	ValueNumber null.Float64 `json:"valueNumber,omitempty"`
	ValueFile   null.String  `json:"valueFile,omitempty"`
}

// CreateApplicationInput submits a new application.
type CreateApplicationInput struct {
	CourseID    uuid.UUID           `json:"courseId" binding:"required"`
	BatchID     uuid.UUID           `json:"batchId" binding:"required"`
	FullName    string              `json:"fullName" binding:"required,max=255"`
	Email       string              `json:"email" binding:"required,email"`
	PhoneNumber string              `json:"phoneNumber" binding:"required"`
	DateOfBirth time.Time           `json:"dateOfBirth" binding:"required" time_format:"2006-01-02"`
	FormData    []FormResponseInput `json:"formData" binding:"omitempty,dive"`
}

// FormResponseInput supplies one dynamic field value.
type FormResponseInput struct {
	FormFieldID uuid.UUID `json:"formFieldId" binding:"required"`
	ValueText   string    `json:"valueText"`
	ValueNumber *float64  `json:"valueNumber"`
	ValueFile   string    `json:"valueFile" binding:"omitempty,url"`
}

// UpdateApplicationStatusInput moves an application through review.
type UpdateApplicationStatusInput struct {
	Status ApplicationStatus `json:"status" binding:"required,oneof=UNDER_REVIEW REVIEWED REJECTED REQUEST_PAYMENT ACCEPTED"`
}
