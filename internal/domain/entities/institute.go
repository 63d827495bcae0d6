package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// InstituteProfile is the 1:1 extension of an Account tagged
// INSTITUTE_ADMIN.
type InstituteProfile struct {
	AccountID   uuid.UUID   `json:"accountId"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	LogoURL     null.String `json:"logoUrl,omitempty"`
	Details     []Detail    `json:"details,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Detail is a free-form key/value pair shown on an institute's page.
type Detail struct {
	ID     uuid.UUID `json:"id"`
	Detail string    `json:"detail"`
	Info   string    `json:"info"`
}

// UpdateInstituteProfileInput updates the admin's own institute page.
type UpdateInstituteProfileInput struct {
	Name        string        `json:"name" binding:"required,min=2,max=255"`
	Description string        `json:"description"`
	LogoURL     string        `json:"logoUrl" binding:"omitempty,url"`
	Details     []DetailInput `json:"details" binding:"omitempty,dive"`
}

// DetailInput is one key/value entry in a profile update.
type DetailInput struct {
	Detail string `json:"detail" binding:"required,max=100"`
	Info   string `json:"info" binding:"required,max=255"`
}
