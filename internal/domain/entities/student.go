package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// StudentProfile is the 1:1 extension of an Account tagged STUDENT. The
// verified flags are mutated only by the verification flows.
type StudentProfile struct {
	AccountID           uuid.UUID `json:"accountId"`
	Email               string    `json:"email"`
	FullName            string    `json:"fullName"`
	PhoneNumber         string    `json:"phoneNumber"`
	EmailVerified       bool      `json:"emailVerified"`
	PhoneNumberVerified bool      `json:"phoneNumberVerified"`
	PhoneVerifiedAt     null.Time `json:"phoneVerifiedAt,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`

	// Preference collections, loaded on profile reads.
	CurrentEducationLevel *EducationLevel `json:"currentEducationLevel,omitempty"`
	SelectedTags          []Tag           `json:"selectedTags,omitempty"`
	Interests             []Interest      `json:"interests,omitempty"`
	PreferredLocations    []Location      `json:"preferredLocations,omitempty"`
	Wishlist              []Course        `json:"wishlist,omitempty"`
}
