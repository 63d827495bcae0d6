package entities

import (
	"time"

	"github.com/google/uuid"
)

// OtpRecord is bookkeeping for an issued code. Correctness does not
// depend on it — the code rides inside the verification token — but the
// record supports auditing and gets reaped after expiry.
type OtpRecord struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	Code        string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
