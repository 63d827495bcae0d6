package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// Length is the number of digits in a generated code.
	Length = 6
	// TTL is how long a code stays redeemable after generation.
	TTL = 30 * time.Minute
)

var codeSpace = big.NewInt(1_000_000)

// Code is a one-time numeric code bound to a phone number. Codes are not
// stored for correctness; they ride inside the verification token claims
// and are compared on redemption.
type Code struct {
	PhoneNumber string
	Value       string
	CreatedAt   time.Time
}

var randomInt = func() (int64, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// Generate produces a fresh zero-padded code for the phone number.
// Leading zeros are significant: value 42 renders as "000042".
func Generate(phoneNumber string) (*Code, error) {
	n, err := randomInt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}
	return &Code{
		PhoneNumber: phoneNumber,
		Value:       fmt.Sprintf("%0*d", Length, n),
		CreatedAt:   time.Now(),
	}, nil
}

// ExpiresAt returns the instant the code stops being redeemable.
func (c *Code) ExpiresAt() time.Time {
	return c.CreatedAt.Add(TTL)
}

// Expired reports whether the code is past its TTL at the given instant.
func (c *Code) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt())
}
