package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// GeneratedPasswordLength is the length of server-side generated
	// passwords for OTP-gated registrations.
	GeneratedPasswordLength = 24
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomIndex                = func(max int64) (int64, error) {
		n, err := rand.Int(rand.Reader, big.NewInt(max))
		if err != nil {
			return 0, err
		}
		return n.Int64(), nil
	}
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateStrongPassword generates a random password for accounts created
// through the OTP registration flow. The user never sees it; they either
// log in via OTP or go through password reset.
func GenerateStrongPassword() (string, error) {
	out := make([]byte, GeneratedPasswordLength)
	for i := range out {
		idx, err := randomIndex(int64(len(passwordAlphabet)))
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		out[i] = passwordAlphabet[idx]
	}
	return string(out), nil
}
