package phone

import (
	"errors"
	"strings"
)

// ErrInvalid is returned for inputs that cannot be normalized to E.164.
var ErrInvalid = errors.New("invalid phone number")

// Normalize converts a raw phone number to E.164. Inputs may carry an
// explicit +<country code>, or be national digits that get the default
// calling code prefixed (e.g. "91" for India). Separators and
// parentheses are stripped; anything else is rejected.
func Normalize(raw, defaultCallingCode string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	international := strings.HasPrefix(cleaned, "+")
	cleaned = strings.TrimPrefix(cleaned, "+")

	if cleaned == "" || !isDigits(cleaned) {
		return "", ErrInvalid
	}

	var normalized string
	if international {
		normalized = "+" + cleaned
	} else {
		code := strings.TrimPrefix(defaultCallingCode, "+")
		if code == "" || !isDigits(code) {
			return "", ErrInvalid
		}
		normalized = "+" + code + cleaned
	}

	// E.164: up to 15 digits after the plus, and enough digits to be a
	// subscriber number at all.
	digits := len(normalized) - 1
	if digits < 8 || digits > 15 {
		return "", ErrInvalid
	}
	if normalized[1] == '0' {
		return "", ErrInvalid
	}
	return normalized, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
