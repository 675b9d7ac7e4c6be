package domain

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// Confirmation code alphabet: uppercase latin letters and digits
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var confirmationCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// GenerateConfirmationCode returns a random six-character booking code.
// Uniqueness is the caller's concern.
func GenerateConfirmationCode() (string, error) {
	buf := make([]byte, ConfirmationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return string(buf), nil
}

// IsValidConfirmationCode reports whether s has the booking code format
func IsValidConfirmationCode(s string) bool {
	return confirmationCodePattern.MatchString(s)
}
