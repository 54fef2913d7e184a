package util

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MaxEmailLength is the RFC 5321 mailbox length limit
const MaxEmailLength = 254

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// ValidateEmail checks that a string is a plausible email address.
// Rules:
// - Must be non-empty
// - Maximum length is 254 characters
// - Must match local@domain with a dotted TLD
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email must be no more than %d characters", MaxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// IsValidEmail checks an email address without returning an error
func IsValidEmail(email string) bool {
	return ValidateEmail(email) == nil
}
