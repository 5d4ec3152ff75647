package util

import (
	"fmt"
	"net/mail"
	"strings"
)

// RequireFields checks that every value is non-empty after trimming.
// Returns the names of the missing fields.
func RequireFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ValidateEmail checks basic address shape.
func ValidateEmail(email string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("invalid email address: %q", email)
	}
	return nil
}

// NormalizeUsername trims and lowercases a username for storage and lookup.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
