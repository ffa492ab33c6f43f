package models

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9-]+(\.[a-z0-9-]+)*\.[a-z]{2,}$`)

// NormalizeEmail trims and lowercases raw and validates the result against a
// pragmatic address shape. Invalid input returns ErrInvalidEmail.
func NormalizeEmail(raw string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(n) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return n, nil
}
