package util

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\d{10}$`)

// ValidatePhone reports whether phone is exactly 10 digits.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// ValidateName reports whether name is non-empty after trimming.
func ValidateName(name string) bool {
	return strings.TrimSpace(name) != ""
}
