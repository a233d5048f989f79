package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	spaceRegex = regexp.MustCompile(`\s+`)
)

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeAddress collapses whitespace and lowercases an address line so that
// equivalent addresses map to the same cache key
func NormalizeAddress(address string) string {
	normalized := spaceRegex.ReplaceAllString(strings.TrimSpace(address), " ")
	return strings.ToLower(normalized)
}
