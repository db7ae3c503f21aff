package logging

import "strings"

// secretKeyPatterns contains substrings that mark an attribute key as
// carrying sensitive data. Matched case-insensitively.
var secretKeyPatterns = []string{
	"key",
	"token",
	"secret",
	"password",
	"credential",
}

// ShouldMask reports whether an attribute with this key must be masked
// before logging. Server API keys land in loader traces, so the handler
// checks every attribute.
func ShouldMask(key string) bool {
	lower := strings.ToLower(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// MaskValue masks a sensitive string value. Values of 4 characters or
// fewer are fully masked; longer values keep their last 4 characters.
func MaskValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
