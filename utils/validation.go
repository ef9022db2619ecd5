// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

// ValidatePhone checks if a phone number looks dialable. Local Egyptian
// numbers keep their leading zero (01012345678), international ones may
// carry a + prefix.
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	return phonePattern.MatchString(cleaned)
}
