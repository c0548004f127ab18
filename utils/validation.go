// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var carSizes = map[string]bool{"Small": true, "Medium": true, "Large": true}

// ValidCarSize checks the size against the fixed set the catalog uses
func ValidCarSize(size string) bool {
	return carSizes[size]
}

// ValidatePhone checks if a phone number is in a valid local or
// international format
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// + prefix optional, 7-15 digits, leading zero allowed
	regex := `^\+?[0-9]\d{6,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
