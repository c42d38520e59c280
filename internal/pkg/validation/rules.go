package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Phone number pattern - optional leading +, 10 to 15 digits
	PhonePattern = `^\+?\d{10,15}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidPhone reports whether the value matches the phone pattern.
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}
