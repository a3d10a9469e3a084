package form

import (
	"regexp"
	"strings"
)

// contactMessage mirrors the wording shown next to the contact inputs.
const contactMessage = "Please enter a valid email address or phone number."

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[1-9][0-9]{9,}$`)
	// Separators people type into phone numbers; stripped before matching.
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// ValidContact reports whether value looks like an email address or a phone
// number. A phone number may carry a leading + and common separators; after
// stripping those it must be at least ten digits and start with 1-9. Empty
// input is valid here; required-ness is a separate rule.
func ValidContact(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	if emailPattern.MatchString(v) {
		return true
	}
	digits := phoneSeparators.Replace(v)
	digits = strings.TrimPrefix(digits, "+")
	return phonePattern.MatchString(digits)
}

// CheckContact wraps ValidContact into a ValidationResult.
func CheckContact(value string) ValidationResult {
	if ValidContact(value) {
		return valid()
	}
	return invalid(contactMessage)
}
