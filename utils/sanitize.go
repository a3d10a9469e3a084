package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips unsafe HTML from free-text clinical fields before they are
// rendered in the report preview. Text that round-trips back into an editable
// control is never sanitized, only rendered output is.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
