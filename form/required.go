package form

import (
	"fmt"
	"strings"
)

// requiredMarkers lists the glyphs a caption may carry to flag a required
// field; they are stripped before the caption is used in a message.
const requiredMarkers = "*＊"

// CaptionLabel derives the human label from a field caption by dropping any
// trailing required-marker glyph.
func CaptionLabel(caption string) string {
	label := strings.TrimSpace(caption)
	label = strings.TrimRight(label, requiredMarkers)
	return strings.TrimSpace(label)
}

// CheckRequired fails on trimmed-empty values regardless of field type. The
// message names the field by its caption label.
func CheckRequired(value, caption string) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return invalid(fmt.Sprintf("%s is required.", CaptionLabel(caption)))
	}
	return valid()
}
