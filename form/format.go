package form

import (
	"errors"
	"unicode/utf8"
)

// FormatKind selects a plain-text marker pair.
type FormatKind string

const (
	FormatBold   FormatKind = "bold"
	FormatItalic FormatKind = "italic"
)

// ErrEmptySelection signals that there was nothing selected to format. The
// caller surfaces it as an informational notice, not a failure.
var ErrEmptySelection = errors.New("Please select the text you want to format.")

// Selection is a rune-indexed span within a text value.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func markerFor(kind FormatKind) (string, bool) {
	switch kind {
	case FormatBold:
		return "**", true
	case FormatItalic:
		return "*", true
	}
	return "", false
}

// FormatSelection wraps the selected span of text with the marker pair for
// kind and splices it back into the full value. The returned selection covers
// the inserted marked text, markers included, so the caller can restore it.
// Unknown kinds and empty selections leave the text untouched; offsets
// outside the text are clamped and inverted spans are normalized.
func FormatSelection(text string, sel Selection, kind FormatKind) (string, Selection, error) {
	marker, ok := markerFor(kind)
	if !ok {
		return text, sel, nil
	}

	runes := []rune(text)
	start := clampIndex(sel.Start, len(runes))
	end := clampIndex(sel.End, len(runes))
	if end < start {
		start, end = end, start
	}
	if start == end {
		return text, sel, ErrEmptySelection
	}

	wrapped := marker + string(runes[start:end]) + marker
	out := string(runes[:start]) + wrapped + string(runes[end:])
	markerLen := utf8.RuneCountInString(marker)
	return out, Selection{Start: start, End: end + 2*markerLen}, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
