package form

import "unicode/utf8"

// Severity classifies how close a text value sits to its character limit.
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// DefaultNoteLimit matches the maxlength of the consultation note and chief
// complaint textareas.
const DefaultNoteLimit = 5000

// CounterState is the counter snapshot for a limited field. It is derived
// from the current value on every call and never cached.
type CounterState struct {
	Length    int      `json:"length"`
	Limit     int      `json:"limit"`
	Remaining int      `json:"remaining"`
	Severity  Severity `json:"severity"`
}

// Limiter enforces a maximum rune count on a free-text field.
type Limiter struct {
	limit int
}

// NewLimiter creates a limiter; non-positive limits fall back to the default.
func NewLimiter(limit int) *Limiter {
	if limit <= 0 {
		limit = DefaultNoteLimit
	}
	return &Limiter{limit: limit}
}

// Limit returns the configured maximum rune count.
func (l *Limiter) Limit() int { return l.limit }

// Classify maps a length to a severity band: danger above 90% of the limit,
// warning above 80%, normal otherwise.
func (l *Limiter) Classify(length int) Severity {
	switch {
	case length*10 > l.limit*9:
		return SeverityDanger
	case length*5 > l.limit*4:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Count returns the counter state for value without modifying it.
func (l *Limiter) Count(value string) CounterState {
	n := utf8.RuneCountInString(value)
	return CounterState{
		Length:    n,
		Limit:     l.limit,
		Remaining: l.limit - n,
		Severity:  l.Classify(n),
	}
}

// Apply hard-truncates value to the limit when it overruns and reports
// whether truncation happened. The counter state reflects the returned value;
// a truncated result sits exactly at the limit and therefore classifies as
// danger.
func (l *Limiter) Apply(value string) (string, CounterState, bool) {
	if utf8.RuneCountInString(value) <= l.limit {
		return value, l.Count(value), false
	}
	runes := []rune(value)
	truncated := string(runes[:l.limit])
	return truncated, l.Count(truncated), true
}
