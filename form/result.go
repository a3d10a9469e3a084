package form

// ValidationResult is the outcome of checking one field value. Results are
// produced fresh per call and never stored.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func valid() ValidationResult {
	return ValidationResult{Valid: true, Errors: []string{}}
}

func invalid(messages ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: messages}
}
