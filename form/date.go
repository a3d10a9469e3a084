package form

import (
	"strings"
	"time"
)

// dobLayout is the wire format of the date input.
const dobLayout = "2006-01-02"

// maxDOBYears bounds how far back a date of birth may lie.
const maxDOBYears = 120

// CheckDOB validates a date-of-birth string against now. Empty input is
// valid. An accepted date lies strictly before today and no more than 120
// years back; the 120-year boundary itself is accepted.
func CheckDOB(value string, now time.Time) ValidationResult {
	v := strings.TrimSpace(value)
	if v == "" {
		return valid()
	}
	dob, err := time.ParseInLocation(dobLayout, v, now.Location())
	if err != nil {
		return invalid("Please enter a valid date.")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !dob.Before(today) {
		return invalid("Date of birth must be in the past.")
	}
	if dob.Before(today.AddDate(-maxDOBYears, 0, 0)) {
		return invalid("Date of birth cannot be more than 120 years ago.")
	}
	return valid()
}

// Age computes full years elapsed between dob and now, the same way the
// report header displays it.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// ParseDOB parses a date-of-birth string in the form's wire format.
func ParseDOB(value string) (time.Time, error) {
	return time.Parse(dobLayout, strings.TrimSpace(value))
}
