package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidContact(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty is optional", "", true},
		{"whitespace only", "   ", true},
		{"short email", "a@b.co", true},
		{"regular email", "dr.smith@clinic.example.org", true},
		{"formatted phone", "+1 (555) 123-4567", true},
		{"bare digits", "5551234567", true},
		{"dotted phone", "555.123.4567", true},
		{"not an email", "not-an-email", false},
		{"too few digits", "123", false},
		{"leading zero", "0551234567", false},
		{"missing tld", "a@b", false},
		{"letters in phone", "555-CALL-NOW", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidContact(tc.value))
		})
	}
}

func TestCheckContactMessage(t *testing.T) {
	res := CheckContact("nope")
	assert.False(t, res.Valid)
	assert.Equal(t, []string{contactMessage}, res.Errors)

	assert.True(t, CheckContact("a@b.co").Valid)
}
