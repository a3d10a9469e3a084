package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptionLabel(t *testing.T) {
	tests := []struct {
		caption string
		want    string
	}{
		{"Clinic Name", "Clinic Name"},
		{"Clinic Name *", "Clinic Name"},
		{"Clinic Name*", "Clinic Name"},
		{"Patient DoB ＊", "Patient DoB"},
		{"  Chief Complaint * ", "Chief Complaint"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CaptionLabel(tc.caption))
	}
}

func TestCheckRequired(t *testing.T) {
	res := CheckRequired("", "Clinic Name *")
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Clinic Name is required."}, res.Errors)

	assert.False(t, CheckRequired("   \t\n", "Physician Name").Valid)
	assert.True(t, CheckRequired("Dr. Smith", "Physician Name").Valid)
}
