package form

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssistant() *Assistant {
	return NewAssistant(Options{
		Now: func() time.Time {
			return time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
		},
	})
}

func TestAssistantValidateFieldTable(t *testing.T) {
	a := testAssistant()

	tests := []struct {
		name    string
		field   string
		value   string
		valid   bool
		message string
	}{
		{"required text empty", "clinic_name", "", false, "Clinic Name is required."},
		{"required text whitespace", "physician_name", "  ", false, "Physician Name is required."},
		{"required text ok", "clinic_name", "Northside Clinic", true, ""},
		{"contact email", "physician_contact", "dr@clinic.example", true, ""},
		{"contact phone", "patient_contact", "+1 (555) 123-4567", true, ""},
		{"contact bad", "physician_contact", "not-an-email", false, contactMessage},
		{"dob ok", "patient_dob", "1980-02-14", true, ""},
		{"dob future", "patient_dob", "2030-01-01", false, "Date of birth must be in the past."},
		{"note ok", "chief_complaint", "headache for three days", true, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := a.ValidateField(tc.field, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.valid, res.Valid)
			if tc.message != "" {
				assert.Contains(t, res.Errors, tc.message)
			}
		})
	}
}

func TestAssistantValidateFieldUnknownID(t *testing.T) {
	a := testAssistant()
	_, err := a.ValidateField("favorite_color", "blue")
	assert.Error(t, err)
}

func TestAssistantNoteOverLimit(t *testing.T) {
	a := NewAssistant(Options{NoteLimit: 10})

	res, err := a.ValidateField("consultation_note", strings.Repeat("x", 11))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "Consultation Note cannot exceed 10 characters.")
}

func TestAssistantDoesNotMutateCallerFields(t *testing.T) {
	custom := []FieldSpec{
		{ID: "summary", Caption: "Summary*", Kind: FieldText, Required: true, Limit: 200},
		{ID: "owner", Caption: "Owner*", Kind: FieldText, Required: true},
	}

	a := NewAssistant(Options{Fields: custom, NoteLimit: 10})

	// The override applies inside the assistant only.
	spec, ok := a.Field("summary")
	require.True(t, ok)
	assert.Equal(t, 10, spec.Limit)
	assert.Equal(t, 200, custom[0].Limit)
	assert.Equal(t, 0, custom[1].Limit)
}

func TestAssistantValidateAll(t *testing.T) {
	a := testAssistant()

	values := map[string]string{
		"clinic_name":        "Northside Clinic",
		"physician_name":     "Dr. Smith",
		"physician_contact":  "dr.smith@clinic.example",
		"patient_first_name": "Ada",
		"patient_last_name":  "Lovelace",
		"patient_dob":        "1990-12-10",
		"patient_contact":    "5551234567",
		"chief_complaint":    "headache",
		"consultation_note":  "rest and fluids",
	}
	errs, ok := a.ValidateAll(values)
	assert.True(t, ok)
	assert.Empty(t, errs)

	values["patient_dob"] = "2030-01-01"
	values["physician_contact"] = ""
	errs, ok = a.ValidateAll(values)
	assert.False(t, ok)
	assert.Contains(t, errs, "patient_dob")
	assert.Contains(t, errs, "physician_contact")
	assert.NotContains(t, errs, "clinic_logo", "file fields are screened at upload time")
}

func TestAssistantAgeOf(t *testing.T) {
	a := testAssistant()

	age, ok := a.AgeOf("1990-08-27")
	require.True(t, ok)
	assert.Equal(t, 35, age)

	_, ok = a.AgeOf("nope")
	assert.False(t, ok)
}

func TestAssistantRegistryWiring(t *testing.T) {
	a := testAssistant()

	assert.Len(t, a.Fields(), 10)

	spec, ok := a.Field("chief_complaint")
	require.True(t, ok)
	assert.Equal(t, DefaultNoteLimit, spec.Limit)

	_, ok = a.Limiter("chief_complaint")
	assert.True(t, ok)
	_, ok = a.Limiter("clinic_name")
	assert.False(t, ok)
}
