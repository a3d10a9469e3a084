package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportValues(t *testing.T) {
	r := Report{ClinicName: "Northside", PatientDOB: "1990-12-10"}
	values := r.Values()
	assert.Equal(t, "Northside", values["clinic_name"])
	assert.Equal(t, "1990-12-10", values["patient_dob"])
	assert.Len(t, values, 9)
}

func TestReportSanitizedCopies(t *testing.T) {
	r := Report{ChiefComplaint: "headache", ConsultationNote: "rest"}
	clean := r.Sanitized(strings.ToUpper)

	assert.Equal(t, "HEADACHE", clean.ChiefComplaint)
	assert.Equal(t, "REST", clean.ConsultationNote)
	// The original is left for the form to keep editing.
	assert.Equal(t, "headache", r.ChiefComplaint)
}

func TestPatientFullName(t *testing.T) {
	r := Report{PatientFirstName: "Ada", PatientLastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", r.PatientFullName())

	assert.Equal(t, "Ada", Report{PatientFirstName: "Ada"}.PatientFullName())
}

func TestPDFFileName(t *testing.T) {
	r := Report{
		PatientFirstName: "Ada",
		PatientLastName:  "Lovelace",
		PatientDOB:       "1990-12-10",
	}
	name, err := r.PDFFileName()
	require.NoError(t, err)
	assert.Equal(t, "CR_Lovelace_Ada_19901210.pdf", name)

	_, err = Report{PatientDOB: "garbage"}.PDFFileName()
	assert.Error(t, err)
}
