package models

import (
	"fmt"
	"strings"
	"time"
)

// Report is the consultation report payload as the form submits it. It is
// bound for validation only; this service persists nothing.
type Report struct {
	ClinicName       string `json:"clinic_name"`
	PhysicianName    string `json:"physician_name"`
	PhysicianContact string `json:"physician_contact"`
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	PatientDOB       string `json:"patient_dob"`
	PatientContact   string `json:"patient_contact"`
	ChiefComplaint   string `json:"chief_complaint"`
	ConsultationNote string `json:"consultation_note"`
}

// Values flattens the report into the field-id keyed map the assistant's
// validator table consumes.
func (r Report) Values() map[string]string {
	return map[string]string{
		"clinic_name":        r.ClinicName,
		"physician_name":     r.PhysicianName,
		"physician_contact":  r.PhysicianContact,
		"patient_first_name": r.PatientFirstName,
		"patient_last_name":  r.PatientLastName,
		"patient_dob":        r.PatientDOB,
		"patient_contact":    r.PatientContact,
		"chief_complaint":    r.ChiefComplaint,
		"consultation_note":  r.ConsultationNote,
	}
}

// Sanitized returns a copy of the report with every field run through clean.
// The copy feeds the rendered preview; the original stays untouched so the
// form can keep editing the exact text it submitted.
func (r Report) Sanitized(clean func(string) string) Report {
	return Report{
		ClinicName:       clean(r.ClinicName),
		PhysicianName:    clean(r.PhysicianName),
		PhysicianContact: clean(r.PhysicianContact),
		PatientFirstName: clean(r.PatientFirstName),
		PatientLastName:  clean(r.PatientLastName),
		PatientDOB:       clean(r.PatientDOB),
		PatientContact:   clean(r.PatientContact),
		ChiefComplaint:   clean(r.ChiefComplaint),
		ConsultationNote: clean(r.ConsultationNote),
	}
}

// PatientFullName joins the patient name fields for display.
func (r Report) PatientFullName() string {
	return strings.TrimSpace(r.PatientFirstName + " " + r.PatientLastName)
}

// PDFFileName is the canonical download name for the rendered report:
// CR_<last>_<first>_<yyyymmdd>.pdf.
func (r Report) PDFFileName() (string, error) {
	dob, err := time.Parse("2006-01-02", strings.TrimSpace(r.PatientDOB))
	if err != nil {
		return "", fmt.Errorf("report filename needs a valid date of birth: %w", err)
	}
	return fmt.Sprintf("CR_%s_%s_%s.pdf", r.PatientLastName, r.PatientFirstName, dob.Format("20060102")), nil
}
