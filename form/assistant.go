package form

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldKind selects the rule applied to a field after the required check.
type FieldKind string

const (
	FieldText    FieldKind = "text"
	FieldContact FieldKind = "contact"
	FieldDate    FieldKind = "date"
	FieldFile    FieldKind = "file"
)

// FieldSpec describes one form field the assistant knows how to validate.
type FieldSpec struct {
	ID       string    `json:"id"`
	Caption  string    `json:"caption"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Limit    int       `json:"limit,omitempty"`
}

// ConsultationFields is the field registry of the consultation report form.
func ConsultationFields() []FieldSpec {
	return []FieldSpec{
		{ID: "clinic_name", Caption: "Clinic Name", Kind: FieldText, Required: true},
		{ID: "clinic_logo", Caption: "Clinic Logo", Kind: FieldFile},
		{ID: "physician_name", Caption: "Physician Name", Kind: FieldText, Required: true},
		{ID: "physician_contact", Caption: "Physician Contact", Kind: FieldContact, Required: true},
		{ID: "patient_first_name", Caption: "Patient First Name", Kind: FieldText, Required: true},
		{ID: "patient_last_name", Caption: "Patient Last Name", Kind: FieldText, Required: true},
		{ID: "patient_dob", Caption: "Patient DoB", Kind: FieldDate, Required: true},
		{ID: "patient_contact", Caption: "Patient Contact", Kind: FieldContact, Required: true},
		{ID: "chief_complaint", Caption: "Chief Complaint", Kind: FieldText, Required: true, Limit: DefaultNoteLimit},
		{ID: "consultation_note", Caption: "Consultation Note", Kind: FieldText, Required: true, Limit: DefaultNoteLimit},
	}
}

// Options configure an Assistant. Zero values fall back to the documented
// defaults; Now exists so tests can pin the clock.
type Options struct {
	Fields       []FieldSpec
	NoteLimit    int
	MaxLogoBytes int64
	NoticeTTL    time.Duration
	SubmitReset  time.Duration
	Now          func() time.Time
}

// Assistant is the constructible form service: an explicit field-to-rule
// table plus the notifier, limiters, logo guard and submit guard it feeds.
// It keeps no state across calls beyond those widgets.
type Assistant struct {
	fields   []FieldSpec
	byID     map[string]FieldSpec
	limiters map[string]*Limiter
	notifier *Notifier
	logo     *LogoGuard
	submit   *SubmitGuard
	now      func() time.Time
}

// NewAssistant builds an assistant from opts.
func NewAssistant(opts Options) *Assistant {
	var fields []FieldSpec
	if len(opts.Fields) == 0 {
		fields = ConsultationFields()
	} else {
		// Copy so the limit override below never writes into the caller's
		// slice.
		fields = append([]FieldSpec(nil), opts.Fields...)
	}
	if opts.NoteLimit > 0 {
		for i := range fields {
			if fields[i].Limit > 0 {
				fields[i].Limit = opts.NoteLimit
			}
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &Assistant{
		fields:   fields,
		byID:     make(map[string]FieldSpec, len(fields)),
		limiters: make(map[string]*Limiter),
		notifier: NewNotifier(opts.NoticeTTL),
		logo:     NewLogoGuard(opts.MaxLogoBytes),
		submit:   NewSubmitGuard(opts.SubmitReset),
		now:      now,
	}
	for _, f := range fields {
		a.byID[f.ID] = f
		if f.Limit > 0 {
			a.limiters[f.ID] = NewLimiter(f.Limit)
		}
	}
	return a
}

// Fields returns the registry in declaration order.
func (a *Assistant) Fields() []FieldSpec { return a.fields }

// Field looks up the spec for a field id.
func (a *Assistant) Field(id string) (FieldSpec, bool) {
	f, ok := a.byID[id]
	return f, ok
}

// Limiter returns the character limiter for a limited field.
func (a *Assistant) Limiter(id string) (*Limiter, bool) {
	l, ok := a.limiters[id]
	return l, ok
}

// Notifier returns the shared transient notifier.
func (a *Assistant) Notifier() *Notifier { return a.notifier }

// Logo returns the upload guard.
func (a *Assistant) Logo() *LogoGuard { return a.logo }

// Submit returns the submit-control guard.
func (a *Assistant) Submit() *SubmitGuard { return a.submit }

// ValidateField runs the table rules for one field against value. Unknown
// field ids are rejected with an error so wiring mistakes surface early.
func (a *Assistant) ValidateField(id, value string) (ValidationResult, error) {
	spec, ok := a.byID[id]
	if !ok {
		return ValidationResult{}, fmt.Errorf("unknown field %q", id)
	}

	var errs []string
	if spec.Required {
		if r := CheckRequired(value, spec.Caption); !r.Valid {
			errs = append(errs, r.Errors...)
		}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed != "" {
		switch spec.Kind {
		case FieldContact:
			if r := CheckContact(trimmed); !r.Valid {
				errs = append(errs, r.Errors...)
			}
		case FieldDate:
			if r := CheckDOB(trimmed, a.now()); !r.Valid {
				errs = append(errs, r.Errors...)
			}
		}
		if spec.Limit > 0 && utf8.RuneCountInString(value) > spec.Limit {
			errs = append(errs, fmt.Sprintf("%s cannot exceed %d characters.", CaptionLabel(spec.Caption), spec.Limit))
		}
	}

	if len(errs) > 0 {
		return invalid(errs...), nil
	}
	return valid(), nil
}

// ValidateAll checks every registered text field against values and returns
// the per-field error map plus the overall verdict. File fields have no text
// value and are skipped; they are screened at upload time.
func (a *Assistant) ValidateAll(values map[string]string) (map[string][]string, bool) {
	errs := make(map[string][]string)
	ok := true
	for _, spec := range a.fields {
		if spec.Kind == FieldFile {
			continue
		}
		res, err := a.ValidateField(spec.ID, values[spec.ID])
		if err != nil {
			continue
		}
		if !res.Valid {
			errs[spec.ID] = res.Errors
			ok = false
		}
	}
	return errs, ok
}

// AgeOf returns the age derived from an accepted date-of-birth value.
func (a *Assistant) AgeOf(value string) (int, bool) {
	dob, err := ParseDOB(value)
	if err != nil {
		return 0, false
	}
	return Age(dob, a.now()), true
}
