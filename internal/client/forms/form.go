// Package forms holds the field state of a certificate input form and the
// submit-readiness check applied before any network call.
package forms

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/common"
)

// Recognized field names, matching the multipart part names on the wire.
const (
	FieldStudentName    = "studentName"
	FieldMatricNumber   = "matricNumber"
	FieldCourse         = "course"
	FieldDateIssued     = "dateIssued"
	FieldRecipientEmail = "recipientEmail"
	FieldOrganization   = "organization"
)

// Variant selects which fields a form requires. The dashboard form carries a
// matric number; the public form omits it and may attach a logo. A logo is
// never required.
type Variant int

const (
	DashboardIssue Variant = iota
	PublicIssue
)

func (v Variant) requiredFields() []string {
	switch v {
	case DashboardIssue:
		return []string{
			FieldStudentName,
			FieldMatricNumber,
			FieldCourse,
			FieldDateIssued,
			FieldRecipientEmail,
			FieldOrganization,
		}
	default:
		return []string{
			FieldStudentName,
			FieldCourse,
			FieldDateIssued,
			FieldRecipientEmail,
			FieldOrganization,
		}
	}
}

// Form is an immutable snapshot of a draft plus its variant. Update and
// Reset return new values; the zero draft is the post-reset state.
type Form struct {
	variant Variant
	draft   models.CertificateDraft
}

func NewIssueForm(variant Variant) Form {
	return Form{variant: variant}
}

// Update returns a copy of the form with the named field replaced. Unknown
// field names are a configuration error (common.ErrUnknownField), never
// silently ignored.
func (f Form) Update(field, value string) (Form, error) {
	switch field {
	case FieldStudentName:
		f.draft.StudentName = value
	case FieldMatricNumber:
		f.draft.MatricNumber = value
	case FieldCourse:
		f.draft.Course = value
	case FieldDateIssued:
		f.draft.DateIssued = value
	case FieldRecipientEmail:
		f.draft.RecipientEmail = value
	case FieldOrganization:
		f.draft.Organization = value
	default:
		return f, fmt.Errorf("%w: %q", common.ErrUnknownField, field)
	}
	return f, nil
}

// WithVariant returns the form re-keyed to the given variant, keeping the
// entered values. Switching variants only changes which fields are required.
func (f Form) WithVariant(v Variant) Form {
	f.variant = v
	return f
}

// AttachLogo returns a copy of the form carrying the given logo bytes.
func (f Form) AttachLogo(data []byte, name string) Form {
	f.draft.Logo = data
	f.draft.LogoName = name
	return f
}

func (f Form) value(field string) string {
	switch field {
	case FieldStudentName:
		return f.draft.StudentName
	case FieldMatricNumber:
		return f.draft.MatricNumber
	case FieldCourse:
		return f.draft.Course
	case FieldDateIssued:
		return f.draft.DateIssued
	case FieldRecipientEmail:
		return f.draft.RecipientEmail
	case FieldOrganization:
		return f.draft.Organization
	}
	return ""
}

// IsComplete reports whether every field required by the form's variant is
// non-empty after trimming whitespace.
func (f Form) IsComplete() bool {
	_, missing := f.MissingField()
	return !missing
}

// MissingField returns the first required field that is blank after
// trimming, in declaration order.
func (f Form) MissingField() (string, bool) {
	for _, field := range f.variant.requiredFields() {
		if strings.TrimSpace(f.value(field)) == "" {
			return field, true
		}
	}
	return "", false
}

// Draft returns the current draft value.
func (f Form) Draft() models.CertificateDraft {
	return f.draft
}

// Reset returns the form with an all-empty draft and the logo back to the
// default placeholder, keeping the variant.
func (f Form) Reset() Form {
	return Form{variant: f.variant}
}

// FieldLabel turns a camelCase field name into the human-readable form used
// in validation messages: "studentName" becomes "student name".
func FieldLabel(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
