package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/certvera/certvera/internal/client/forms"
)

// issuePrompts pairs each draft field with its prompt, in the order the
// original form presents them. The matric number is only asked on the
// dashboard form; the logo only on the public one.
var issuePrompts = []struct {
	field  string
	prompt string
}{
	{forms.FieldOrganization, "Enter organization name"},
	{forms.FieldStudentName, "Enter student's full name"},
	{forms.FieldMatricNumber, "Enter matric number"},
	{forms.FieldCourse, "Enter course or program name"},
	{forms.FieldDateIssued, "Enter date issued (yyyy-mm-dd)"},
	{forms.FieldRecipientEmail, "Enter recipient's email address"},
}

// Issue prompts for the certificate fields and submits the draft. The user
// first picks between the dashboard form (matric number required, no logo)
// and the public form (optional logo, no matric number). After a failed
// submission the previous values are offered as defaults, so the user only
// re-enters what needs fixing.
func (a *App) Issue(ctx context.Context) error {
	dashboardForm, err := GetYesNo(a.reader, "Use the dashboard form (with matric number)?", os.Stdout)
	if err != nil {
		return err
	}
	variant := forms.PublicIssue
	if dashboardForm {
		variant = forms.DashboardIssue
	}
	a.issue.UseVariant(variant)

	draft := a.issue.Draft()
	current := map[string]string{
		forms.FieldOrganization:   draft.Organization,
		forms.FieldStudentName:    draft.StudentName,
		forms.FieldMatricNumber:   draft.MatricNumber,
		forms.FieldCourse:         draft.Course,
		forms.FieldDateIssued:     draft.DateIssued,
		forms.FieldRecipientEmail: draft.RecipientEmail,
	}

	for _, p := range issuePrompts {
		if p.field == forms.FieldMatricNumber && !dashboardForm {
			continue
		}
		value, err := GetTextWithDefault(a.reader, p.prompt, current[p.field], os.Stdout)
		if err != nil {
			return err
		}
		if err := a.issue.UpdateField(p.field, value); err != nil {
			return err
		}
	}

	if !dashboardForm {
		logoPath, err := getSimpleText(a.reader, "Enter logo file path (optional, Enter to skip)", os.Stdout)
		if err != nil {
			return err
		}
		if logoPath != "" {
			data, err := os.ReadFile(logoPath)
			if err != nil {
				printlnFn("Could not read logo file:", err.Error())
				return err
			}
			a.issue.AttachLogo(data, filepath.Base(logoPath))
		}
	}

	return a.issue.Submit(ctx)
}

// Export renders the current draft (and the last issued certificate id, if
// any) to a PNG in the configured downloads directory.
func (a *App) Export(ctx context.Context) error {
	dir, err := a.downloadsDir()
	if err != nil {
		printlnFn("Could not prepare downloads directory:", err.Error())
		return err
	}

	draft := a.issue.Draft()
	certificateID := ""
	if ref, ok := a.issue.LastIssued(); ok {
		certificateID = ref.CertificateID
	}

	path, err := a.exporter.Export(ctx, previewFromDraft(draft, certificateID), dir)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Saved to %s", path))
	return nil
}
