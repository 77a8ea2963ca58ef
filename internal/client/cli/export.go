package cli

import (
	"github.com/certvera/certvera/internal/client/export"
	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/filex"
)

func (a *App) downloadsDir() (string, error) {
	return filex.EnsureSubDir(a.config.DownloadsDir)
}

func previewFromDraft(draft models.CertificateDraft, certificateID string) export.Preview {
	return export.Preview{
		Organization:   draft.Organization,
		StudentName:    draft.StudentName,
		Course:         draft.Course,
		DateIssued:     draft.DateIssued,
		CertificateID:  certificateID,
		RecipientEmail: draft.RecipientEmail,
		Logo:           draft.Logo,
	}
}
