// Package api implements the REST client for the certificate service.
//
// The Client interface is the seam between workflows and the wire: services
// depend on it and tests substitute fakes.
package api

import (
	"context"

	"github.com/certvera/certvera/internal/client/models"
)

// VerifyResponse is the raw /verify payload. The backend reports an invalid
// certificate through IsValid=false on an HTTP 200, not through an error.
type VerifyResponse struct {
	IsValid  bool           `json:"isValid"`
	ID       string         `json:"id"`
	Metadata VerifyMetadata `json:"metadata"`
}

// VerifyMetadata carries the certificate fields echoed back by /verify.
type VerifyMetadata struct {
	StudentName  string `json:"studentName"`
	MatricNumber string `json:"matricNumber"`
	Course       string `json:"course"`
	DateIssued   string `json:"dateIssued"`
	Organization string `json:"organization"`
}

// Client is the remote certificate service as seen by the workflows.
//
//   - ListCertificates and ListUsers require a bearer token; ListUsers is
//     additionally admin-only and expected to fail for regular sessions.
//   - Issue requires a bearer token and posts the draft as multipart form
//     data, including the logo part only when the draft carries one.
//   - Verify and Signup are unauthenticated.
type Client interface {
	ListCertificates(ctx context.Context) ([]models.CertificateRecord, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	Issue(ctx context.Context, draft *models.CertificateDraft) (models.IssuedCertificateRef, error)
	Verify(ctx context.Context, hash string) (VerifyResponse, error)
	Signup(ctx context.Context, email, password string, isAdmin bool) (string, error)
}
