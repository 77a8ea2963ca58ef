// Package models defines the client-side data model: the in-progress
// certificate draft, the read models returned by the backend, and the
// dashboard projections derived from them.
package models

// CertificateDraft is the in-progress, not-yet-submitted certificate input.
// It is mutated only through the forms package and reset to the zero value
// after a successful issuance.
type CertificateDraft struct {
	StudentName    string
	MatricNumber   string
	Course         string
	DateIssued     string
	RecipientEmail string
	Organization   string

	// Logo is the optional organization logo, sent as a binary multipart
	// part when present. LogoName is its original file name.
	Logo     []byte
	LogoName string
}

// HasLogo reports whether a logo has been attached to the draft.
func (d CertificateDraft) HasLogo() bool {
	return len(d.Logo) > 0
}

// IssuedCertificateRef identifies a certificate created by a successful
// issuance response. Never mutated after creation.
type IssuedCertificateRef struct {
	CertificateID string `json:"certificateId"`
}

// CertificateRecord is a certificate as returned by GET /certificates.
// It is an immutable snapshot; a new fetch replaces the prior list wholesale.
type CertificateRecord struct {
	ID             string `json:"id"`
	StudentName    string `json:"student_name"`
	MatricNumber   string `json:"matric_number"`
	Course         string `json:"course"`
	DateIssued     string `json:"date_issued"`
	RecipientEmail string `json:"recipient_email"`
	Organization   string `json:"organization"`
	IsValid        bool   `json:"is_valid"`
}

// VerifiedCertificate is the read view projected from a positive /verify
// response.
type VerifiedCertificate struct {
	ID           string
	StudentName  string
	MatricNumber string
	Course       string
	IssueDate    string
	Issuer       string
}

// VerificationResult is a tagged union: exactly one of Certificate (Valid)
// or Message (Invalid) is populated. It is replaced wholesale per attempt.
type VerificationResult struct {
	Valid       bool
	Certificate *VerifiedCertificate
	Message     string
}
